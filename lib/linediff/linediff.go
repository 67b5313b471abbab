package linediff

import (
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Diff struct {
	Type  Operation
	Lines int
}

type Operation int8

const (
	DiffDelete Operation = Operation(diffmatchpatch.DiffDelete)
	DiffInsert Operation = Operation(diffmatchpatch.DiffInsert)
	DiffEqual  Operation = Operation(diffmatchpatch.DiffEqual)
)

func Do(src, dst string) []Diff {
	return DoWithTimeout(src, dst, time.Minute)
}

func DoWithTimeout(src, dst string, timeout time.Duration) []Diff {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = timeout
	wSrc, wDst := textsToLineIndexes(src, dst)
	dmpd := dmp.DiffMainRunes(wSrc, wDst, false)
	return lineIndexesToDiff(dmpd)
}

// Stats reduces a line diff to the added/deleted counts of a diffstat: every
// inserted line counts as added, every deleted line as deleted.
func Stats(src, dst string) (added, deleted int) {
	for _, d := range Do(src, dst) {
		switch d.Type {
		case DiffInsert:
			added += d.Lines
		case DiffDelete:
			deleted += d.Lines
		}
	}
	return added, deleted
}

func lineIndexesToDiff(diffs []diffmatchpatch.Diff) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, aDiff := range diffs {
		hydrated = append(hydrated, Diff{
			Type:  Operation(aDiff.Type),
			Lines: len(aDiff.Text),
		})
	}
	return hydrated
}

func textsToLineIndexes(text1, text2 string) ([]rune, []rune) {
	lineToIndex := make(map[string]int)
	indexes1 := textToLineIndexes(text1, lineToIndex)
	indexes2 := textToLineIndexes(text2, lineToIndex)
	return indexes1, indexes2
}

func textToLineIndexes(text string, lineToIndex map[string]int) []rune {
	if text == "" {
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	result := make([]rune, len(lines))
	for i, line := range lines {
		lineValue, ok := lineToIndex[line]

		if !ok {
			lineValue = len(lineToIndex)
			lineToIndex[line] = lineValue
		}

		result[i] = rune(lineValue)
	}
	return result
}
