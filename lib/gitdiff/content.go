package gitdiff

import (
	"os"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/pescuma/gitstatus/lib/linediff"
	"github.com/pescuma/gitstatus/lib/utils"
)

func newChange(path string, fromContent string, fromBinary bool, toContent string, toBinary bool) Change {
	if fromBinary || toBinary {
		return Change{Path: path, Binary: true}
	}

	added, deleted := linediff.Stats(fromContent, toContent)
	return Change{Path: path, Added: added, Deleted: deleted}
}

func (e *Engine) fileFromIndex(path string) (*object.File, error) {
	entry, err := e.idx.Entry(path)
	if err == index.ErrEntryNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	blob, err := object.GetBlob(e.repo.Storer, entry.Hash)
	if err != nil {
		return nil, err
	}

	return object.NewFile(entry.Name, entry.Mode, blob), nil
}

func fileFromTree(tree *object.Tree, path string) (*object.File, error) {
	if tree == nil {
		return nil, nil
	}

	gitFile, err := tree.File(path)
	if err == object.ErrFileNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return gitFile, nil
}

func (e *Engine) contentFromIndex(path string) (string, bool, error) {
	gitFile, err := e.fileFromIndex(path)
	if err != nil {
		return "", false, err
	}

	return contentOf(gitFile)
}

func contentOf(f *object.File) (string, bool, error) {
	if f == nil {
		return "", false, nil
	}

	isBinary, err := f.IsBinary()
	if err != nil {
		return "", false, err
	}

	if isBinary {
		return "", true, nil
	}

	content, err := f.Contents()
	if err != nil {
		return "", false, err
	}

	return content, false, nil
}

func contentFromDisk(rootDir string, path string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(rootDir, path))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if enry.IsBinary(data[:utils.Min(len(data), 8000)]) {
		return "", true, nil
	}

	return string(data), false, nil
}
