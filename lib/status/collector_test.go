package status

import (
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/pkg/errors"

	"github.com/pescuma/gitstatus/lib/filters"
	"github.com/pescuma/gitstatus/lib/gitdiff"
	"github.com/pescuma/gitstatus/lib/model"
)

func TestCollect(t *testing.T) {
	testgroup.RunInParallel(t, &CollectTests{})
}

type CollectTests struct {
}

type fakeEngine struct {
	indexErr error
	base     plumbing.Hash
	worktree [][]gitdiff.Change
	index    [][]gitdiff.Change

	receivedBase plumbing.Hash
	calls        []string
}

func (f *fakeEngine) ReadIndex() error {
	f.calls = append(f.calls, "read-index")
	return f.indexErr
}

func (f *fakeEngine) ResolveBase() (plumbing.Hash, error) {
	f.calls = append(f.calls, "resolve-base")
	return f.base, nil
}

func (f *fakeEngine) WorktreeVsIndex(filter filters.PathFilter, cb gitdiff.BatchFunc) error {
	f.calls = append(f.calls, "worktree")
	for _, batch := range f.worktree {
		cb(batch)
	}
	return nil
}

func (f *fakeEngine) IndexVsCommit(base plumbing.Hash, filter filters.PathFilter, cb gitdiff.BatchFunc) error {
	f.calls = append(f.calls, "index")
	f.receivedBase = base
	for _, batch := range f.index {
		cb(batch)
	}
	return nil
}

func (g *CollectTests) MergesBothPhasesPerPath(t *testgroup.T) {
	engine := &fakeEngine{
		worktree: [][]gitdiff.Change{{{Path: "a.txt", Added: 3, Deleted: 1}}},
		index: [][]gitdiff.Change{{
			{Path: "a.txt", Added: 3, Deleted: 1},
			{Path: "b.bin", Binary: true},
		}},
	}
	records := model.NewFileRecords()

	err := Collect(engine, filters.All, records)
	t.NoError(err)

	records.SortByName()
	t.Equal(2, records.Len())

	a := records.List()[0]
	t.Equal("a.txt", a.Name)
	t.Equal(model.ChangeStat{Added: 3, Deleted: 1, Seen: true}, a.Index)
	t.Equal(model.ChangeStat{Added: 3, Deleted: 1, Seen: true}, a.Worktree)

	b := records.List()[1]
	t.Equal("b.bin", b.Name)
	t.Equal(model.ChangeStat{Seen: true, Binary: true}, b.Index)
	t.Equal(model.ChangeStat{}, b.Worktree)
}

func (g *CollectTests) NoBatchesYieldsEmptyList(t *testgroup.T) {
	engine := &fakeEngine{}
	records := model.NewFileRecords()

	err := Collect(engine, filters.All, records)
	t.NoError(err)

	t.Equal(0, records.Len())
}

func (g *CollectTests) SamePathInBothPhasesKeepsIndependentStats(t *testgroup.T) {
	engine := &fakeEngine{
		worktree: [][]gitdiff.Change{{{Path: "x", Added: 1, Deleted: 2}}},
		index:    [][]gitdiff.Change{{{Path: "x", Added: 9, Deleted: 0}}},
	}
	records := model.NewFileRecords()

	err := Collect(engine, filters.All, records)
	t.NoError(err)

	t.Equal(1, records.Len())
	x := records.List()[0]
	t.Equal(model.ChangeStat{Added: 1, Deleted: 2, Seen: true}, x.Worktree)
	t.Equal(model.ChangeStat{Added: 9, Deleted: 0, Seen: true}, x.Index)
}

func (g *CollectTests) MultipleBatchesInOnePhase(t *testgroup.T) {
	engine := &fakeEngine{
		worktree: [][]gitdiff.Change{
			{{Path: "a", Added: 1}},
			{{Path: "b", Binary: true}},
		},
	}
	records := model.NewFileRecords()

	err := Collect(engine, filters.All, records)
	t.NoError(err)

	t.Equal(2, records.Len())
	t.True(records.Get("b").Worktree.Binary)
}

func (g *CollectTests) RunsPhasesInOrderAfterIndexRead(t *testgroup.T) {
	engine := &fakeEngine{base: plumbing.NewHash("aa43f2a78fb2f2d488f542246dca2dcdbd50f282")}
	records := model.NewFileRecords()

	err := Collect(engine, filters.All, records)
	t.NoError(err)

	t.Equal([]string{"read-index", "resolve-base", "worktree", "index"}, engine.calls)
	t.Equal(engine.base, engine.receivedBase)
}

func (g *CollectTests) IndexReadFailureStopsBeforeAnyPhase(t *testgroup.T) {
	engine := &fakeEngine{
		indexErr: errors.New("index is locked"),
		worktree: [][]gitdiff.Change{{{Path: "a", Added: 1}}},
	}
	records := model.NewFileRecords()

	err := Collect(engine, filters.All, records)
	t.Error(err)
	t.True(errors.Is(err, ErrIndexRead))

	t.Equal([]string{"read-index"}, engine.calls)
	t.Equal(0, records.Len())
}

func (g *CollectTests) FailedRunClearsRecordsFromPreviousRun(t *testgroup.T) {
	records := model.NewFileRecords()

	ok := &fakeEngine{worktree: [][]gitdiff.Change{{{Path: "a", Added: 1}}}}
	t.NoError(Collect(ok, filters.All, records))
	t.Equal(1, records.Len())

	failing := &fakeEngine{indexErr: errors.New("index is locked")}
	t.Error(Collect(failing, filters.All, records))
	t.Equal(0, records.Len())
}

func (g *CollectTests) ReusedRecordsStartClean(t *testgroup.T) {
	records := model.NewFileRecords()

	first := &fakeEngine{worktree: [][]gitdiff.Change{{{Path: "a", Added: 1}}}}
	t.NoError(Collect(first, filters.All, records))
	records.SortByName()
	t.Equal(1, records.Len())

	second := &fakeEngine{}
	t.NoError(Collect(second, filters.All, records))
	t.Equal(0, records.Len())
}

func (g *CollectTests) NilFilterMeansNoRestriction(t *testgroup.T) {
	engine := &fakeEngine{worktree: [][]gitdiff.Change{{{Path: "a", Added: 1}}}}
	records := model.NewFileRecords()

	err := Collect(engine, nil, records)
	t.NoError(err)

	t.Equal(1, records.Len())
}
