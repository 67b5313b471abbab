package status

import (
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/pkg/errors"

	"github.com/pescuma/gitstatus/lib/filters"
	"github.com/pescuma/gitstatus/lib/gitdiff"
	"github.com/pescuma/gitstatus/lib/model"
)

// ErrIndexRead means the index could not be read. It is fatal to the run and
// is raised before either diff pass starts.
var ErrIndexRead = errors.New("could not read index")

// Engine runs the two diff passes. Each call is synchronous and invokes the
// callback zero or more times before returning; emission order is not
// specified and must not be relied on.
type Engine interface {
	ReadIndex() error
	ResolveBase() (plumbing.Hash, error)
	WorktreeVsIndex(filter filters.PathFilter, cb gitdiff.BatchFunc) error
	IndexVsCommit(base plumbing.Hash, filter filters.PathFilter, cb gitdiff.BatchFunc) error
}

// Collect merges the statistics of both diff passes into one record per path:
// the worktree pass fills each record's worktree side, the index pass its
// index side. The result is unsorted. On any failure the records are reset so
// no partial state survives into the next run.
func Collect(engine Engine, filter filters.PathFilter, records *model.FileRecords) error {
	records.Reset()

	if filter == nil {
		filter = filters.All
	}

	if err := engine.ReadIndex(); err != nil {
		return errors.Wrapf(ErrIndexRead, "%v", err)
	}

	base, err := engine.ResolveBase()
	if err != nil {
		return err
	}

	err = engine.WorktreeVsIndex(filter, collectInto(records, model.PhaseWorktree))
	if err != nil {
		records.Reset()
		return err
	}

	err = engine.IndexVsCommit(base, filter, collectInto(records, model.PhaseIndex))
	if err != nil {
		records.Reset()
		return err
	}

	return nil
}

func collectInto(records *model.FileRecords, phase model.Phase) gitdiff.BatchFunc {
	return func(batch []gitdiff.Change) {
		for _, c := range batch {
			records.GetOrCreate(c.Path).Stat(phase).Record(c.Added, c.Deleted, c.Binary)
		}
	}
}
