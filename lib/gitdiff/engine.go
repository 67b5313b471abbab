package gitdiff

import (
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/gitstatus/lib/filters"
)

// EmptyTree is the base used when HEAD does not point at a commit yet.
var EmptyTree = plumbing.NewHash("4b825dc642cb6eb9a060e54bf8d69288fbee4904")

// Change is one path's diff statistics as reported by a single pass.
type Change struct {
	Path    string
	Added   int
	Deleted int
	Binary  bool
}

// BatchFunc receives batches of changes while a pass is still running. The
// batch is only valid until the callback returns.
type BatchFunc func(batch []Change)

type Engine struct {
	repo *git.Repository
	idx  *index.Index
}

func Open(dir string) (*Engine, error) {
	gitRepo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Wrapf(err, "could not open git repository at '%v'", dir)
	}

	return NewEngine(gitRepo), nil
}

func NewEngine(gitRepo *git.Repository) *Engine {
	return &Engine{repo: gitRepo}
}

func (e *Engine) ReadIndex() error {
	idx, err := e.repo.Storer.Index()
	if err != nil {
		return err
	}

	e.idx = idx
	return nil
}

// ResolveBase returns the HEAD commit, or the empty tree when no commit
// exists yet.
func (e *Engine) ResolveBase() (plumbing.Hash, error) {
	gitHead, err := e.repo.Head()
	if err == plumbing.ErrReferenceNotFound {
		return EmptyTree, nil
	}
	if err != nil {
		return plumbing.ZeroHash, err
	}

	return gitHead.Hash(), nil
}

func (e *Engine) WorktreeVsIndex(filter filters.PathFilter, cb BatchFunc) error {
	if e.idx == nil {
		if err := e.ReadIndex(); err != nil {
			return err
		}
	}

	wt, err := e.repo.Worktree()
	if err != nil {
		return err
	}

	gitStatus, err := wt.Status()
	if err != nil {
		return err
	}

	paths := lo.Filter(lo.Keys(gitStatus), func(path string, _ int) bool {
		st := gitStatus[path].Worktree
		return st != git.Unmodified && st != git.Untracked && filter(path)
	})
	sort.Strings(paths)

	rootDir := wt.Filesystem.Root()

	var batch []Change
	for _, path := range paths {
		// Submodules are never reported dirty here, not even for
		// untracked content.
		if e.isSubmodule(path) {
			continue
		}

		fromContent, fromBinary, err := e.contentFromIndex(path)
		if err != nil {
			return err
		}

		toContent, toBinary, err := contentFromDisk(rootDir, path)
		if err != nil {
			return err
		}

		batch = append(batch, newChange(path, fromContent, fromBinary, toContent, toBinary))
	}

	if len(batch) > 0 {
		cb(batch)
	}
	return nil
}

func (e *Engine) IndexVsCommit(base plumbing.Hash, filter filters.PathFilter, cb BatchFunc) error {
	if e.idx == nil {
		if err := e.ReadIndex(); err != nil {
			return err
		}
	}

	baseTree, err := e.treeAt(base)
	if err != nil {
		return err
	}

	paths := set.New[string](len(e.idx.Entries))
	for _, entry := range e.idx.Entries {
		if entry.Mode != filemode.Submodule && filter(entry.Name) {
			paths.Insert(entry.Name)
		}
	}

	if baseTree != nil {
		err = baseTree.Files().ForEach(func(gitFile *object.File) error {
			if filter(gitFile.Name) {
				paths.Insert(gitFile.Name)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	sorted := paths.Slice()
	sort.Strings(sorted)

	var batch []Change
	for _, path := range sorted {
		fromFile, err := fileFromTree(baseTree, path)
		if err != nil {
			return err
		}

		toFile, err := e.fileFromIndex(path)
		if err != nil {
			return err
		}

		if fromFile == nil && toFile == nil {
			continue
		}
		if fromFile != nil && toFile != nil && fromFile.Hash == toFile.Hash {
			continue
		}

		fromContent, fromBinary, err := contentOf(fromFile)
		if err != nil {
			return err
		}

		toContent, toBinary, err := contentOf(toFile)
		if err != nil {
			return err
		}

		batch = append(batch, newChange(path, fromContent, fromBinary, toContent, toBinary))
	}

	if len(batch) > 0 {
		cb(batch)
	}
	return nil
}

func (e *Engine) treeAt(base plumbing.Hash) (*object.Tree, error) {
	if base == EmptyTree {
		return nil, nil
	}

	gitCommit, err := e.repo.CommitObject(base)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve base commit %v", base)
	}

	return gitCommit.Tree()
}

func (e *Engine) isSubmodule(path string) bool {
	entry, err := e.idx.Entry(path)
	return err == nil && entry.Mode == filemode.Submodule
}
