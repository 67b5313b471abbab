package model

type Phase int

const (
	PhaseWorktree Phase = iota
	PhaseIndex
)

func (p Phase) String() string {
	switch p {
	case PhaseWorktree:
		return "worktree"
	case PhaseIndex:
		return "index"
	default:
		return "unknown"
	}
}

// ChangeStat is one phase's observation of one path. Seen == false means the
// path was untouched in that phase.
type ChangeStat struct {
	Added   int
	Deleted int
	Seen    bool
	Binary  bool
}

func (s *ChangeStat) Record(added, deleted int, binary bool) {
	s.Seen = true
	s.Added = added
	s.Deleted = deleted
	if binary {
		s.Binary = true
	}
}
