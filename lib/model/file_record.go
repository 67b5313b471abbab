package model

// FileRecord merges both phases' observations of one path. Name is immutable
// after creation and owned by the FileRecords list.
type FileRecord struct {
	Name     string
	Index    ChangeStat
	Worktree ChangeStat
}

func NewFileRecord(name string) *FileRecord {
	return &FileRecord{
		Name: name,
	}
}

func (r *FileRecord) Stat(phase Phase) *ChangeStat {
	if phase == PhaseIndex {
		return &r.Index
	}
	return &r.Worktree
}
