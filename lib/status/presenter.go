package status

import (
	"fmt"

	"github.com/pescuma/gitstatus/lib/consoles"
	"github.com/pescuma/gitstatus/lib/filters"
	"github.com/pescuma/gitstatus/lib/model"
)

const modifiedFmt = "%12s %12s %s"

// Run produces one status listing: both diff passes, the sort, the print.
// The records may be reused across runs; they are reset at the start.
func Run(engine Engine, filter filters.PathFilter, records *model.FileRecords, console consoles.Console) error {
	err := Collect(engine, filter, records)
	if err != nil {
		return err
	}

	// The passes emit in their own order each, so the merged list is
	// re-sorted once here.
	records.SortByName()

	Print(console, records)
	return nil
}

// Print writes the listing: a header, one line per record, and a trailing
// blank line. An empty list gets only the blank line.
func Print(console consoles.Console, records *model.FileRecords) {
	if records.Len() > 0 {
		console.Printf("      "+modifiedFmt+"\n", "staged", "unstaged", "path")

		for i, r := range records.List() {
			console.Printf(" %2d: "+modifiedFmt+"\n",
				i+1, changeColumn(&r.Index, "unchanged"), changeColumn(&r.Worktree, "nothing"), r.Name)
		}
	}

	console.Printf("\n")
}

func changeColumn(s *model.ChangeStat, noChanges string) string {
	switch {
	case s.Binary:
		return "binary"
	case s.Seen:
		return fmt.Sprintf("+%d/-%d", s.Added, s.Deleted)
	default:
		return noChanges
	}
}
