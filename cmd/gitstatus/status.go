package main

import (
	"github.com/samber/lo"

	"github.com/pescuma/gitstatus/lib/filters"
	"github.com/pescuma/gitstatus/lib/gitdiff"
	"github.com/pescuma/gitstatus/lib/model"
	"github.com/pescuma/gitstatus/lib/status"
	"github.com/pescuma/gitstatus/lib/utils"
)

type StatusCmd struct {
	Pathspec []string `arg:"" optional:"" help:"Limit the listing to paths matching these globs."`
}

func (c *StatusCmd) Run(ctx *context) error {
	dir, err := utils.PathAbs(utils.IIf(cli.Chdir != "", cli.Chdir, "."))
	if err != nil {
		return err
	}

	filter, err := filters.ParsePathFilters(lo.Uniq(c.Pathspec))
	if err != nil {
		return err
	}

	engine, err := gitdiff.Open(dir)
	if err != nil {
		return err
	}

	return status.Run(engine, filter, model.NewFileRecords(), ctx.console)
}
