package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/bassamadnan/gmailfetch/display"
	"github.com/google/subcommands"
)

type listCmd struct {
	connect connectFunc
	out     io.Writer
	max     int
}

func (*listCmd) Name() string {
	return "list"
}

func (*listCmd) Synopsis() string {
	return "list message IDs for the authenticated user"
}

func (*listCmd) Usage() string {
	return `list [-max n]:
	list the most recent message IDs
`
}

func (l *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&l.max, "max", 0, "maximum number of IDs (default from GMAILFETCH_GMAIL_MAXRESULTS)")
}

func (l *listCmd) Execute(
	ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	conf := rootConfig(args)

	c, err := l.connect(ctx, conf)
	if err != nil {
		return fatal("Couldn't authorize", err)
	}

	ids := c.ListMessageIDs(ctx, l.max)
	fmt.Fprint(l.out, display.FormatIDs(ids))
	return subcommands.ExitSuccess
}
