package main

import (
	"context"
	"flag"

	"github.com/bassamadnan/gmailfetch/tui"
	"github.com/google/subcommands"
)

type browseCmd struct {
	connect connectFunc
	max     int
}

func (*browseCmd) Name() string {
	return "browse"
}

func (*browseCmd) Synopsis() string {
	return "browse recent messages interactively"
}

func (*browseCmd) Usage() string {
	return `browse [-max n]:
	pick a message ID from a list and view it
`
}

func (b *browseCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&b.max, "max", 20, "maximum number of IDs to list")
}

func (b *browseCmd) Execute(
	ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	conf := rootConfig(args)

	c, err := b.connect(ctx, conf)
	if err != nil {
		return fatal("Couldn't authorize", err)
	}
	if err := tui.Run(ctx, c, b.max); err != nil {
		return fatal("Browser failed", err)
	}
	return subcommands.ExitSuccess
}
