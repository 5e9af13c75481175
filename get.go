package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/bassamadnan/gmailfetch/display"
	"github.com/google/subcommands"
)

type getCmd struct {
	connect connectFunc
	out     io.Writer
	emailID string
}

func (*getCmd) Name() string {
	return "get"
}

func (*getCmd) Synopsis() string {
	return "fetch and display a message by ID"
}

func (*getCmd) Usage() string {
	return `get -e <id> | --email-id <id>:
	fetch one message in full and print it
`
}

func (g *getCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&g.emailID, "email-id", "", "Gmail message ID to retrieve (required)")
	f.StringVar(&g.emailID, "e", "", "shorthand for -email-id")
}

func (g *getCmd) Execute(
	ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if g.emailID == "" {
		return usage("email-id required")
	}
	conf := rootConfig(args)

	fmt.Fprintf(g.out, "Fetching email with ID: %s\n", g.emailID)

	c, err := g.connect(ctx, conf)
	if err != nil {
		return fatal("Couldn't authorize", err)
	}

	rec := c.FetchMessage(ctx, g.emailID)
	if rec == nil {
		fmt.Fprintln(g.out, "Failed to retrieve email.")
		return subcommands.ExitSuccess
	}
	fmt.Fprint(g.out, display.FormatRecord(rec))
	return subcommands.ExitSuccess
}
