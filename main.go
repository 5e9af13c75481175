// Command gmailfetch lists Gmail message IDs and prints single messages by ID.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bassamadnan/gmailfetch/auth"
	"github.com/bassamadnan/gmailfetch/config"
	"github.com/bassamadnan/gmailfetch/gmail"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	help    = flag.Bool("help", false, "Displays help on flags and env variables.")
	logfile = flag.String("logfile", "stderr", "Write out log into the specified file.")
	logjson = flag.Bool("logjson", false, "Logs are written in JSON format.")
)

func main() {
	subcommands.ImportantFlag("logfile")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&listCmd{connect: connect, out: os.Stdout}, "")
	subcommands.Register(&getCmd{connect: connect, out: os.Stdout}, "")
	subcommands.Register(&browseCmd{connect: connect}, "")

	flag.Parse()
	if *help {
		flag.Usage()
		fmt.Fprintln(os.Stderr, "")
		config.Usage()
		return
	}

	conf, err := config.Process()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	closeLog, err := openLog(conf.LogLevel, *logfile, *logjson)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Log error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Debug().Msg("Shutdown signal received, cancelling context")
		cancel()
	}()

	status := subcommands.Execute(ctx, conf)
	cancel()
	closeLog()
	os.Exit(int(status))
}

// connectFunc builds an authorized message client from configuration.
type connectFunc func(ctx context.Context, conf *config.Root) (*gmail.Client, error)

func connect(ctx context.Context, conf *config.Root) (*gmail.Client, error) {
	httpClient, err := auth.NewManager(conf.Auth).HTTPClient(ctx)
	if err != nil {
		return nil, err
	}
	svc, err := gmail.NewService(ctx, httpClient, conf.Gmail)
	if err != nil {
		return nil, err
	}
	return gmail.NewClient(svc, conf.Gmail.MaxResults), nil
}

func rootConfig(args []interface{}) *config.Root {
	if len(args) > 0 {
		if conf, ok := args[0].(*config.Root); ok {
			return conf
		}
	}
	return &config.Root{}
}

// errOut receives the one diagnostic line of a failed command.
var errOut io.Writer = os.Stderr

func fatal(msg string, err error) subcommands.ExitStatus {
	log.Debug().Err(err).Msg(msg)
	fmt.Fprintf(errOut, "%s: %v\n", msg, err)
	return subcommands.ExitFailure
}

func usage(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, msg)
	return subcommands.ExitUsageError
}

// openLog configures the global zerolog logger.
func openLog(level string, logfile string, json bool) (close func(), err error) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		return nil, fmt.Errorf("log level %q not one of: debug, info, warn, error", level)
	}
	close = func() {}
	var w io.Writer = os.Stderr
	color := runtime.GOOS != "windows"
	if logfile != "stderr" {
		logf, err := os.OpenFile(logfile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0660)
		if err != nil {
			return nil, err
		}
		bw := bufio.NewWriter(logf)
		w = bw
		color = false
		close = func() {
			_ = bw.Flush()
			_ = logf.Close()
		}
	}
	w = zerolog.SyncWriter(w)
	if json {
		log.Logger = log.Output(w)
		return close, nil
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     w,
		NoColor: !color,
	})
	return close, nil
}
