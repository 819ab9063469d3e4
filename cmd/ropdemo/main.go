package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/ib-77/outcome/internal/fetch"
)

var log = logging.Logger("ropdemo")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.NewApp()
	app.Name = "ropdemo"
	app.Usage = "Run sample computations and print their outcomes"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "Log level for ropdemo and fetch (debug, info, warn, error)",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
	app.Before = func(cctx *cli.Context) error {
		if cctx.Bool("no-color") {
			color.NoColor = true
		}
		for _, sys := range []string{"ropdemo", "fetch"} {
			if err := logging.SetLogLevel(sys, cctx.String("log-level")); err != nil {
				return err
			}
		}
		log.Debugf("run %s", runID)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "parse",
			Usage:     "Decode a JSON document from a file or the first argument",
			ArgsUsage: "[json]",
			Action:    cmdParse,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"f"},
					Usage:   "Read the document from this path",
				},
			},
		},
		{
			Name:      "fetch",
			Usage:     "Fetch JSON documents concurrently",
			ArgsUsage: "<url>...",
			Action:    cmdFetch,
			Flags: []cli.Flag{
				&cli.DurationFlag{
					Name:  "rate",
					Value: 100 * time.Millisecond,
					Usage: "Minimum interval between requests, 0 for no limit",
				},
				&cli.IntFlag{
					Name:  "burst",
					Value: fetch.DefaultOpts().Burst,
					Usage: "Number of requests allowed back to back",
				},
				&cli.DurationFlag{
					Name:  "timeout",
					Value: fetch.DefaultOpts().Timeout,
					Usage: "Per request timeout, 0 for none",
				},
			},
		},
		{
			Name:   "signup",
			Usage:  "Validate a registration and create an account",
			Action: cmdSignup,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
				},
			},
		},
		{
			Name:      "pipeline",
			Usage:     "Validate, parse and double each argument",
			ArgsUsage: "<value>...",
			Action:    cmdPipeline,
		},
	}
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("Command failed: %v", err)
	}
}

var runID = uuid.New()
