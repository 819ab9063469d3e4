package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/outcome/internal/decode"
	"github.com/ib-77/outcome/internal/fetch"
	"github.com/ib-77/outcome/internal/signup"
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/chain"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

func cmdParse(cctx *cli.Context) error {
	var doc rop.Of[decode.Document]
	switch {
	case cctx.String("file") != "":
		doc = decode.File[decode.Document](cctx.String("file"))
	case cctx.Args().Present():
		doc = decode.JSON[decode.Document]([]byte(cctx.Args().First()))
	default:
		return fmt.Errorf("expected a JSON argument or --file")
	}

	if !report[decode.Document, error](os.Stdout, "parse", doc) {
		return failed(1, 1)
	}
	return nil
}

func cmdFetch(cctx *cli.Context) error {
	urls := cctx.Args().Slice()
	if len(urls) == 0 {
		return fmt.Errorf("expected at least one url")
	}

	opts := fetch.Opts{
		Limit:   fetch.Unlimited,
		Burst:   cctx.Int("burst"),
		Timeout: cctx.Duration("timeout"),
	}
	if interval := cctx.Duration("rate"); interval > 0 {
		opts.Limit = fetch.Every(interval)
	}

	log.Infof("run %s: fetching %d urls", runID, len(urls))
	res := fetch.New(opts).All(cctx.Context, urls)

	bad := 0
	for i, r := range res {
		if !report[decode.Document, error](os.Stdout, urls[i], r) {
			bad++
		}
	}
	return failed(bad, len(urls))
}

func cmdSignup(cctx *cli.Context) error {
	acct := signup.Register(cctx.String("username"), cctx.String("email"))

	solo.Tee(acct, func(a signup.Account) {
		log.Infof("run %s: registered %s as %s", runID, a.Username, a.ID)
	})

	if !report[signup.Account, signup.ValidationError](os.Stdout, "signup", acct) {
		return failed(1, 1)
	}
	return nil
}

func cmdPipeline(cctx *cli.Context) error {
	args := cctx.Args().Slice()

	bad := 0
	for _, s := range args {
		if !report[int, error](os.Stdout, strconv.Quote(s), doubled(cctx.Context, s)) {
			bad++
		}
	}
	return failed(bad, len(args))
}

// doubled checks s is not empty, parses it and doubles the number.
func doubled(ctx context.Context, s string) rop.Of[int] {
	nonEmpty := solo.Validate(s, func(s string) (bool, string) {
		return s != "", "empty"
	})

	return chain.ThenTry(chain.Start(ctx, nonEmpty), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Map(func(_ context.Context, n int) int {
		return n * 2
	}).Result()
}
