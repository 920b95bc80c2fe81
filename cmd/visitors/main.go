// Command visitors records one visit against the counter endpoint and prints
// the new total, or "Error" when the request fails.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cloudresume/visitors/config"
	"github.com/cloudresume/visitors/counter"
	"github.com/cloudresume/visitors/display"
	"github.com/jessevdk/go-flags"
	log "github.com/mgutz/logxi/v1"
)

type options struct {
	Env      string `long:"env" description:"Counter environment" choice:"production" choice:"local"`
	Endpoint string `long:"endpoint" description:"Counter endpoint URL, overrides --env"`
	EnvFile  string `long:"env-file" description:"File of KEY=value settings" default:".env"`
}

func main() {
	err := run(os.Args[1:], os.Stdout, log.NewLogger(log.NewConcurrentWriter(os.Stderr), "visitors"))

	flagErr, isFlagErr := err.(*flags.Error)
	if err == nil || (isFlagErr && flagErr.Type == flags.ErrHelp) {
		os.Exit(0)
	}

	os.Exit(1)
}

func run(args []string, stdout io.Writer, logger log.Logger) error {
	var opts options
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return err
	}

	cfg := config.LoadUnresolved(opts.EnvFile)
	if opts.Env != "" {
		cfg.Env = opts.Env
		cfg.Endpoint = ""
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}
	if err := cfg.Resolve(); err != nil {
		logger.Error("unable to resolve endpoint", "err", err)
		return err
	}
	endpoint := cfg.Endpoint

	client := counter.New(endpoint, counter.WithLogger(logger))
	count, err := client.Increment(context.Background())
	display.Show(display.WriterTarget{W: stdout}, count, err, logger)
	if err != nil {
		return fmt.Errorf("increment %s: %w", endpoint, err)
	}

	return nil
}
