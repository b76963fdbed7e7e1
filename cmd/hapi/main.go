package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/wheelibin/hapi/hue"
	"github.com/wheelibin/hapi/internal/cli"
	"github.com/wheelibin/hapi/internal/config"
	"github.com/wheelibin/hapi/internal/logging"
	"github.com/wheelibin/hapi/lights"
)

func main() {
	os.Exit(run())
}

func run() int {

	flags := config.NewFlagSet()
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, cli.Usage)
		fmt.Fprintln(os.Stderr, "\nflags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	// read the config file, env and flags
	cfg, err := config.ReadConfig(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, closeLog := logging.NewLogger(*cfg)
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		logger.Error(err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// create/wire up services
	hs := hue.NewHueAPIService(logger, hue.NewUser(cfg.BridgeIP, cfg.UserID), cfg.Timeout)
	c := lights.NewController(logger, hs)

	if err := cli.Run(ctx, c, flags.Args(), os.Stdout); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, cli.Usage)
			return 2
		}
		logger.Error(err)
		return 1
	}

	return 0
}
