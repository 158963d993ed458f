// Command giftswap pairs every participant of a gift exchange with someone
// else to give to, preferring givers who can offer what receivers want.
//
//	giftswap -input roster.json -seed 42 -score
//	GIFTSWAP_RESTARTS=20 giftswap -workers 4 < roster.json -input -
package main

import (
	"flag"
	"os"

	"github.com/katalvlaran/giftswap/internal/cli"
	"github.com/katalvlaran/giftswap/internal/logging"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		cli.Exitf("parse config: %v", err)
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		cli.Exitf("configure logging: %v", err)
	}
	if err := cli.Run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		cli.Exitf("allocate: %v", err)
	}
}
