// Command recfmt validates and parses flat text records against a pattern.
//
// Usage:
//
//     recfmt check  <pattern>
//     recfmt parse  --pattern <pattern> [--table|--binary] [file …]
//     recfmt repl   --pattern <pattern>
//     recfmt types
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/kit"
	"github.com/npillmayer/kit/recfmt/cli"
)

func main() {
	var stop context.CancelFunc
	kit.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
}
