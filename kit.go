// Package kit is a toolkit for parsing flat text records, driven by
// patterns. See package format for the pattern grammar, and command
// recfmt for a command line front end.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package kit

import (
	"context"
	"io"
	"os"

	"github.com/npillmayer/schuko"
)

// Configuration holds global configuration values. It is set up by the
// command line front end.
var Configuration schuko.Configuration

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
