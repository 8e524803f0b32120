// Package cli implements the recfmt command line interface.
//
// Properties of the record parser may be given as flags or in a
// configuration file "recfmt.nt" in the user's configuration directory,
// with the flag names as keys.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'kit.cli'
func tracer() tracing.Trace {
	return tracing.Select("kit.cli")
}
