package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/kit"
	"github.com/npillmayer/kit/format"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/appender"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// traceKeys are the tracers of this module. They are re-directed to the
// log file, if any.
var traceKeys = []string{"kit.cli", "kit.format", "kit.balance", "kit.stream"}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate recfmt configuration with an application-key of 'RECFMT' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "RECFMT", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		kit.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		kit.Exit(1)
	}
	kit.Configuration = konf // push the configuration to app-global scope
}

// mergeFlags loads the command line flags on top of the configuration
// file. Flags which have not been set explicitly do not override values
// from the file.
func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	return konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	if dest := logDestination(konf.GetString("logfile")); dest != "" {
		tracing.Infof("opening tracing destination %q", dest)
		w, err := appender.Destination(dest)
		if err != nil {
			return err
		}
		kit.Tracefile = w
		trace2go.Root().SetOutput(w)
		for _, key := range traceKeys {
			tracing.Select(key).SetOutput(w)
		}
	}
	tracer().Infof("%s %s", rootCmd.Use, version)
	return nil
}

// logDestination turns the logfile flag into a destination URL. Relative
// file names are located in the configuration directory.
func logDestination(logname string) string {
	if logname == "" || strings.EqualFold(logname, "stderr") {
		return ""
	}
	if strings.Contains(logname, ":") || strings.EqualFold(logname, "stdout") {
		return logname
	}
	if strings.HasPrefix(logname, "/") {
		return "file://" + logname
	}
	paths, err := DefaultAppPaths("RECFMT")
	if err != nil || paths.ConfigDir() == "" {
		tracing.Errorf("cannot configure paths: %v", err)
		return "file://" + logname
	}
	return "file://" + paths.ConfigDir() + "/" + logname
}

// formatOptions reads the parser properties from the configuration.
func formatOptions(conf schuko.Configuration) []format.Option {
	if conf == nil {
		return nil
	}
	return []format.Option{
		format.Trim(conf.GetBool("trim")),
		format.AcceptBlankValues(conf.GetBool("blank-values")),
		format.AcceptBlankColumns(conf.GetBool("blank-columns")),
		format.TabAsSpace(conf.GetBool("tab-as-space")),
		format.SpaceInColumn(conf.GetBool("space-in-column")),
	}
}
