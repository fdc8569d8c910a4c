package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/whileproc"
	"github.com/spf13/pflag"
)

// appTag identifies whileproc for locating configuration files and paths.
const appTag = "WHILEPROC"

// envPrefix is the prefix of environment variables overriding configuration,
// e.g. WHILEPROC_TRACELEVEL=debug.
const envPrefix = appTag + "_"

// traceKeys are the keys of all tracers of the application. The 'tracelevel'
// configuration value applies to all of them.
var traceKeys = []string{
	"whileproc.app",
	"whileproc.grammar",
	"whileproc.runtime",
	"whileproc.core",
	"whileproc.eval",
	"whileproc.cli",
}

var defaults = map[string]interface{}{
	"tracelevel":  "Error",
	"interactive": false,
	"ast":         false,
	"logfile":     "stderr",
}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	konf, err := setupConfig(rootCmd.PersistentFlags())
	if err != nil {
		tracing.Errorf(err.Error())
		whileproc.Exit(2)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		whileproc.Exit(2)
	}
	whileproc.Configuration = konf.Koanf() // push the configuration to app-global scope
}

// setupConfig merges configuration layers, later ones overriding earlier ones:
// built-in defaults, a config file in NestedText format (if found), environment
// variables and command line flags.
func setupConfig(flags *pflag.FlagSet) (*koanfadapter.KConf, error) {
	k := koanf.New(".") // '.' is hierarchy delimiter
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}
	// We locate whileproc configuration with an application-key of 'WHILEPROC' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, appTag, []string{"nt"})
	konf.InitDefaults()
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}
	if err := mergeFlags(konf, flags); err != nil {
		return nil, err
	}
	return konf, nil
}

// envKey maps WHILEPROC_TRACELEVEL to tracelevel.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

func mergeFlags(konf *koanfadapter.KConf, flags *pflag.FlagSet) error {
	if flags != nil {
		err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
		if err != nil {
			return err
		}
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	level := konf.GetString("tracelevel")
	for _, key := range traceKeys {
		if !konf.Koanf().Exists("trace." + key) {
			konf.Set("trace."+key, level)
		}
	}
	if !konf.Koanf().Exists("trace.root") {
		konf.Set("trace.root", level)
	}
	return nil
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") {
			if paths, err := DefaultAppPaths(appTag); err == nil {
				konf.Set("tracing.destination", "file://"+paths.LogDir()+"/"+dest)
			}
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("configuration loaded, trace level %s", konf.GetString("tracelevel"))
	return nil
}
