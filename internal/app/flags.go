package app

import (
	"flag"
	"fmt"
	"strings"

	"lightsout/internal/config"
	"lightsout/internal/settings"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits key=value entries, skipping malformed ones.
func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Options represents the command-line parameters shared by the front-ends.
type Options struct {
	ConfigPath string
	Save       bool

	flags     config.Config
	overrides kvList
	fs        *flag.FlagSet
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	o.fs = fs
	o.flags = config.DefaultConfig()
	o.flags.Bind(fs)
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "YAML preset file")
	fs.BoolVar(&o.Save, "save", o.Save, "remember the resolved settings")
	fs.Var(&o.overrides, "set", "parameter override in key=value form (repeatable)")
}

// Resolve layers saved settings, the preset file, LIGHTSOUT_* variables,
// explicit flags and -set overrides, in that order.
func (o *Options) Resolve(store *settings.Store) (config.Config, error) {
	cfg := store.Current()
	if o.ConfigPath != "" {
		loaded, err := config.LoadFile(o.ConfigPath, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if o.fs != nil {
		explicit := map[string]string{}
		o.fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		cfg.Apply(explicit)
	}
	cfg.Apply(o.overrides.Map())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if o.Save {
		if err := store.Save(cfg); err != nil {
			return cfg, fmt.Errorf("remember settings: %w", err)
		}
	}
	return cfg, nil
}
