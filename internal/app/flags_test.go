package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightsout/internal/config"
	"lightsout/internal/settings"
	"lightsout/pkg/lightsout"
)

func parseOptions(t *testing.T, args ...string) *Options {
	t.Helper()
	o := &Options{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return o
}

func TestResolveDefaults(t *testing.T) {
	o := parseOptions(t)
	cfg, err := o.Resolve(settings.NewStore(nil))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestResolveLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 10\ncolumns: 10\nlit: 20\nseed: 5\n"), 0o644))
	t.Setenv("LIGHTSOUT_COLUMNS", "12")

	store := settings.NewStore(nil)
	saved := config.DefaultConfig()
	saved.Scale = 30
	require.NoError(t, store.Save(saved))

	o := parseOptions(t, "-config", path, "-lit", "25", "-set", "seed=77", "-set", "bogus")
	cfg, err := o.Resolve(store)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, 12, cfg.Columns)
	assert.Equal(t, 25, cfg.InitialCount)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, 30, cfg.Scale)
}

func TestResolveRejectsInvalid(t *testing.T) {
	o := parseOptions(t, "-rows", "3")
	_, err := o.Resolve(settings.NewStore(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, lightsout.ErrOutOfRange))
}

func TestResolveSave(t *testing.T) {
	store := settings.NewStore(nil)
	o := parseOptions(t, "-rows", "8", "-save")
	cfg, err := o.Resolve(store)
	require.NoError(t, err)
	assert.Equal(t, cfg, store.Current())
	assert.Equal(t, 8, store.Current().Rows)
}

func TestKVListMap(t *testing.T) {
	var l kvList
	require.NoError(t, l.Set("rows=6"))
	require.NoError(t, l.Set(" lit = 4 "))
	require.NoError(t, l.Set("nope"))
	assert.Equal(t, map[string]string{"rows": "6", "lit": "4"}, l.Map())
	assert.Equal(t, "rows=6, lit = 4 ,nope", l.String())
}
