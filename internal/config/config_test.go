package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves into an empty directory so no stray tipcalc.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("locale", "", "")
	fs.String("currency", "", "")
	fs.StringSlice("presets", nil, "")
	fs.Float64("max-bill", 0, "")
	fs.Int64("max-party-count", 0, "")
	fs.Duration("toast-duration", 0, "")
	fs.String("log-level", "", "")
	fs.String("log-file", "", "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_UnchangedFlagsKeepDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, _, err := Load("", testFlags())
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, []string{"5", "10", "15", "20", "25"}, cfg.Presets)
	assert.Equal(t, 3*time.Second, cfg.ToastDuration)
}

func TestLoad_File(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "tipcalc.yaml")
	content := `locale: ru-RU
currency: RUB
presets: ["10", "12.5", "20"]
max_bill: 500000
toast_duration: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "tipcalc.yaml", filepath.Base(used))
	assert.Equal(t, "ru-RU", cfg.Locale)
	assert.Equal(t, "RUB", cfg.Currency)
	assert.Equal(t, []string{"10", "12.5", "20"}, cfg.Presets)
	assert.Equal(t, 500000.0, cfg.MaxBill)
	assert.Equal(t, int64(100), cfg.MaxPartyCount)
	assert.Equal(t, 5*time.Second, cfg.ToastDuration)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := chdirTemp(t)

	_, _, err := Load(filepath.Join(dir, "missing.toml"), nil)
	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.toml")
	content := `locale = "de-DE"
currency = "EUR"
max_party_count = 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// Env beats file.
	t.Setenv("TIPCALC_CURRENCY", "CHF")
	t.Setenv("TIPCALC_MAX_PARTY_COUNT", "30")

	// Flags beat env.
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--max-party-count", "40", "--presets", "1,2"}))

	cfg, used, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, "CHF", cfg.Currency)
	assert.Equal(t, int64(40), cfg.MaxPartyCount)
	assert.Equal(t, []string{"1", "2"}, cfg.Presets)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"no presets", func(c *Config) { c.Presets = nil }, "presets"},
		{"non-numeric preset", func(c *Config) { c.Presets = []string{"ten"} }, "presets"},
		{"preset with trailing text", func(c *Config) { c.Presets = []string{"10", "12abc"} }, "presets"},
		{"preset with percent sign", func(c *Config) { c.Presets = []string{"15%"} }, "presets"},
		{"nan preset", func(c *Config) { c.Presets = []string{"NaN"} }, "presets"},
		{"infinite preset", func(c *Config) { c.Presets = []string{"Inf"} }, "presets"},
		{"negative preset", func(c *Config) { c.Presets = []string{"-5"} }, "presets"},
		{"zero max bill", func(c *Config) { c.MaxBill = 0 }, "max_bill"},
		{"negative party limit", func(c *Config) { c.MaxPartyCount = -1 }, "max_party_count"},
		{"zero toast", func(c *Config) { c.ToastDuration = 0 }, "toast_duration"},
		{"empty locale", func(c *Config) { c.Locale = "" }, "locale"},
		{"empty currency", func(c *Config) { c.Currency = "" }, "currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Presets = []string{"0", "12.5", "18"}
	assert.NoError(t, cfg.Validate())
}

func TestLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBill = 42
	cfg.MaxPartyCount = 7

	limits := cfg.Limits()
	assert.Equal(t, 42.0, limits.MaxBill)
	assert.Equal(t, int64(7), limits.MaxPartyCount)
}
