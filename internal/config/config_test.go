package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	v := viper.New()
	require.NoError(t, Load(context.Background(), v))
	assert.Equal(t, filepath.Join(dir, "data", "scribe"), v.GetString("data_dir"))
	assert.Equal(t, "sqlite://"+filepath.Join(dir, "data", "scribe", "scribe.db"), v.GetString("db_url"))
	assert.Equal(t, 150, v.GetInt("sync.delay_ms"))
	assert.Equal(t, "dracula", v.GetString("preview.style"))
	assert.NoError(t, CheckConfigValidity(v))
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "scribe")
	require.NoError(t, os.MkdirAll(cfgDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(
		"db_url = \"mem://\"\n[preview]\nstyle = \"light\"\nword_wrap = 100\n"), 0o600))
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SCRIBE_PREVIEW_WORD_WRAP", "60")

	v := viper.New()
	require.NoError(t, Load(context.Background(), v))
	assert.Equal(t, "mem://", v.GetString("db_url"))
	assert.Equal(t, "light", v.GetString("preview.style"))
	assert.Equal(t, 60, v.GetInt("preview.word_wrap"), "env beats file")
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is = = not toml"), 0o600))
	v := viper.New()
	v.SetConfigFile(path)
	assert.Error(t, Load(context.Background(), v))
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("data_dir", "")
	v.Set("db_url", "postgres://x")
	v.Set("log.level", "loud")
	v.Set("preview.style", "")
	v.Set("preview.word_wrap", 0)
	v.Set("sync.delay_ms", -1)
	v.Set("list.limit", 0)

	err := CheckConfigValidity(v)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"data_dir is required",
		"must start with sqlite:// or mem://",
		"log.level",
		"preview.style is required",
		"preview.word_wrap must be greater than 0",
		"sync.delay_ms must not be negative",
		"list.limit must be greater than 0",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()
	assert.True(t, strings.HasPrefix(out, "# scribe configuration (TOML)\n"))
	assert.Contains(t, out, "[preview]\n")
	assert.Contains(t, out, "word_wrap = 80\n")
	assert.Contains(t, out, "db_url = \"\"\n")
	assert.Less(t, strings.Index(out, "db_url"), strings.Index(out, "[log]"))

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(out)))
	assert.Equal(t, "dracula", v.GetString("preview.style"))
	assert.True(t, v.GetBool("export.frontmatter"))
}

func TestUpdateTOML(t *testing.T) {
	existing := "[preview]\nstyle = \"light\"\nold_key = 1\n"
	out, changed := UpdateTOML(existing)
	require.True(t, changed)
	assert.Contains(t, out, "style = \"light\"")
	assert.Contains(t, out, "# OUTDATED: option removed from config schema\n# old_key = 1")
	assert.Less(t, strings.Index(out, "data_dir ="), strings.Index(out, "[preview]"))
	assert.Contains(t, out, "[sync]\n")

	again, changed := UpdateTOML(out)
	assert.False(t, changed)
	assert.Equal(t, out, again)

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(out)))
	assert.Equal(t, "light", v.GetString("preview.style"))
}

func TestWriteFileModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe", "config.toml")
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	res, err := WriteFile(path, WriteNew, now)
	require.NoError(t, err)
	assert.Empty(t, res.Backup)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, RenderDefaultTOML(), string(data))

	_, err = WriteFile(path, WriteNew, now)
	assert.ErrorIs(t, err, ErrConfigExists)

	res, err = WriteFile(path, WriteUpdate, now)
	require.NoError(t, err)
	assert.True(t, res.Unchanged)

	require.NoError(t, os.WriteFile(path, []byte("stale_key = 1\n"), 0o600))
	res, err = WriteFile(path, WriteUpdate, now)
	require.NoError(t, err)
	assert.Equal(t, path+".bak", res.Backup)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# OUTDATED")
	assert.Contains(t, string(data), "[list]")

	res, err = WriteFile(path, WriteOverwrite, now)
	require.NoError(t, err)
	assert.Equal(t, path+".bak-20240506-070809", res.Backup)
}
