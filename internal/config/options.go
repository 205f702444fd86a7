package config

// ConfigOption describes one configuration key, its default and the
// comment written into generated config files.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// Log levels accepted by log.level.
const (
	LogQuiet = "quiet"
	LogInfo  = "info"
	LogDebug = "debug"
)

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; DB is data_dir/scribe.db"},
		{Key: "db_url", Default: "", Comment: "Storage URL: sqlite://<path> or mem:// (empty uses data_dir)"},

		{Key: "log.level", Default: LogInfo, Comment: "Log verbosity: quiet, info or debug"},
		{Key: "editor.delete_empty", Default: true, Comment: "Delete a new document if the editor exits with no content"},
		{Key: "preview.style", Default: "dracula", Comment: "Glamour style for terminal output (dark, light, dracula, notty, ...)"},
		{Key: "preview.word_wrap", Default: 80, Comment: "Wrap width for terminal output"},
		{Key: "preview.sanitize", Default: false, Comment: "Strip unsafe raw HTML from HTML previews"},
		{Key: "sync.delay_ms", Default: 150, Comment: "How long a sync pass reports syncing, in milliseconds"},
		{Key: "export.frontmatter", Default: true, Comment: "Prefix Markdown exports with YAML front matter"},
		{Key: "list.limit", Default: 50, Comment: "Default number of documents shown by doc list"},
	}
}
