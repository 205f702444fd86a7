package config

import (
	"fmt"
	"strconv"
	"strings"
)

// section groups options by the prefix before the first dot; top-level
// keys live in the "" section. GetConfigOptions lists top-level keys first
// so that they precede every table header.
type section struct {
	name string
	opts []ConfigOption
}

func groupOptions(opts []ConfigOption) []section {
	var out []section
	index := map[string]int{}
	for _, o := range opts {
		name, key := "", o.Key
		if i := strings.IndexByte(o.Key, '.'); i >= 0 {
			name, key = o.Key[:i], o.Key[i+1:]
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, section{name: name})
		}
		out[i].opts = append(out[i].opts, ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	return out
}

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	lines := []string{"# scribe configuration (TOML)"}
	for _, s := range groupOptions(GetConfigOptions()) {
		if s.name != "" {
			lines = append(lines, "["+s.name+"]")
		}
		for _, o := range s.opts {
			lines = appendOption(lines, o)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// UpdateTOML appends missing defaults to an existing TOML string and
// comments out keys that are no longer known.
func UpdateTOML(existing string) (string, bool) {
	opts := GetConfigOptions()
	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	seen := make(map[string]bool)
	current := ""
	changed := false
	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") || strings.HasPrefix(trim, ";") {
			out = append(out, line)
			continue
		}
		if h, ok := tableHeader(line); ok {
			current = h
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		if current != "" {
			key = current + "." + key
		}
		seen[key] = true
		if !known[key] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out,
				indent+"# OUTDATED: option removed from config schema",
				indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		out = append(out, line)
	}

	var missing []ConfigOption
	for _, o := range opts {
		if !seen[o.Key] {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return strings.Join(out, "\n"), changed
	}

	for _, s := range groupOptions(missing) {
		var block []string
		for _, o := range s.opts {
			block = appendOption(block, o)
		}
		if s.name == "" {
			// Top-level keys go ahead of the first table header.
			at := tableStart(out, "")
			out = insertLines(out, at, append([]string{"# Added by config update"}, block...))
			continue
		}
		if at := tableStart(out, s.name); at >= 0 {
			out = insertLines(out, tableEnd(out, at), block)
			continue
		}
		out = append(out, "", "["+s.name+"]")
		out = append(out, block...)
	}
	return strings.Join(out, "\n"), true
}

func insertLines(lines []string, at int, block []string) []string {
	tail := append(append([]string{}, block...), lines[at:]...)
	return append(lines[:at], tail...)
}

func tableHeader(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		return strings.TrimSpace(t[1 : len(t)-1]), true
	}
	return "", false
}

// tableStart returns the index of the [name] header. For name "" it
// returns the index of the first header (or len(lines)); otherwise -1
// when the table is absent.
func tableStart(lines []string, name string) int {
	for i, l := range lines {
		if h, ok := tableHeader(l); ok && (name == "" || h == name) {
			return i
		}
	}
	if name == "" {
		return len(lines)
	}
	return -1
}

// tableEnd returns the index just past the table whose header is at start.
func tableEnd(lines []string, start int) int {
	for i := start + 1; i < len(lines); i++ {
		if _, ok := tableHeader(lines[i]); ok {
			return i
		}
	}
	return len(lines)
}
