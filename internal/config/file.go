package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteMode selects how WriteFile treats an existing config file.
type WriteMode int

const (
	WriteNew       WriteMode = iota // fail if the file exists
	WriteOverwrite                  // replace with defaults, keeping a backup
	WriteUpdate                     // merge new keys into the file, keeping a backup
)

// WriteResult describes what WriteFile did.
type WriteResult struct {
	Path      string
	Backup    string // empty when no backup was taken
	Unchanged bool   // WriteUpdate found nothing to add or retire
}

// ErrConfigExists is returned by WriteFile in WriteNew mode.
var ErrConfigExists = errors.New("config already exists")

// WriteFile renders the default TOML (or the merged file for WriteUpdate)
// to path. now stamps the backup name when path.bak is taken.
func WriteFile(path string, mode WriteMode, now time.Time) (WriteResult, error) {
	res := WriteResult{Path: path}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return res, err
	}
	existing, err := os.ReadFile(path)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return res, err
	}

	content := RenderDefaultTOML()
	switch {
	case exists && mode == WriteNew:
		return res, fmt.Errorf("%w at %s; use --overwrite to replace it or --update to merge defaults", ErrConfigExists, path)
	case exists && mode == WriteUpdate:
		updated, changed := UpdateTOML(string(existing))
		if !changed {
			res.Unchanged = true
			return res, nil
		}
		content = updated
	}

	if exists {
		if res.Backup, err = backup(path, existing, now); err != nil {
			return res, err
		}
	}
	return res, os.WriteFile(path, []byte(content), 0o600)
}

func backup(path string, data []byte, now time.Time) (string, error) {
	name := path + ".bak"
	if _, err := os.Stat(name); err == nil {
		name = fmt.Sprintf("%s.bak-%s", path, now.Format("20060102-150405"))
	}
	return name, os.WriteFile(name, data, 0o600)
}
