package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// CheckConfigValidity reports every invalid setting at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	if strings.TrimSpace(v.GetString("data_dir")) == "" {
		errs = append(errs, errors.New("data_dir is required"))
	}
	if u := strings.TrimSpace(v.GetString("db_url")); u != "" &&
		!strings.HasPrefix(u, "sqlite://") && !strings.HasPrefix(u, "mem://") {
		errs = append(errs, fmt.Errorf("db_url %q must start with sqlite:// or mem://", u))
	}
	switch lvl := strings.ToLower(v.GetString("log.level")); lvl {
	case LogQuiet, LogInfo, LogDebug:
	default:
		errs = append(errs, fmt.Errorf("log.level %q must be quiet, info or debug", lvl))
	}
	if strings.TrimSpace(v.GetString("preview.style")) == "" {
		errs = append(errs, errors.New("preview.style is required"))
	}
	if v.GetInt("preview.word_wrap") <= 0 {
		errs = append(errs, errors.New("preview.word_wrap must be greater than 0"))
	}
	if v.GetInt("sync.delay_ms") < 0 {
		errs = append(errs, errors.New("sync.delay_ms must not be negative"))
	}
	if v.GetInt("list.limit") <= 0 {
		errs = append(errs, errors.New("list.limit must be greater than 0"))
	}
	return errors.Join(errs...)
}
