package wire

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/scribe/internal/config"
	"github.com/mithrel/scribe/internal/db"
	synsvc "github.com/mithrel/scribe/internal/sync"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg   *viper.Viper
	Log   *log.Logger
	Store db.Store
	Sync  *synsvc.Engine
}

// NewLogger builds the process logger for the configured log.level.
func NewLogger(v *viper.Viper, w io.Writer) *log.Logger {
	switch strings.ToLower(v.GetString("log.level")) {
	case config.LogQuiet:
		return log.New(io.Discard, "", 0)
	case config.LogDebug:
		return log.New(w, "scribe ", log.LstdFlags|log.Lshortfile)
	}
	return log.New(w, "scribe ", log.LstdFlags)
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	logger := NewLogger(v, os.Stderr)
	store, err := db.Open(ctx, v.GetString("db_url"))
	if err != nil {
		return nil, err
	}
	engine := synsvc.New(v, store, logger)
	if err := engine.Start(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return &App{
		Cfg:   v,
		Log:   logger,
		Store: store,
		Sync:  engine,
	}, nil
}

// Close stops the sync engine and releases the store.
func (a *App) Close() error {
	a.Sync.Stop()
	return a.Store.Close()
}
