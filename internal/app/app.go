package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/lsmdash/internal/config"
	"github.com/five82/lsmdash/internal/control"
	"github.com/five82/lsmdash/internal/lsmdb"
	"github.com/five82/lsmdash/internal/prefs"
	"github.com/five82/lsmdash/internal/state"
	"github.com/five82/lsmdash/internal/ui"
)

// Options configure the lsmdash application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/lsmdash/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logFile.Close()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		slog.Warn("prefs unreadable, using defaults", "error", err)
	}

	client, err := lsmdb.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init lsm client: %w", err)
	}

	interval := cfg.PollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	store := &state.Store{}
	poller := control.NewPoller(store, client, control.PollerOptions{
		Interval: interval,
		Ordered:  cfg.OrderedStats,
	})
	dispatcher := control.NewDispatcher(store, client, poller, nil)

	slog.Info("dashboard starting",
		"api_url", client.BaseURL(),
		"poll_interval", interval,
		"request_timeout", cfg.RequestTimeout,
		"ordered_stats", cfg.OrderedStats,
	)

	poller.Activate(ctx)
	defer poller.Deactivate()

	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      store,
		Dispatcher: dispatcher,
		Stats:      poller,
		BaseURL:    client.BaseURL(),
		LogPath:    cfg.LogFile,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	})
}
