package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/region-mirror/internal/config"
	"github.com/MKhiriev/region-mirror/internal/logger"
	"github.com/MKhiriev/region-mirror/internal/manager"
	"github.com/MKhiriev/region-mirror/internal/transport"
	"github.com/MKhiriev/region-mirror/internal/tui"
	"github.com/MKhiriev/region-mirror/models"
)

// machinePKField is the primary key attribute of the machine collection.
const machinePKField = "system_id"

type App struct {
	cfg *config.ClientConfig
	log *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil client config")
	}
	return &App{cfg: cfg, log: log}, nil
}

// Run logs in, dials the websocket, builds the machine mirror, and hands the
// terminal over to the UI. It blocks until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := transport.Login(ctx, transport.LoginConfig{
		BaseURL: a.cfg.Region.HTTPBaseURL,
		Timeout: a.cfg.Region.RequestTimeout,
	}, models.Credentials{
		Username: a.cfg.Region.Username,
		Password: a.cfg.Region.Password,
	})
	if err != nil {
		return fmt.Errorf("region login: %w", err)
	}

	tr, err := transport.Dial(ctx, transport.WebsocketConfig{
		URL:            a.cfg.Region.WebsocketURL,
		Session:        session,
		RequestTimeout: a.cfg.Region.RequestTimeout,
	}, a.log.GetChildLogger())
	if err != nil {
		return fmt.Errorf("dial region: %w", err)
	}
	defer tr.Close()

	machines, err := manager.NewManager(tr, manager.Config{
		Handler:      "machine",
		PKField:      machinePKField,
		TrackedAttrs: []string{"status", "owner", "zone"},
	}, a.log.GetChildLogger())
	if err != nil {
		return fmt.Errorf("create machine mirror: %w", err)
	}

	// reconnects refresh the mirror; the ticker covers quiet drifts
	machines.EnableAutoReload()
	defer machines.DisableAutoReload()

	job := manager.NewReloadJob(machines, a.log.GetChildLogger())
	job.Start(ctx, a.cfg.Mirror.ReloadInterval)
	defer job.Stop()

	ui := tui.New(machines, machinePKField, a.log.GetChildLogger())
	return ui.Run(ctx)
}
