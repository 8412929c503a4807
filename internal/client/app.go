package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/tui"
	"github.com/MKhiriev/go-account-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	accounts tui.AccountClient
	tui      *tui.TUI
	storages *store.Storages

	logger *logger.Logger
}

// NewApp selects the account backend from cfg and builds the terminal UI
// around it. Extra program options are passed to Bubble Tea.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger, options ...tea.ProgramOption) (*App, error) {
	app := &App{logger: log}

	if cfg.Adapter.HTTPAddress != "" {
		remote, err := adapter.NewHTTPAccountAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create account adapter: %w", err)
		}
		app.accounts = remote
		log.Info().Str("server", cfg.Adapter.HTTPAddress).Msg("client runs in remote mode")
	} else {
		storages, err := store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("create storages: %w", err)
		}
		services, err := service.NewServices(storages, cfg.App, log)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create services: %w", err)
		}
		app.storages = storages
		app.accounts = newLocalAccounts(services)
		log.Info().Str("driver", cfg.Storage.DB.Driver).Msg("client runs in local mode")
	}

	app.tui = tui.New(app.accounts, buildInfo, cfg.App.MaxUsernameLength, log, options...)
	return app, nil
}

// Run shows the terminal UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	account, err := a.tui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}

	a.logger.Info().Int64("account_id", account.ID).Str("username", account.Username).Msg("client finished")
	return nil
}

func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}

// localAccounts adapts the in-process services to [tui.AccountClient].
type localAccounts struct {
	registration service.RegistrationService
	auth         service.AuthService
}

func newLocalAccounts(services *service.Services) *localAccounts {
	return &localAccounts{
		registration: services.RegistrationService,
		auth:         services.AuthService,
	}
}

func (l *localAccounts) Register(ctx context.Context, form models.RegistrationForm) (models.Account, error) {
	return l.registration.Register(ctx, form)
}

func (l *localAccounts) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	return l.auth.Login(ctx, credentials)
}
