// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end: a menu, a registration form and a
// login form built with Bubble Tea.
//
// The forms talk to an [AccountClient], satisfied both by the local services
// and by the HTTP adapter, so the UI does not know where accounts live.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

// AccountClient registers and authenticates accounts.
type AccountClient interface {
	Register(ctx context.Context, form models.RegistrationForm) (models.Account, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)
}

// ServerVersionReporter is implemented by clients backed by a remote server.
// The build-info window shows the reported version next to the local one.
type ServerVersionReporter interface {
	ServerVersion(ctx context.Context) (string, error)
}

type TUI struct {
	client    AccountClient
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	maxUsernameLength int

	logger *logger.Logger
}

func New(client AccountClient, buildInfo models.AppBuildInfo, maxUsernameLength int, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{
		client:            client,
		buildInfo:         buildInfo,
		options:           options,
		maxUsernameLength: maxUsernameLength,
		logger:            logger,
	}
}

// Run shows the menu and blocks until the user quits. It returns the last
// account that logged in, or ErrUserQuit if nobody did.
func (t *TUI) Run(ctx context.Context) (models.Account, error) {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, t.options...).Run()
	if err != nil {
		return models.Account{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Account{}, tea.ErrProgramKilled
	}
	if result.account.ID == 0 {
		return models.Account{}, ErrUserQuit
	}

	t.logger.Info().Int64("account_id", result.account.ID).Msg("terminal session finished")
	return result.account, nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.client),
		pageRegister: NewRegisterModel(ctx, t.client, t.maxUsernameLength),
		pageWelcome:  NewWelcomeModel(),
	}
	root := NewRootModel(pages, pageMenu, t.buildInfo)
	if versions, ok := t.client.(ServerVersionReporter); ok {
		root = root.withServerVersion(ctx, versions)
	}
	return root
}
