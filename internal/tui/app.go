package tui

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes messages to the active page, handles the global quit and
// build-info keys and remembers the last account that logged in.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	account   models.Account
	buildInfo models.AppBuildInfo

	showBuildInfo bool

	ctx           context.Context
	versions      ServerVersionReporter
	serverVersion string
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

// withServerVersion makes the build-info window ask versions for the server
// version each time it opens.
func (r RootModel) withServerVersion(ctx context.Context, versions ServerVersionReporter) RootModel {
	r.ctx = ctx
	r.versions = versions
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo && r.versions != nil {
				r.serverVersion = serverVersionPending
				return r, r.cmdServerVersion()
			}
			return r, nil
		case key.Matches(keyMsg, keys.back) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			payload := nav.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()
	}

	if result, ok := msg.(ServerVersionResult); ok {
		if result.Err != nil {
			r.serverVersion = humanizeError(result.Err)
		} else {
			r.serverVersion = result.Version
		}
		return r, nil
	}

	if result, ok := msg.(LoginResult); ok && result.Err == nil {
		r.account = result.Account
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	if r.current == nil {
		return renderPage("ACCOUNT KEEPER", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

const serverVersionPending = "checking..."

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx := r.ctx
	versions := r.versions

	return func() tea.Msg {
		version, err := versions.ServerVersion(ctx)
		return ServerVersionResult{Version: version, Err: err}
	}
}
