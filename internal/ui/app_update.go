package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zhang1786/fuel-tracker-app/internal/config"
	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
	"github.com/zhang1786/fuel-tracker-app/internal/ui/overlays"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.ready {
			a.ready = true
			return a, doTick(a.refreshInterval())
		}
		return a, nil

	case tea.KeyMsg:
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleGlobalKey(msg)

	case BlinkMsg:
		a.animTick++
		a.propagateAnimTick()
		return a, doBlink()

	case TickMsg:
		a.notifications.Expire()
		a.refreshData()
		return a, doTick(a.refreshInterval())

	case ledgerEventMsg:
		a.refreshData()
		return a, waitForEvent(a.events)

	case overlays.AddRecordMsg:
		return a, a.addRecord(msg.Input)

	case addResultMsg:
		a.refreshData()
		switch {
		case msg.err == nil:
			a.notifications.SetMessage(i18n.T("notify_added"))
		case errors.Is(msg.err, ledger.ErrNotSaved):
			a.notifications.SetError(i18n.Tf("notify_not_saved", msg.err))
		default:
			a.notifications.SetError(i18n.Tf("notify_invalid", msg.err))
		}
		return a, nil

	case deleteResultMsg:
		a.refreshData()
		switch {
		case !msg.ok:
			a.notifications.SetError(i18n.T("notify_delete_range"))
		case msg.err != nil:
			a.notifications.SetError(i18n.Tf("notify_not_saved", msg.err))
		default:
			a.notifications.SetMessage(i18n.T("notify_deleted"))
		}
		return a, nil

	case reloadResultMsg:
		a.refreshData()
		switch msg.res.Status {
		case ledger.LoadOK, ledger.LoadNotFound:
			a.notifications.SetMessage(i18n.Tf("notify_reloaded", a.ledger.Len()))
		case ledger.LoadCorrupt:
			a.notifications.SetError(i18n.T("notify_load_corrupt"))
		default:
			a.notifications.SetError(i18n.Tf("notify_load_failed", msg.res.Err))
		}
		return a, nil

	case overlays.ConfigChangedMsg:
		a.applyConfig(msg.Config)
		if msg.SaveErr != nil {
			a.notifications.SetError(msg.SaveErr.Error())
		}
		return a, nil
	}

	// Cursor blink and other component messages for the add form.
	if a.overlay == OverlayAdd && a.addForm != nil {
		_, cmd := a.addForm.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) applyConfig(cfg config.Config) {
	a.Config = cfg
	i18n.SetLanguage(cfg.General.Language)
	a.notifications.enabled = cfg.Notifications.Enabled
	a.notifications.bell = cfg.Notifications.Bell
}

func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case ViewRecords:
		cmd = a.recordsView.Update(msg)
	case ViewEfficiency:
		cmd = a.efficiencyView.Update(msg)
	case ViewStatistics:
		cmd = a.statisticsView.Update(msg)
	}
	if cmd != nil {
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "1":
		a.activeView = ViewRecords
	case "2":
		a.activeView = ViewEfficiency
	case "3":
		a.activeView = ViewStatistics
	case "tab":
		a.activeView = (a.activeView + 1) % ViewCount
	case "shift+tab":
		a.activeView = (a.activeView + ViewCount - 1) % ViewCount
	case "?":
		a.overlay = OverlayHelp
	case "s":
		a.settingsOverlay = overlays.NewSettingsOverlay(a.Config, a.ConfigPath)
		a.overlay = OverlaySettings
	case "a":
		a.addForm = overlays.NewAddForm(a.now().Format(domain.DateLayout), a.lastRecord())
		a.overlay = OverlayAdd
	case "d":
		if a.activeView != ViewRecords {
			a.activeView = ViewRecords
			return a, nil
		}
		if pos, rec, ok := a.recordsView.Selected(); ok {
			a.pendingPosition = pos
			a.pendingRecord = rec
			a.overlay = OverlayConfirmDelete
		}
	case "r":
		return a, a.reload
	}
	return a, nil
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "?":
			a.overlay = OverlayNone
		}
	case OverlaySettings:
		if a.settingsOverlay != nil {
			closed, cmd := a.settingsOverlay.Update(msg)
			if closed {
				a.overlay = OverlayNone
			}
			return a, cmd
		}
	case OverlayAdd:
		if a.addForm != nil {
			closed, cmd := a.addForm.Update(msg)
			if closed {
				a.overlay = OverlayNone
				a.addForm = nil
			}
			return a, cmd
		}
	case OverlayConfirmDelete:
		switch msg.String() {
		case "y", "Y":
			a.overlay = OverlayNone
			if !a.pendingStillSelected() {
				a.refreshData()
				a.notifications.SetError(i18n.T("notify_delete_stale"))
				return a, nil
			}
			return a, a.deleteRecord(a.pendingPosition)
		case "n", "N", "esc", "q":
			a.overlay = OverlayNone
		}
	}
	return a, nil
}

// pendingStillSelected reports whether the record shown in the delete
// confirmation is still at the same position. A reload in between may
// have shifted it.
func (a App) pendingStillSelected() bool {
	records := a.ledger.Records()
	return a.pendingPosition < len(records) && records[a.pendingPosition] == a.pendingRecord
}

func (a *App) propagateAnimTick() {
	a.recordsView.AnimTick = a.animTick
	a.efficiencyView.AnimTick = a.animTick
	a.statisticsView.AnimTick = a.animTick
	a.helpOverlay.AnimTick = a.animTick
	if a.settingsOverlay != nil {
		a.settingsOverlay.SetAnimTick(a.animTick)
	}
	if a.addForm != nil {
		a.addForm.SetAnimTick(a.animTick)
	}
}
