package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zhang1786/fuel-tracker-app/internal/config"
	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
	"github.com/zhang1786/fuel-tracker-app/internal/ui/overlays"
	"github.com/zhang1786/fuel-tracker-app/internal/ui/views"
)

type ViewType int

const (
	ViewRecords ViewType = iota
	ViewEfficiency
	ViewStatistics
	ViewCount // sentinel: number of views
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
	OverlayAdd
	OverlayConfirmDelete
)

// TickMsg triggers periodic data refresh.
type TickMsg time.Time

// BlinkMsg triggers UI-only refresh for smooth animation (250ms).
type BlinkMsg time.Time

// ledgerEventMsg wraps a change notification from the ledger.
type ledgerEventMsg ledger.Event

// addResultMsg reports the outcome of an add started from the form.
type addResultMsg struct {
	record domain.FuelRecord
	err    error
}

type deleteResultMsg struct {
	ok  bool
	err error
}

type reloadResultMsg struct {
	res ledger.LoadResult
}

type App struct {
	activeView ViewType
	overlay    OverlayType

	// Views
	recordsView    *views.RecordsView
	efficiencyView *views.EfficiencyView
	statisticsView *views.StatisticsView

	// Overlays
	helpOverlay     *overlays.HelpOverlay
	settingsOverlay *overlays.SettingsOverlay
	addForm         *overlays.AddForm

	// Delete confirmation target
	pendingPosition int
	pendingRecord   domain.FuelRecord

	ledger *ledger.Ledger
	events <-chan ledger.Event

	Config     config.Config
	ConfigPath string

	// Animation state
	animTick uint

	notifications *NotificationManager

	// Terminal
	width  int
	height int

	ready bool
	now   func() time.Time
}

// NewApp builds the TUI over l. events should come from l.Subscribe; the
// caller owns the subscription.
func NewApp(cfg config.Config, l *ledger.Ledger, events <-chan ledger.Event) App {
	i18n.SetLanguage(cfg.General.Language)

	a := App{
		activeView:     ViewRecords,
		overlay:        OverlayNone,
		Config:         cfg,
		ConfigPath:     config.DefaultPath(),
		ledger:         l,
		events:         events,
		recordsView:    views.NewRecordsView(),
		efficiencyView: views.NewEfficiencyView(),
		statisticsView: views.NewStatisticsView(),
		helpOverlay:    overlays.NewHelpOverlay(),
		notifications:  NewNotificationManager(cfg.Notifications.Enabled, cfg.Notifications.Bell),
		now:            time.Now,
	}
	a.refreshData()
	return a
}

// ReportLoad surfaces a failed startup load in the notification banner.
func (a *App) ReportLoad(res ledger.LoadResult) {
	switch res.Status {
	case ledger.LoadCorrupt:
		a.notifications.SetError(i18n.T("notify_load_corrupt"))
	case ledger.LoadFailed:
		a.notifications.SetError(i18n.Tf("notify_load_failed", res.Err))
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("fueltracker"),
		waitForEvent(a.events),
		doBlink(),
	)
}

func (a App) refreshInterval() time.Duration {
	if a.Config.General.Interval <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.Config.General.Interval) * time.Second
}

func doBlink() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}

func doTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
