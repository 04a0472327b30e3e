package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
)

// waitForEvent blocks on the ledger subscription. It yields nothing once
// the subscription is closed.
func waitForEvent(events <-chan ledger.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ledgerEventMsg(ev)
	}
}

func (a App) addRecord(in domain.RecordInput) tea.Cmd {
	l := a.ledger
	return func() tea.Msg {
		rec, err := l.AddInput(context.Background(), in)
		return addResultMsg{record: rec, err: err}
	}
}

func (a App) deleteRecord(position int) tea.Cmd {
	l := a.ledger
	return func() tea.Msg {
		ok, err := l.DeleteRecord(context.Background(), position)
		return deleteResultMsg{ok: ok, err: err}
	}
}

func (a App) reload() tea.Msg {
	return reloadResultMsg{res: a.ledger.Reload(context.Background())}
}

// refreshData pulls the derived views from the ledger.
func (a *App) refreshData() {
	records := a.ledger.Records()
	stats := domain.ComputeStatistics(records)

	a.recordsView.SetData(records)
	a.efficiencyView.SetData(domain.ComputeEfficiency(records), stats.AverageConsumption)
	a.statisticsView.SetData(stats, domain.AggregateMonthly(records))
}

// lastRecord is the most recent fill, used to prefill the add form.
func (a App) lastRecord() *domain.FuelRecord {
	records := a.ledger.Records()
	if len(records) == 0 {
		return nil
	}
	last := records[len(records)-1]
	return &last
}
