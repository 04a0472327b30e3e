package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
)

const recentCount = 5

//go:embed templates/index.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"t":     i18n.T,
	"money": func(v float64) string { return fmt.Sprintf("¥%.2f", v) },
	"num":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"deref": func(s *string) string {
		if s == nil {
			return "-"
		}
		return *s
	},
}).ParseFS(templateFS, "templates/index.html"))

// positioned pairs a record with its current ledger position, the index the
// delete endpoint expects.
type positioned struct {
	Position int
	domain.FuelRecord
}

type dashboardData struct {
	Lang       string
	Today      string
	Location   string
	Stats      domain.Statistics
	Records    []positioned
	Recent     []positioned
	Efficiency []domain.EfficiencyEntry
	Monthly    []domain.MonthlyAggregate
}

// now is replaced in tests.
var now = time.Now

func (s *Server) dashboardData() dashboardData {
	records := s.ledger.Records()
	all := make([]positioned, len(records))
	for i, r := range records {
		all[i] = positioned{Position: i, FuelRecord: r}
	}

	recent := make([]positioned, len(all))
	copy(recent, all)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}

	return dashboardData{
		Lang:       string(i18n.Current()),
		Today:      now().Format(domain.DateLayout),
		Location:   s.ledger.Location(),
		Stats:      s.ledger.Statistics(),
		Records:    all,
		Recent:     recent,
		Efficiency: s.ledger.Efficiency(),
		Monthly:    s.ledger.Monthly(),
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, s.dashboardData()); err != nil {
		s.logger.Error("render dashboard", zap.Error(err))
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
