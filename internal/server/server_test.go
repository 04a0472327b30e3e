package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/config"
	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
	"github.com/zhang1786/fuel-tracker-app/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// brokenStore loads empty and refuses every save.
type brokenStore struct{}

func (brokenStore) Load(ctx context.Context) ([]domain.FuelRecord, error) {
	return nil, store.ErrNotFound
}
func (brokenStore) Save(ctx context.Context, records []domain.FuelRecord) error {
	return errors.New("disk full")
}
func (brokenStore) Location() string { return "broken" }
func (brokenStore) Close() error     { return nil }

func testConfig() config.ServerConfig {
	return config.ServerConfig{Addr: "127.0.0.1:0", RateLimit: 0, Burst: 1}
}

func newTestServer(t *testing.T, s store.Store, cfg config.ServerConfig) (*Server, *ledger.Ledger) {
	t.Helper()
	l := ledger.New(s, zap.NewNop())
	l.Load(context.Background())
	srv := NewServer(l, cfg, zap.NewNop())
	t.Cleanup(srv.Close)
	return srv, l
}

func fileStore(t *testing.T) store.Store {
	return store.NewFileStore(filepath.Join(t.TempDir(), "fuel_records.json"))
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, fileStore(t), testConfig())
	rec := do(t, srv.Handler(), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestRequestID(t *testing.T) {
	srv, _ := newTestServer(t, fileStore(t), testConfig())

	rec := do(t, srv.Handler(), http.MethodGet, "/health", "", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestAddRecord_JSONStrings(t *testing.T) {
	srv, l := newTestServer(t, fileStore(t), testConfig())

	body := `{"date":"2024-01-01","odometer":"10000","fuel_amount":"40","fuel_price":"7.5","station":"Shell","note":""}`
	rec := do(t, srv.Handler(), http.MethodPost, "/api/add_record", "application/json", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, true, out["persisted"])
	record := out["record"].(map[string]any)
	assert.InDelta(t, 300.0, record["cost"], 0.001)
	assert.Equal(t, 1, l.Len())
}

func TestAddRecord_JSONNumbers(t *testing.T) {
	srv, l := newTestServer(t, fileStore(t), testConfig())

	body := `{"date":"2024-01-01","odometer":10000,"fuel_amount":40.5,"fuel_price":7.6}`
	rec := do(t, srv.Handler(), http.MethodPost, "/api/add_record", "application/json; charset=utf-8", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := l.Records()
	require.Len(t, got, 1)
	assert.Equal(t, 10000.0, got[0].Odometer)
	assert.Equal(t, 307.8, got[0].Cost)
}

func TestAddRecord_Form(t *testing.T) {
	srv, l := newTestServer(t, fileStore(t), testConfig())

	form := url.Values{
		"date":        {"2024-02-01"},
		"odometer":    {"10500"},
		"fuel_amount": {"35"},
		"fuel_price":  {"7.6"},
		"station":     {"BP"},
	}
	rec := do(t, srv.Handler(), http.MethodPost, "/api/add_record", "application/x-www-form-urlencoded", form.Encode())

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := l.Records()
	require.Len(t, got, 1)
	assert.Equal(t, "BP", got[0].Station)
	assert.Equal(t, 266.0, got[0].Cost)
}

func TestAddRecord_InvalidInput(t *testing.T) {
	srv, l := newTestServer(t, fileStore(t), testConfig())

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"non-numeric", "application/json", `{"date":"2024-01-01","odometer":"abc","fuel_amount":"40","fuel_price":"7.5"}`},
		{"missing field", "application/json", `{"date":"2024-01-01","odometer":"1","fuel_amount":"40"}`},
		{"malformed json", "application/json", `{"date":`},
		{"missing date", "application/x-www-form-urlencoded", "odometer=1&fuel_amount=2&fuel_price=3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv.Handler(), http.MethodPost, "/api/add_record", tt.contentType, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			out := decode(t, rec)
			assert.Equal(t, false, out["success"])
			assert.NotEmpty(t, out["message"])
		})
	}
	assert.Equal(t, 0, l.Len())
}

func TestAddRecord_NotSaved(t *testing.T) {
	srv, l := newTestServer(t, brokenStore{}, testConfig())

	body := `{"date":"2024-01-01","odometer":"1","fuel_amount":"2","fuel_price":"3"}`
	rec := do(t, srv.Handler(), http.MethodPost, "/api/add_record", "application/json", body)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, false, out["persisted"])
	assert.Contains(t, out["message"], "disk full")
	assert.Equal(t, 1, l.Len())
}

func seed(t *testing.T, l *ledger.Ledger) {
	t.Helper()
	ctx := context.Background()
	for _, r := range []domain.FuelRecord{
		domain.NewRecord("2024-01-01", 10000, 40, 7.5, "Shell", ""),
		domain.NewRecord("2024-01-15", 10500, 35, 7.6, "BP", ""),
		domain.NewRecord("2024-02-01", 11000, 38, 7.4, "Shell", ""),
	} {
		_, err := l.AddRecord(ctx, r)
		require.NoError(t, err)
	}
}

func TestDeleteRecord(t *testing.T) {
	srv, l := newTestServer(t, fileStore(t), testConfig())
	seed(t, l)

	rec := do(t, srv.Handler(), http.MethodDelete, "/api/delete_record/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, true, out["persisted"])

	got := l.Records()
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.Equal(t, "2024-02-01", got[1].Date)
}

func TestDeleteRecord_InvalidIndex(t *testing.T) {
	srv, l := newTestServer(t, fileStore(t), testConfig())
	seed(t, l)

	for _, target := range []string{"/api/delete_record/3", "/api/delete_record/-1", "/api/delete_record/x"} {
		t.Run(target, func(t *testing.T) {
			rec := do(t, srv.Handler(), http.MethodDelete, target, "", "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			out := decode(t, rec)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, "invalid record index", out["message"])
		})
	}
	assert.Equal(t, 3, l.Len())
}

func TestReadEndpoints(t *testing.T) {
	srv, l := newTestServer(t, fileStore(t), testConfig())
	seed(t, l)
	h := srv.Handler()

	rec := do(t, h, http.MethodGet, "/api/records", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []domain.FuelRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Equal(t, l.Records(), records)

	rec = do(t, h, http.MethodGet, "/api/efficiency", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var eff []domain.EfficiencyEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eff))
	assert.Len(t, eff, 2)

	rec = do(t, h, http.MethodGet, "/api/stats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats domain.Statistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalRecords)
	assert.Equal(t, 1000.0, stats.TotalDistance)

	rec = do(t, h, http.MethodGet, "/api/monthly", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var monthly []domain.MonthlyAggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &monthly))
	require.Len(t, monthly, 2)
	assert.Equal(t, "2024-02", monthly[0].Month)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t, fileStore(t), testConfig())
	rec := do(t, srv.Handler(), http.MethodGet, "/api/add_record", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDashboard(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })

	srv, l := newTestServer(t, fileStore(t), testConfig())

	rec := do(t, srv.Handler(), http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `value="2024-03-09"`)
	assert.Contains(t, rec.Body.String(), "No records yet")

	seed(t, l)
	rec = do(t, srv.Handler(), http.MethodGet, "/", "", "")
	body := rec.Body.String()
	assert.Contains(t, body, "¥847.20")
	assert.Contains(t, body, `data-index="2"`)
	assert.Contains(t, body, "2024-01-01 – 2024-02-01")

	rec = do(t, srv.Handler(), http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboard_RecentNewestFirst(t *testing.T) {
	srv, l := newTestServer(t, fileStore(t), testConfig())
	ctx := context.Background()
	for i := 1; i <= 7; i++ {
		_, err := l.AddRecord(ctx, domain.NewRecord("2024-01-0"+string(rune('0'+i)), float64(i*100), 10, 7, "", ""))
		require.NoError(t, err)
	}

	data := srv.dashboardData()
	require.Len(t, data.Recent, 5)
	assert.Equal(t, "2024-01-07", data.Recent[0].Date)
	assert.Equal(t, 6, data.Recent[0].Position)
	assert.Equal(t, "2024-01-03", data.Recent[4].Date)
	assert.Len(t, data.Records, 7)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 0.001
	cfg.Burst = 1
	srv, _ := newTestServer(t, fileStore(t), cfg)

	body := `{"date":"2024-01-01","odometer":"1","fuel_amount":"2","fuel_price":"3"}`
	rec := do(t, srv.Handler(), http.MethodPost, "/api/add_record", "application/json", body)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv.Handler(), http.MethodPost, "/api/add_record", "application/json", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])

	// Reads are not limited.
	rec = do(t, srv.Handler(), http.MethodGet, "/api/records", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebsocketSnapshots(t *testing.T) {
	srv, l := newTestServer(t, fileStore(t), testConfig())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() snapshotMessage {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg snapshotMessage
		require.NoError(t, conn.ReadJSON(&msg))
		return msg
	}

	first := read()
	assert.Equal(t, "snapshot", first.Type)
	assert.Equal(t, 0, first.Stats.TotalRecords)
	assert.Empty(t, first.Records)

	_, err = l.AddInput(context.Background(), domain.RecordInput{
		Date: "2024-01-01", Odometer: "100", FuelAmount: "10", FuelPrice: "7",
	})
	require.NoError(t, err)

	next := read()
	assert.Equal(t, 1, next.Stats.TotalRecords)
	require.Len(t, next.Records, 1)
	assert.Equal(t, 70.0, next.Records[0].Cost)
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, fileStore(t), testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
