package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
)

const (
	maxBodyBytes        = 64 << 10
	msgInvalidIndex     = "invalid record index"
	msgInvalidBody      = "invalid request body"
	msgInternal         = "internal error"
	contentTypeJSON     = "application/json"
	contentTypeJSONUTF8 = "application/json; charset=utf-8"
)

// apiResponse is the envelope for mutating endpoints.
type apiResponse struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message,omitempty"`
	Record    *domain.FuelRecord `json:"record,omitempty"`
	Persisted *bool              `json:"persisted,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSONUTF8)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Records())
}

func (s *Server) handleEfficiency(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Efficiency())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Statistics())
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Monthly())
}

func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	in, err := decodeRecordInput(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Message: err.Error()})
		return
	}

	rec, err := s.ledger.AddInput(r.Context(), in)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Record: &rec, Persisted: boolPtr(true)})
	case errors.Is(err, ledger.ErrNotSaved):
		s.logger.Warn("record added but not saved", zap.Error(err))
		writeJSON(w, http.StatusOK, apiResponse{
			Success:   true,
			Message:   err.Error(),
			Record:    &rec,
			Persisted: boolPtr(false),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, apiResponse{Message: err.Error()})
	default:
		s.logger.Error("add record", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, apiResponse{Message: msgInternal})
	}
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, apiResponse{Message: msgInvalidIndex})
		return
	}

	deleted, err := s.ledger.DeleteRecord(r.Context(), index)
	switch {
	case !deleted:
		writeJSON(w, http.StatusNotFound, apiResponse{Message: msgInvalidIndex})
	case err == nil:
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Persisted: boolPtr(true)})
	case errors.Is(err, ledger.ErrNotSaved):
		s.logger.Warn("record deleted but not saved", zap.Error(err))
		writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: err.Error(), Persisted: boolPtr(false)})
	default:
		s.logger.Error("delete record", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, apiResponse{Message: msgInternal})
	}
}

// decodeRecordInput reads a JSON object or a form body. JSON values may be
// numbers or strings; both are coerced later by domain.ParseRecordInput.
func decodeRecordInput(r *http.Request) (domain.RecordInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != contentTypeJSON {
		if err := r.ParseForm(); err != nil {
			return domain.RecordInput{}, fmt.Errorf("%s: %w", msgInvalidBody, err)
		}
		return domain.RecordInput{
			Date:       r.PostFormValue("date"),
			Odometer:   r.PostFormValue("odometer"),
			FuelAmount: r.PostFormValue("fuel_amount"),
			FuelPrice:  r.PostFormValue("fuel_price"),
			Station:    r.PostFormValue("station"),
			Note:       r.PostFormValue("note"),
		}, nil
	}

	var body map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return domain.RecordInput{}, fmt.Errorf("%s: %w", msgInvalidBody, err)
	}
	return domain.RecordInput{
		Date:       jsonString(body["date"]),
		Odometer:   jsonString(body["odometer"]),
		FuelAmount: jsonString(body["fuel_amount"]),
		FuelPrice:  jsonString(body["fuel_price"]),
		Station:    jsonString(body["station"]),
		Note:       jsonString(body["note"]),
	}, nil
}

func jsonString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func boolPtr(b bool) *bool { return &b }
