package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"transit-mixer-scheduler/internal/adapters/export"
	"transit-mixer-scheduler/internal/api/dto"
	"transit-mixer-scheduler/internal/domain"
)

type fakeScenarioRepo struct {
	scenarios map[string]*domain.Scenario
	err       error
}

func (f *fakeScenarioRepo) ListScenarios(ctx context.Context) ([]*domain.Scenario, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Scenario, 0, len(f.scenarios))
	for _, name := range []string{"early-slab", "tower-core"} {
		if s, ok := f.scenarios[name]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScenarioRepo) GetScenario(ctx context.Context, name string) (*domain.Scenario, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("get scenario %q: %w", name, domain.ErrScenarioNotFound)
	}
	return s, nil
}

func newTestHandler() *ScheduleHandler {
	return &ScheduleHandler{
		Repo: &fakeScenarioRepo{scenarios: map[string]*domain.Scenario{
			"early-slab": {
				Name: "early-slab",
				Config: domain.ScheduleConfig{
					StartTime:       300,
					TotalQuantity:   40,
					LoadDuration:    10,
					TravelDuration:  30,
					UnloadDuration:  15,
					BufferDuration:  5,
					QuantityPerTrip: 10,
					VehicleCount:    2,
				},
			},
		}},
		Defaults: domain.ScheduleConfig{StartTime: 300, QuantityPerTrip: 1, VehicleCount: 1},
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestScheduleHandlerInlineConfig(t *testing.T) {
	h := newTestHandler()
	body := `{"start_time": "05:00", "total_quantity": 40, "load_duration": 10, "travel_duration": 30,
		"unload_duration": 15, "buffer_duration": 5, "quantity_per_trip": 10, "vehicle_count": 2}`

	rec := postJSON(t, h.Schedule, "/schedules", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ScheduleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(res.Trips) != 4 {
		t.Fatalf("trips = %d, want 4", len(res.Trips))
	}
	second := res.Trips[1]
	if second.VehicleID != 2 || second.WorkStartTime != "06:30" || second.PlantReachTime != "08:00" {
		t.Fatalf("trip 2 = %+v", second)
	}
	if second.RoundTripDuration != 90 || second.CumulativeQuantity != 20 {
		t.Fatalf("trip 2 numbers = %+v", second)
	}
	if res.Summary.LastReturn != "09:30" || res.Summary.ScheduledQuantity != 40 {
		t.Fatalf("summary = %+v", res.Summary)
	}
}

func TestScheduleHandlerScenarioWithOverride(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Schedule, "/schedules", `{"scenario": "early-slab", "vehicle_count": 1, "start_time": 360}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ScheduleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if res.Config.VehicleCount != 1 || res.Config.StartTime != "06:00" || res.Config.TotalQuantity != 40 {
		t.Fatalf("config = %+v", res.Config)
	}
	for _, trip := range res.Trips {
		if trip.VehicleID != 1 {
			t.Fatalf("trip %d vehicle = %d, want 1", trip.TripNumber, trip.VehicleID)
		}
	}
	if res.Trips[0].WorkStartTime != "06:00" {
		t.Fatalf("first start = %q, want 06:00", res.Trips[0].WorkStartTime)
	}
}

func TestScheduleHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"zero quantity uses defaults", `{}`, http.StatusBadRequest},
		{"zero per trip", `{"total_quantity": 10, "quantity_per_trip": 0}`, http.StatusBadRequest},
		{"zero vehicles", `{"total_quantity": 10, "vehicle_count": 0}`, http.StatusBadRequest},
		{"negative travel", `{"total_quantity": 10, "travel_duration": -5}`, http.StatusBadRequest},
		{"unknown field", `{"total_quantity": 10, "pour_rate": 3}`, http.StatusBadRequest},
		{"two objects", `{"total_quantity": 10}{}`, http.StatusBadRequest},
		{"bad clock", `{"total_quantity": 10, "start_time": "5am"}`, http.StatusBadRequest},
		{"int max quantity", `{"total_quantity": 9223372036854775807, "quantity_per_trip": 1}`, http.StatusBadRequest},
		{"huge start", `{"total_quantity": 10, "start_time": 9223372036854775787}`, http.StatusBadRequest},
		{"unknown scenario", `{"scenario": "nope"}`, http.StatusNotFound},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Schedule, "/schedules", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.status, rec.Body.String())
			}

			var res map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if res["error"] == "" {
				t.Fatalf("missing error message")
			}
		})
	}
}

func TestScheduleHandlerRepositoryFailure(t *testing.T) {
	h := &ScheduleHandler{Repo: &fakeScenarioRepo{err: errors.New("db down")}}

	rec := postJSON(t, h.Schedule, "/schedules", `{"scenario": "early-slab"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestScheduleHandlerMethodNotAllowed(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/schedules", nil)
	rec := httptest.NewRecorder()
	h.Schedule(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("Allow = %q", rec.Header().Get("Allow"))
	}
}

func TestExportHandlerCSV(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Export, "/schedules/export?format=csv", `{"scenario": "early-slab"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "transit_mixer_trip_schedule.csv") {
		t.Fatalf("Content-Disposition = %q", got)
	}

	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("records = %d, want 5", len(records))
	}
	if records[0][0] != "Trip No." || records[4][11] != "40" {
		t.Fatalf("unexpected csv: %v", records)
	}
}

func TestExportHandlerXLSX(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Export, "/schedules/export", `{"scenario": "early-slab"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != export.ContentType(export.FormatXLSX) {
		t.Fatalf("Content-Type = %q", got)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
}

func TestExportHandlerRejectsUnknownFormat(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Export, "/schedules/export?format=pdf", `{"scenario": "early-slab"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestExportHandlerValidationProducesNoFile(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Export, "/schedules/export?format=csv", `{"total_quantity": 0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if rec.Header().Get("Content-Disposition") != "" {
		t.Fatalf("error response must not be an attachment")
	}
}

func TestScenarioHandlerList(t *testing.T) {
	h := &ScenarioHandler{Repo: newTestHandler().Repo}

	req := httptest.NewRequest(http.MethodGet, "/scenarios", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res dto.ListScenariosResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Scenarios) != 1 || res.Scenarios[0].Config.StartTime != "05:00" {
		t.Fatalf("scenarios = %+v", res.Scenarios)
	}
}
