package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"transit-mixer-scheduler/internal/adapters/export"
	"transit-mixer-scheduler/internal/api/dto"
	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/platform/obs"
	"transit-mixer-scheduler/internal/ports"
	"transit-mixer-scheduler/internal/services"
)

type ScheduleHandler struct {
	Repo     ports.ScenarioRepository
	Defaults domain.ScheduleConfig
}

// Schedule computes a timetable and returns it as JSON.
func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	cfg, trips, ok := h.compute(w, r)
	if !ok {
		return
	}

	summary := services.SummarizeSchedule(cfg, trips)
	writeJSON(w, r, http.StatusOK, dto.NewScheduleResponse(cfg, trips, summary))
}

// Export computes a timetable and returns it as a spreadsheet download.
// The file is rendered into memory first so a failed export never sends
// a partial document.
func (h *ScheduleHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "format must be xlsx or csv")
		return
	}

	_, trips, ok := h.compute(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := writeExport(r.Context(), &buf, format, trips); err != nil {
		log.Error().Str("req_id", obs.RequestID(r.Context())).Err(err).Msg("export schedule failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(format)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Str("req_id", obs.RequestID(r.Context())).Err(err).Msg("write export body failed")
	}
}

func writeExport(ctx context.Context, buf *bytes.Buffer, format export.Format, trips []domain.Trip) (err error) {
	defer obs.Time(ctx, "schedule.export."+string(format))(&err)
	return export.Write(buf, format, trips)
}

// compute decodes the request, resolves the config and runs the scheduler.
// On failure it has already written the error response.
func (h *ScheduleHandler) compute(w http.ResponseWriter, r *http.Request) (domain.ScheduleConfig, []domain.Trip, bool) {
	ctx := r.Context()

	var req dto.ScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return domain.ScheduleConfig{}, nil, false
	}

	base := h.Defaults
	if req.Scenario != "" {
		if h.Repo == nil {
			writeError(w, r, http.StatusNotFound, "scenario not found")
			return domain.ScheduleConfig{}, nil, false
		}
		sc, err := h.Repo.GetScenario(ctx, req.Scenario)
		if errors.Is(err, domain.ErrScenarioNotFound) {
			writeError(w, r, http.StatusNotFound, "scenario not found")
			return domain.ScheduleConfig{}, nil, false
		}
		if err != nil {
			log.Error().Str("req_id", obs.RequestID(ctx)).Err(err).Msg("get scenario failed")
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return domain.ScheduleConfig{}, nil, false
		}
		base = sc.Config
	}

	cfg := req.ApplyTo(base)

	trips, err := scheduleTrips(ctx, cfg)
	if err != nil {
		if isValidationError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return domain.ScheduleConfig{}, nil, false
		}
		log.Error().Str("req_id", obs.RequestID(ctx)).Err(err).Msg("schedule trips failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return domain.ScheduleConfig{}, nil, false
	}

	return cfg, trips, true
}

func scheduleTrips(ctx context.Context, cfg domain.ScheduleConfig) (_ []domain.Trip, err error) {
	defer obs.Time(ctx, "schedule.trips")(&err)
	return services.ScheduleTrips(cfg)
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidVehicleCount) ||
		errors.Is(err, domain.ErrInvalidDuration) ||
		errors.Is(err, domain.ErrTooManyTrips)
}
