package shift

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/saati/saati/internal/rest"
	log "github.com/sirupsen/logrus"
)

type ShiftDTO struct {
	StartTime    time.Time `json:"startTime"`
	BreakMinutes int       `json:"breakMinutes"`
	Notes        string    `json:"notes"`
}

type FinishedShiftDTO struct {
	Date         string    `json:"date"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	BreakMinutes int       `json:"breakMinutes"`
	Notes        string    `json:"notes"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// StartShift godoc
// @Summary Clock in
// @Tags Shift
// @Accept json
// @Produce json
// @Success 201 {object} ShiftDTO
// @Failure 409 {object} rest.ErrorResponse "Shift already running"
// @Router /api/shift [post]
func (h *Handler) StartShift(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Starting new shift")

	var startRequest struct {
		Notes        string `json:"notes"`
		BreakMinutes *int   `json:"breakMinutes"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&startRequest); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
	}

	started, err := h.service.Start(r.Context(), startRequest.Notes, startRequest.BreakMinutes)
	if err != nil {
		if errors.Is(err, ErrShiftAlreadyRunning) {
			w.WriteHeader(http.StatusConflict)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "A shift is already running"}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(shiftToDTO(started)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetCurrentShift godoc
// @Summary Get the running shift
// @Tags Shift
// @Produce json
// @Success 200 {object} ShiftDTO
// @Failure 404 {string} string "No shift running"
// @Router /api/shift/current [get]
func (h *Handler) GetCurrentShift(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current, err := h.service.Current(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if current == nil {
		http.Error(w, "No shift running", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(shiftToDTO(*current)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdateCurrentShift godoc
// @Summary Adjust the break or notes of the running shift
// @Tags Shift
// @Accept json
// @Produce json
// @Success 200 {object} ShiftDTO
// @Failure 404 {string} string "No shift running"
// @Router /api/shift/current [patch]
func (h *Handler) UpdateCurrentShift(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Adjusting current shift")

	var adjustRequest struct {
		BreakMinutes *int    `json:"breakMinutes"`
		Notes        *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&adjustRequest); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	adjusted, err := h.service.Adjust(r.Context(), adjustRequest.BreakMinutes, adjustRequest.Notes)
	if err != nil {
		if errors.Is(err, ErrNoCurrentShift) {
			http.Error(w, "No shift running", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(shiftToDTO(adjusted)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// FinishShift godoc
// @Summary Clock out and record the work log entry
// @Tags Shift
// @Accept json
// @Produce json
// @Success 200 {object} FinishedShiftDTO
// @Failure 404 {string} string "No shift running"
// @Router /api/shift/current/status [patch]
func (h *Handler) FinishShift(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Finishing current shift")

	var finishRequest struct {
		BreakMinutes *int    `json:"breakMinutes"`
		Notes        *string `json:"notes"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&finishRequest); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
	}

	finished, err := h.service.Finish(r.Context(), finishRequest.BreakMinutes, finishRequest.Notes)
	if err != nil {
		if errors.Is(err, ErrNoCurrentShift) {
			http.Error(w, "No shift running", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(FinishedShiftDTO{
		Date:         finished.Date,
		StartTime:    finished.StartTime,
		EndTime:      finished.EndTime,
		BreakMinutes: finished.BreakMinutes,
		Notes:        finished.Notes,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// DiscardShift godoc
// @Summary Discard the running shift without recording it
// @Tags Shift
// @Success 204 {string} string "Discarded"
// @Failure 404 {string} string "No shift running"
// @Router /api/shift/current [delete]
func (h *Handler) DiscardShift(w http.ResponseWriter, r *http.Request) {
	discarded, err := h.service.Discard(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if discarded == nil {
		http.Error(w, "No shift running", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func shiftToDTO(shift Shift) ShiftDTO {
	return ShiftDTO{
		StartTime:    shift.StartTime,
		BreakMinutes: shift.BreakMinutes,
		Notes:        shift.Notes,
	}
}
