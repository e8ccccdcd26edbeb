package worklog

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/saati/saati/internal/rest"
	log "github.com/sirupsen/logrus"
)

type EntryDTO struct {
	ID           string     `json:"id,omitempty"`
	Date         string     `json:"date"`
	Type         string     `json:"type"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	BreakMinutes int        `json:"breakMinutes"`
	Notes        string     `json:"notes"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAll godoc
// @Summary List all log entries of the current user
// @Tags WorkLog
// @Produce json
// @Success 200 {array} EntryDTO
// @Router /api/log [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, EntryToDTO(entry))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Create godoc
// @Summary Record a new log entry
// @Tags WorkLog
// @Accept json
// @Produce json
// @Param entry body EntryDTO true "Log entry"
// @Success 201 {object} EntryDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid entry"
// @Router /api/log [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Recording new log entry")

	var dto EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.service.Add(r.Context(), DTOToEntry(dto))
	if err != nil {
		if errors.Is(err, ErrInvalidEntry) {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid log entry", Details: err.Error()}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(EntryToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Update godoc
// @Summary Update an existing log entry
// @Tags WorkLog
// @Accept json
// @Produce json
// @Param logId path string true "Log entry ID"
// @Param entry body EntryDTO true "Log entry"
// @Success 200 {object} EntryDTO
// @Failure 404 {string} string "Entry not found"
// @Router /api/log/{logId} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	logId := vars["logId"]

	var dto EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	if dto.ID == "" {
		dto.ID = logId
	}
	if dto.ID != logId {
		http.Error(w, "Invalid log entry id in request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), DTOToEntry(dto))
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "Log entry not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrInvalidEntry) {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid log entry", Details: err.Error()}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(EntryToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Delete godoc
// @Summary Delete a log entry
// @Tags WorkLog
// @Param logId path string true "Log entry ID"
// @Success 204 {string} string "Deleted"
// @Failure 404 {string} string "Entry not found"
// @Router /api/log/{logId} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logId := vars["logId"]

	if err := h.service.Delete(r.Context(), logId); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "Log entry not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func EntryToDTO(entry Entry) EntryDTO {
	return EntryDTO{
		ID:           entry.ID,
		Date:         entry.Date,
		Type:         string(entry.Type),
		StartTime:    entry.StartTime,
		EndTime:      entry.EndTime,
		BreakMinutes: entry.BreakMinutes,
		Notes:        entry.Notes,
	}
}

func DTOToEntry(dto EntryDTO) Entry {
	return Entry{
		ID:           dto.ID,
		Date:         dto.Date,
		Type:         Type(dto.Type),
		StartTime:    dto.StartTime,
		EndTime:      dto.EndTime,
		BreakMinutes: dto.BreakMinutes,
		Notes:        dto.Notes,
	}
}
