package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/saati/saati/internal/rest"
	"github.com/saati/saati/pkg/user"
	log "github.com/sirupsen/logrus"
)

type HolidayDTO struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Imported bool   `json:"imported,omitempty"`
}

type SettingsDTO struct {
	WorkDaysPerWeek     int          `json:"workDaysPerWeek"`
	WorkHoursPerDay     float64      `json:"workHoursPerDay"`
	DefaultBreakMinutes int          `json:"defaultBreakMinutes"`
	AnnualVacationDays  int          `json:"annualVacationDays"`
	OfficialHolidays    []HolidayDTO `json:"officialHolidays"`
	Country             string       `json:"country,omitempty"`
}

type ImportResultDTO struct {
	Profile SettingsDTO `json:"profile"`
	Added   int         `json:"added"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetProfile godoc
// @Summary Get the current user's work profile
// @Tags Profile
// @Produce json
// @Success 200 {object} SettingsDTO
// @Router /api/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	settings, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, user.ErrNoUser) {
			http.Error(w, "no current user", http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SettingsToDTO(settings)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// SaveProfile godoc
// @Summary Replace the current user's work profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body SettingsDTO true "Profile"
// @Success 200 {object} SettingsDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid profile"
// @Router /api/profile [put]
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Saving profile")

	var dto SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	saved, err := h.service.Save(r.Context(), DTOToSettings(dto))
	if err != nil {
		if errors.Is(err, ErrInvalidSettings) {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid profile", Details: err.Error()}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SettingsToDTO(saved)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ImportHolidays godoc
// @Summary Import public holidays into the user's calendar
// @Tags Profile
// @Produce json
// @Param country query string false "ISO 3166-1 alpha-2 country code (defaults to the profile's country)"
// @Param year query int true "Year"
// @Success 200 {object} ImportResultDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid parameters"
// @Failure 502 {object} rest.ErrorResponse "Holiday service unavailable"
// @Router /api/profile/holidays/import [post]
func (h *Handler) ImportHolidays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	country := r.URL.Query().Get("country")
	yearString := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearString)
	if err != nil || year < 1 {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid year",
			Details: "year must be a positive integer",
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	settings, added, err := h.service.ImportHolidays(r.Context(), country, year)
	if err != nil {
		if errors.Is(err, ErrInvalidSettings) {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid parameters", Details: err.Error()}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		log.Errorf("holiday import failed: %v", err)
		w.WriteHeader(http.StatusBadGateway)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Holiday import failed", Details: err.Error()}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ImportResultDTO{Profile: SettingsToDTO(settings), Added: added}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func SettingsToDTO(settings Settings) SettingsDTO {
	holidays := make([]HolidayDTO, 0, len(settings.OfficialHolidays))
	for _, h := range settings.OfficialHolidays {
		holidays = append(holidays, HolidayDTO{Date: h.Date, Name: h.Name, Imported: h.Imported})
	}
	return SettingsDTO{
		WorkDaysPerWeek:     settings.WorkDaysPerWeek,
		WorkHoursPerDay:     settings.WorkHoursPerDay,
		DefaultBreakMinutes: settings.DefaultBreakMinutes,
		AnnualVacationDays:  settings.AnnualVacationDays,
		OfficialHolidays:    holidays,
		Country:             settings.Country,
	}
}

func DTOToSettings(dto SettingsDTO) Settings {
	holidays := make([]Holiday, 0, len(dto.OfficialHolidays))
	for _, h := range dto.OfficialHolidays {
		holidays = append(holidays, Holiday{Date: h.Date, Name: h.Name, Imported: h.Imported})
	}
	return Settings{
		WorkDaysPerWeek:     dto.WorkDaysPerWeek,
		WorkHoursPerDay:     dto.WorkHoursPerDay,
		DefaultBreakMinutes: dto.DefaultBreakMinutes,
		AnnualVacationDays:  dto.AnnualVacationDays,
		OfficialHolidays:    holidays,
		Country:             dto.Country,
	}
}
