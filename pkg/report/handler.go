package report

import (
	"encoding/json"
	"net/http"

	"github.com/saati/saati/internal/rest"
	"github.com/saati/saati/pkg/user"
)

type SummaryDTO struct {
	StartDate             string `json:"startDate"`
	EndDate               string `json:"endDate"`
	TotalWork             int    `json:"totalWork"`
	TotalOvertime         int    `json:"totalOvertime"`
	TotalWorkDays         int    `json:"totalWorkDays"`
	SickDays              int    `json:"sickDays"`
	OfficialHolidayDays   int    `json:"officialHolidayDays"`
	TargetWork            int    `json:"targetWork"`
	RemainingVacationDays int    `json:"remainingVacationDays"`
}

type Handler struct {
	service  Service
	renderer Renderer
}

func NewHandler(service Service, renderer Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// GetReport godoc
// @Summary Get the work report for a period
// @Tags Report
// @Produce json
// @Produce text/csv
// @Param period query string true "today | thisWeek | thisMonth | thisYear | custom"
// @Param startDate query string false "Custom period start (YYYY-MM-DD)"
// @Param endDate query string false "Custom period end (YYYY-MM-DD)"
// @Param lang query string false "Locale tag; defaults to the user's language"
// @Success 200 {object} SummaryDTO
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/report [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	kind := PeriodKind(r.URL.Query().Get("period"))
	if kind == "" {
		kind = PeriodThisMonth
	}
	if !kind.Valid() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid period",
			Details: "period must be one of today, thisWeek, thisMonth, thisYear, custom",
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	custom := Period{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		if currentUser, err := user.CurrentUser(r.Context()); err == nil {
			lang = currentUser.Settings.Language
		}
	}

	summary, err := h.service.GetReport(r.Context(), kind, custom, lang)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csvReport, err := h.renderer.RenderSummary(summary)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csvReport)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func summaryToDTO(summary Summary) SummaryDTO {
	return SummaryDTO{
		StartDate:             summary.Period.StartDate,
		EndDate:               summary.Period.EndDate,
		TotalWork:             int(summary.TotalWork.Milliseconds()),
		TotalOvertime:         int(summary.TotalOvertime.Milliseconds()),
		TotalWorkDays:         summary.TotalWorkDays,
		SickDays:              summary.SickDays,
		OfficialHolidayDays:   summary.OfficialHolidayDays,
		TargetWork:            int(summary.TargetWork.Milliseconds()),
		RemainingVacationDays: summary.RemainingVacationDays,
	}
}
