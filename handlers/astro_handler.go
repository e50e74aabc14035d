package handlers

import (
	"net/http"
	"time"

	"github.com/shubhampawale7/Acharya-Beena/utils"
)

// AstroHandler serves the public astrology calculators used by the site.
type AstroHandler struct{}

// LifePath handles GET /api/astro/life-path?birth_date=YYYY-MM-DD
func (h *AstroHandler) LifePath(w http.ResponseWriter, r *http.Request) {
	birthDate := r.URL.Query().Get("birth_date")
	if birthDate == "" {
		WriteError(w, http.StatusBadRequest, "birth_date is required")
		return
	}
	if _, err := time.Parse("2006-01-02", birthDate); err != nil {
		WriteError(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
		return
	}

	number, err := utils.LifePathNumber(birthDate)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]any{
			"birth_date":       birthDate,
			"life_path_number": number,
			"interpretation":   utils.LifePathInterpretation(number),
		},
	})
}

// MoonPhase handles GET /api/astro/moon-phase?date=YYYY-MM-DD (default today)
func (h *AstroHandler) MoonPhase(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if q := r.URL.Query().Get("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]any{
			"date":  date.Format("2006-01-02"),
			"phase": utils.MoonPhase(date),
		},
	})
}
