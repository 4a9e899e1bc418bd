package handler

import (
	"net/http"
	"strings"

	"github.com/albapepper/sportspeed/internal/api/respond"
	"github.com/albapepper/sportspeed/internal/performance"
)

// GetPerformance returns the projected 16-week sprint-time progression and
// the per-sport improvement table. With ?sport= the table is narrowed to
// that sport.
// @Summary Performance analytics
// @Description Sprint-time projection (4.8s baseline, 0.02s/week gain plus noise, regenerated per request) and average improvement by sport.
// @Tags performance
// @Produce json
// @Param sport query string false "Only this sport's improvement"
// @Success 200 {object} performance.Report
// @Failure 400 {object} respond.ErrorResponse
// @Router /performance [get]
func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	report := h.proj.Report()
	if sport := strings.TrimSpace(r.URL.Query().Get("sport")); sport != "" {
		imp, ok := performance.ImprovementFor(sport)
		if !ok {
			respond.WriteError(w, http.StatusBadRequest, respond.CodeUnknownSport, "Unknown sport: "+sport)
			return
		}
		report.Improvements = []performance.Improvement{imp}
	}
	respond.WriteNoStore(w, report)
}
