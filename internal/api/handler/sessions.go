package handler

import (
	"net/http"
	"strings"

	"github.com/albapepper/sportspeed/internal/api/respond"
	"github.com/albapepper/sportspeed/internal/builder"
	"github.com/albapepper/sportspeed/internal/catalog"
)

func sportParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	sport := strings.TrimSpace(r.URL.Query().Get("sport"))
	if sport == "" {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeMissingSport, "sport query parameter is required")
		return "", false
	}
	return sport, true
}

// GetSessions returns this week's speed, strength and endurance sessions.
// Unknown sports get the generic sessions. Responses are never cached.
// @Summary Generate weekly sessions
// @Description Generates the three sessions for a sport. The speed session distance and reps are random per request.
// @Tags sessions
// @Produce json
// @Param sport query string true "Sport name"
// @Success 200 {object} session.Sessions
// @Failure 400 {object} respond.ErrorResponse
// @Router /sessions [get]
func (h *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	sport, ok := sportParam(w, r)
	if !ok {
		return
	}
	respond.WriteNoStore(w, h.gen.All(sport))
}

// GetSpeedSession returns a speed session.
// @Summary Generate speed session
// @Tags sessions
// @Produce json
// @Param sport query string true "Sport name"
// @Success 200 {object} session.SpeedSession
// @Failure 400 {object} respond.ErrorResponse
// @Router /sessions/speed [get]
func (h *Handler) GetSpeedSession(w http.ResponseWriter, r *http.Request) {
	if sport, ok := sportParam(w, r); ok {
		respond.WriteNoStore(w, h.gen.Speed(sport))
	}
}

// GetStrengthSession returns a strength session.
// @Summary Generate strength session
// @Tags sessions
// @Produce json
// @Param sport query string true "Sport name"
// @Success 200 {object} session.StrengthSession
// @Failure 400 {object} respond.ErrorResponse
// @Router /sessions/strength [get]
func (h *Handler) GetStrengthSession(w http.ResponseWriter, r *http.Request) {
	if sport, ok := sportParam(w, r); ok {
		respond.WriteNoStore(w, h.gen.Strength(sport))
	}
}

// GetEnduranceSession returns an endurance session.
// @Summary Generate endurance session
// @Tags sessions
// @Produce json
// @Param sport query string true "Sport name"
// @Success 200 {object} session.EnduranceSession
// @Failure 400 {object} respond.ErrorResponse
// @Router /sessions/endurance [get]
func (h *Handler) GetEnduranceSession(w http.ResponseWriter, r *http.Request) {
	if sport, ok := sportParam(w, r); ok {
		respond.WriteNoStore(w, h.gen.Endurance(sport))
	}
}

// GetBuilder returns the builder screen model for a selection.
// @Summary Render builder view
// @Description Returns the training builder view (sport cards, phase, week label, sessions, tips). Sessions are regenerated on every request.
// @Tags builder
// @Produce json
// @Param sport query string false "Selected sport"
// @Param week query int false "Selected week (clamped to 1..16)"
// @Param nav query string false "Navigation" Enums(prev, next)
// @Success 200 {object} builder.View
// @Failure 400 {object} respond.ErrorResponse
// @Router /builder [get]
func (h *Handler) GetBuilder(w http.ResponseWriter, r *http.Request) {
	state, err := builder.ParseQuery(r.URL.Query())
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidWeek, "week must be an integer")
		return
	}
	if state.Sport != "" && !catalog.Known(state.Sport) {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeUnknownSport, "Unknown sport: "+state.Sport)
		return
	}
	respond.WriteNoStore(w, state.Render(h.gen))
}
