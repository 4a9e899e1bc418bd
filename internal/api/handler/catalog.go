package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/sportspeed/internal/api/respond"
	"github.com/albapepper/sportspeed/internal/cache"
	"github.com/albapepper/sportspeed/internal/catalog"
	"github.com/albapepper/sportspeed/internal/periodization"
)

// SportDetail is a sport profile together with its 16-week program parameters.
type SportDetail struct {
	catalog.Sport
	Program catalog.Program `json:"program"`
}

func sportDetail(s catalog.Sport) SportDetail {
	prog, _ := catalog.ProgramFor(s.Name)
	return SportDetail{Sport: s, Program: prog}
}

// GetSports returns the six sport profiles in display order.
// @Summary List sports
// @Description Returns every supported sport with season, focus, display color and program parameters.
// @Tags catalog
// @Produce json
// @Success 200 {array} SportDetail
// @Router /sports [get]
func (h *Handler) GetSports(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "sports", cache.TTLCatalog, func() (interface{}, error) {
		sports := catalog.Sports()
		out := make([]SportDetail, len(sports))
		for i, s := range sports {
			out[i] = sportDetail(s)
		}
		return out, nil
	})
}

// GetSport returns one sport profile.
// @Summary Get sport
// @Description Returns a single sport profile by its exact name (e.g. "Track & Field").
// @Tags catalog
// @Produce json
// @Param name path string true "Sport name"
// @Success 200 {object} SportDetail
// @Failure 404 {object} respond.ErrorResponse
// @Router /sports/{name} [get]
func (h *Handler) GetSport(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		name = chi.URLParam(r, "name")
	}
	sport, ok := catalog.Lookup(name)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, respond.CodeNotFound, "Unknown sport: "+name)
		return
	}
	h.serveCached(w, r, "sport:"+sport.Name, cache.TTLCatalog, func() (interface{}, error) {
		return sportDetail(sport), nil
	})
}

// PhaseResponse is the phase lookup for a single week.
type PhaseResponse struct {
	Week int `json:"week"`
	periodization.Phase
}

// GetPhases returns the four-block phase table.
// @Summary List phases
// @Description Returns the four periodization blocks with their week ranges.
// @Tags periodization
// @Produce json
// @Success 200 {array} periodization.Block
// @Router /phases [get]
func (h *Handler) GetPhases(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "phases", cache.TTLCatalog, func() (interface{}, error) {
		return periodization.Blocks(), nil
	})
}

// GetPhase returns the training phase for a week. Weeks at or below zero map
// to Base Building and weeks past 16 to Competition Phase.
// @Summary Get phase for week
// @Description Returns the phase name and focus for a week number.
// @Tags periodization
// @Produce json
// @Param week path int true "Week number"
// @Success 200 {object} PhaseResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /phases/{week} [get]
func (h *Handler) GetPhase(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidWeek, "week must be an integer")
		return
	}
	h.serveCached(w, r, "phase:"+strconv.Itoa(week), cache.TTLCatalog, func() (interface{}, error) {
		return PhaseResponse{Week: week, Phase: periodization.PhaseForWeek(week)}, nil
	})
}
