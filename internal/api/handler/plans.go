package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/albapepper/sportspeed/internal/api/respond"
	"github.com/albapepper/sportspeed/internal/cache"
	"github.com/albapepper/sportspeed/internal/plan"
	"github.com/albapepper/sportspeed/internal/store"
)

// maxBodyBytes bounds plan request bodies.
const maxBodyBytes = 16 << 10

// BuildPlanRequest is the body of POST /plans and POST /plans/preview.
type BuildPlanRequest struct {
	Sport      string `json:"sport"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Position   string `json:"position"`
	Experience string `json:"experience"`
}

// PlanList is a page of stored plans.
type PlanList struct {
	Plans  []*plan.Plan `json:"plans"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
	Sport  string       `json:"sport,omitempty"`
}

// buildFromRequest decodes the body and builds a plan, writing the error
// response itself on failure.
func (h *Handler) buildFromRequest(w http.ResponseWriter, r *http.Request) (*plan.Plan, bool) {
	var req BuildPlanRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeInvalidBody, "Request body must be a JSON object", err.Error())
		return nil, false
	}
	if req.Sport == "" {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeMissingSport, "sport is required")
		return nil, false
	}

	p, err := plan.Build(req.Sport, plan.Athlete{
		Name:       req.Name,
		Age:        req.Age,
		Position:   req.Position,
		Experience: req.Experience,
	})
	switch {
	case errors.Is(err, plan.ErrUnknownSport):
		respond.WriteError(w, http.StatusBadRequest, respond.CodeUnknownSport, "Unknown sport: "+req.Sport)
		return nil, false
	case errors.Is(err, plan.ErrInvalidAthlete):
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeInvalidAthlete, "Invalid athlete", err.Error())
		return nil, false
	case err != nil:
		respond.WriteError(w, http.StatusInternalServerError, respond.CodeInternal, "Failed to build plan")
		return nil, false
	}
	return p, true
}

// CreatePlan builds a 16-week plan and stores it.
// @Summary Create plan
// @Description Builds the 16-week periodized plan for an athlete and saves it when a plan store is configured.
// @Tags plans
// @Accept json
// @Produce json
// @Param body body BuildPlanRequest true "Sport and athlete"
// @Success 201 {object} plan.Plan
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /plans [post]
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	p, ok := h.buildFromRequest(w, r)
	if !ok {
		return
	}

	err := h.store.Save(r.Context(), p)
	switch {
	case errors.Is(err, store.ErrDisabled):
		w.Header().Set("X-Plan-Saved", "false")
	case err != nil:
		h.logger.Error("Failed to save plan", "plan_id", p.ID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, respond.CodeStoreError, "Failed to save plan")
		return
	default:
		w.Header().Set("X-Plan-Saved", "true")
		w.Header().Set("Location", "/api/v1/plans/"+p.ID)
		if data, err := json.Marshal(p); err == nil {
			h.cache.Set(cache.PlanKey(p.ID), data, cache.TTLPlan)
		}
		h.logger.Info("Plan saved", "plan_id", p.ID, "sport", p.Sport)
	}
	respond.WriteJSONObject(w, http.StatusCreated, p)
}

// PreviewPlan builds a plan without storing it.
// @Summary Preview plan
// @Description Builds the 16-week plan and returns it without saving.
// @Tags plans
// @Accept json
// @Produce json
// @Param body body BuildPlanRequest true "Sport and athlete"
// @Success 200 {object} plan.Plan
// @Failure 400 {object} respond.ErrorResponse
// @Router /plans/preview [post]
func (h *Handler) PreviewPlan(w http.ResponseWriter, r *http.Request) {
	p, ok := h.buildFromRequest(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, p)
}

// ListPlans returns stored plans, newest first.
// @Summary List plans
// @Tags plans
// @Produce json
// @Param sport query string false "Filter by sport"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} PlanList
// @Failure 503 {object} respond.ErrorResponse
// @Router /plans [get]
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.Filter{Sport: q.Get("sport")}
	if v := q.Get("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		f.Offset, _ = strconv.Atoi(v)
	}
	f = f.Normalize()

	plans, err := h.store.List(r.Context(), f)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	respond.WriteJSONObject(w, http.StatusOK, PlanList{
		Plans:  plans,
		Limit:  f.Limit,
		Offset: f.Offset,
		Sport:  f.Sport,
	})
}

// planID parses the {id} param and returns it in canonical lowercase form, so
// store lookups and cache keys agree with the IDs plan.Build generates.
func planID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil {
		raw = chi.URLParam(r, "id")
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidID, "Plan ID must be a UUID")
		return "", false
	}
	return u.String(), true
}

// GetPlan returns a stored plan.
// @Summary Get plan
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} plan.Plan
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /plans/{id} [get]
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}
	h.serveCached(w, r, cache.PlanKey(id), cache.TTLPlan, func() (interface{}, error) {
		return h.store.Get(r.Context(), id)
	})
}

// DeletePlan removes a stored plan.
// @Summary Delete plan
// @Tags plans
// @Param id path string true "Plan ID (UUID)"
// @Success 204
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /plans/{id} [delete]
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.cache.Delete(cache.PlanKey(id))
	h.logger.Info("Plan deleted", "plan_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respond.WriteError(w, http.StatusNotFound, respond.CodeNotFound, "Plan not found")
	case errors.Is(err, store.ErrDisabled):
		respond.WriteError(w, http.StatusServiceUnavailable, respond.CodeStoreDisabled, "Plan storage is disabled")
	default:
		h.logger.Error("Plan store error", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, respond.CodeStoreError, "Plan store error")
	}
}
