// README: Trip-plan handlers (quota-guarded pipeline runs).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/modules/planner"
	"tripcraft/internal/modules/quota"
)

// pipelineTimeout bounds one full generation run. The pipeline itself sets no
// per-stage deadline; each client carries its own 30s request timeout, and
// four stages plus headroom fit comfortably here.
const pipelineTimeout = 3 * time.Minute

// PlanRunner is the slice of planner.Service the handler needs.
type PlanRunner interface {
	Run(ctx context.Context, uid string, prefs planner.PreferenceRecord) *planner.TripPlan
	GetPlan(ctx context.Context, id string) (*planner.TripPlan, error)
	RecentPlans(ctx context.Context, uid string, limit int) ([]*planner.TripPlan, error)
}

// CreditGuard is the slice of quota.Service the handler needs.
type CreditGuard interface {
	UseCredit(ctx context.Context, uid string) error
}

type PlanHandler struct {
	planner PlanRunner
	quota   CreditGuard
}

func NewPlanHandler(plannerSvc PlanRunner, quotaSvc CreditGuard) *PlanHandler {
	return &PlanHandler{planner: plannerSvc, quota: quotaSvc}
}

type createPlanReq struct {
	UID          string   `json:"uid"`
	TravelType   string   `json:"travel_type"`
	Interests    []string `json:"interests"`
	Season       string   `json:"season"`
	DurationDays int      `json:"duration_days"`
	BudgetTier   string   `json:"budget_tier"`
}

// Create handles POST /api/plans. The response is always a fully populated
// plan; stage failures surface as placeholder text, not as HTTP errors.
func (h *PlanHandler) Create(c *gin.Context) {
	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UID = strings.TrimSpace(req.UID)
	if req.UID == "" {
		writeError(c, http.StatusBadRequest, "missing uid")
		return
	}
	if !isValidID(req.UID) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	prefs := planner.PreferenceRecord{
		TravelType:   strings.TrimSpace(req.TravelType),
		Interests:    req.Interests,
		Season:       strings.TrimSpace(req.Season),
		DurationDays: req.DurationDays,
		BudgetTier:   strings.TrimSpace(req.BudgetTier),
	}
	if err := prefs.Validate(); err != nil {
		writePlanError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pipelineTimeout)
	defer cancel()

	if err := h.quota.UseCredit(ctx, req.UID); err != nil {
		switch {
		case errors.Is(err, quota.ErrQuotaExhausted):
			writeError(c, http.StatusTooManyRequests, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	plan := h.planner.Run(ctx, req.UID, prefs)
	writeJSON(c, http.StatusOK, plan)
}

// ListRecent handles GET /api/users/:uid/plans.
func (h *PlanHandler) ListRecent(c *gin.Context) {
	uid := c.Param("uid")
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	plans, err := h.planner.RecentPlans(c.Request.Context(), uid, limit)
	if err != nil {
		writePlanError(c, err)
		return
	}
	if plans == nil {
		plans = []*planner.TripPlan{}
	}
	writeJSON(c, http.StatusOK, plans)
}

// Get handles GET /api/plans/:id.
func (h *PlanHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid plan id")
		return
	}

	plan, err := h.planner.GetPlan(c.Request.Context(), id)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, plan)
}
