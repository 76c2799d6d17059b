package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"presale/adminhub/internal/analytics"
	"presale/adminhub/internal/service"
	"presale/adminhub/pkg/response"
)

type RewardHandler struct {
	rewardService service.RewardService
}

func NewRewardHandler(rewardService service.RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

// ListCodes serves one page of the reward code table.
// Query params: search, status, date_from, date_to, sort, page.
func (h *RewardHandler) ListCodes(c *gin.Context) {
	filter := analytics.Filter{
		Search:   c.Query("search"),
		Status:   analytics.Status(c.Query("status")),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}
	if filter.Status != "" && !isValidStatus(filter.Status) {
		response.BadRequest(c, "unknown status filter")
		return
	}

	sortKey := analytics.SortKey(c.DefaultQuery("sort", string(analytics.SortLatest)))
	if !isValidSortKey(sortKey) {
		response.BadRequest(c, "unknown sort key")
		return
	}

	table, err := h.rewardService.CodeTable(c.Request.Context(), filter, sortKey, queryInt(c, "page", 1))
	if err != nil {
		response.InternalError(c, "failed to build code table")
		return
	}

	response.Success(c, table)
}

func (h *RewardHandler) Leaderboards(c *gin.Context) {
	boards, err := h.rewardService.Leaderboards(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to build leaderboards")
		return
	}

	response.Success(c, boards)
}

type CreateCodeRequest struct {
	Pool      float64    `json:"pool" binding:"required,gt=0"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (h *RewardHandler) CreateCode(c *gin.Context) {
	var req CreateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		response.BadRequest(c, "expires_at must be in the future")
		return
	}

	code, err := h.rewardService.CreateCode(c.Request.Context(), req.Pool, req.ExpiresAt)
	if err != nil {
		response.InternalError(c, "failed to create reward code")
		return
	}

	response.Success(c, gin.H{"code": code})
}

func (h *RewardHandler) DisableCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		response.BadRequest(c, "code is required")
		return
	}

	if err := h.rewardService.DisableCode(c.Request.Context(), code); err != nil {
		response.InternalError(c, "failed to disable reward code")
		return
	}

	response.Success(c, nil)
}

// RefreshSnapshot forces an immediate re-aggregation instead of waiting for
// the next background tick.
func (h *RewardHandler) RefreshSnapshot(c *gin.Context) {
	if err := h.rewardService.Refresh(c.Request.Context()); err != nil {
		response.InternalError(c, "failed to refresh snapshot")
		return
	}

	response.Success(c, nil)
}

func isValidStatus(s analytics.Status) bool {
	switch s {
	case analytics.StatusActive, analytics.StatusExpired, analytics.StatusDepleted:
		return true
	}
	return false
}

func isValidSortKey(k analytics.SortKey) bool {
	switch k {
	case analytics.SortLatest,
		analytics.SortOldest,
		analytics.SortMostClaimed,
		analytics.SortLeastClaimed,
		analytics.SortFastestFirstClaim,
		analytics.SortPoolSize:
		return true
	}
	return false
}
