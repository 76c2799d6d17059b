package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
	"presale/adminhub/internal/service"
	"presale/adminhub/pkg/response"
)

type WithdrawalHandler struct {
	withdrawalService service.WithdrawalService
}

func NewWithdrawalHandler(withdrawalService service.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalService: withdrawalService}
}

func (h *WithdrawalHandler) List(c *gin.Context) {
	userID, err := queryUUID(c, "user_id")
	if err != nil {
		response.BadRequest(c, "invalid user_id")
		return
	}

	params := repository.WithdrawalListParams{
		UserID:   userID,
		Status:   model.WithdrawalStatus(c.Query("status")),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}

	withdrawals, total, err := h.withdrawalService.List(c.Request.Context(), params)
	if err != nil {
		response.InternalError(c, "failed to list withdrawals")
		return
	}

	response.Success(c, gin.H{"items": withdrawals, "total": total})
}

func (h *WithdrawalHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid withdrawal id")
		return
	}

	withdrawal, err := h.withdrawalService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWithdrawalNotFound) {
			response.NotFound(c, "withdrawal not found")
			return
		}
		response.InternalError(c, "failed to load withdrawal")
		return
	}

	response.Success(c, withdrawal)
}

func (h *WithdrawalHandler) Approve(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid withdrawal id")
		return
	}
	reviewer, err := getAdminIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	if err := h.withdrawalService.Approve(c.Request.Context(), id, reviewer); err != nil {
		h.writeReviewError(c, err, "failed to approve withdrawal")
		return
	}

	response.Success(c, nil)
}

type RejectWithdrawalRequest struct {
	Note string `json:"note" binding:"required"`
}

func (h *WithdrawalHandler) Reject(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid withdrawal id")
		return
	}
	reviewer, err := getAdminIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req RejectWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := h.withdrawalService.Reject(c.Request.Context(), id, reviewer, req.Note); err != nil {
		if errors.Is(err, service.ErrNoteRequired) {
			response.BadRequest(c, err.Error())
			return
		}
		h.writeReviewError(c, err, "failed to reject withdrawal")
		return
	}

	response.Success(c, nil)
}

func (h *WithdrawalHandler) MarkPaid(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid withdrawal id")
		return
	}

	if err := h.withdrawalService.MarkPaid(c.Request.Context(), id); err != nil {
		h.writeReviewError(c, err, "failed to mark withdrawal paid")
		return
	}

	response.Success(c, nil)
}

func (h *WithdrawalHandler) writeReviewError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrWithdrawalNotFound):
		response.NotFound(c, "withdrawal not found")
	case errors.Is(err, service.ErrInvalidTransition):
		response.Conflict(c, "withdrawal is not in a reviewable state")
	default:
		response.InternalError(c, fallback)
	}
}
