package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
	"presale/adminhub/internal/service"
	"presale/adminhub/pkg/response"
)

type KYCHandler struct {
	kycService service.KYCService
}

func NewKYCHandler(kycService service.KYCService) *KYCHandler {
	return &KYCHandler{kycService: kycService}
}

func (h *KYCHandler) List(c *gin.Context) {
	userID, err := queryUUID(c, "user_id")
	if err != nil {
		response.BadRequest(c, "invalid user_id")
		return
	}

	params := repository.KYCListParams{
		UserID:   userID,
		Status:   model.KYCSubmissionStatus(c.Query("status")),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}

	submissions, total, err := h.kycService.List(c.Request.Context(), params)
	if err != nil {
		response.InternalError(c, "failed to list kyc submissions")
		return
	}

	response.Success(c, gin.H{"items": submissions, "total": total})
}

func (h *KYCHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid submission id")
		return
	}

	submission, err := h.kycService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			response.NotFound(c, "submission not found")
			return
		}
		response.InternalError(c, "failed to load submission")
		return
	}

	response.Success(c, submission)
}

type ReviewKYCRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

func (h *KYCHandler) Review(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid submission id")
		return
	}
	reviewer, err := getAdminIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req ReviewKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	submission, err := h.kycService.Review(c.Request.Context(), id, reviewer, req.Approve, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			response.NotFound(c, "submission not found")
		case errors.Is(err, service.ErrInvalidTransition):
			response.Conflict(c, "submission has already been reviewed")
		default:
			response.InternalError(c, "failed to review submission")
		}
		return
	}

	response.Success(c, submission)
}

type ValidateIDRequest struct {
	IDNumber string `json:"id_number" binding:"required"`
	IDType   string `json:"id_type" binding:"required"`
}

// ValidateID runs the rule-based ID check without persisting anything. The
// console uses it for live feedback while an operator inspects a document.
func (h *KYCHandler) ValidateID(c *gin.Context) {
	var req ValidateIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	response.Success(c, h.kycService.ValidateID(req.IDNumber, req.IDType))
}
