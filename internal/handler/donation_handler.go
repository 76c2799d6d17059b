package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
	"presale/adminhub/internal/service"
	"presale/adminhub/pkg/response"
)

type DonationHandler struct {
	donationService service.DonationService
}

func NewDonationHandler(donationService service.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

func (h *DonationHandler) List(c *gin.Context) {
	userID, err := queryUUID(c, "user_id")
	if err != nil {
		response.BadRequest(c, "invalid user_id")
		return
	}

	params := repository.DonationListParams{
		UserID:   userID,
		Status:   model.DonationStatus(c.Query("status")),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}

	donations, total, err := h.donationService.List(c.Request.Context(), params)
	if err != nil {
		response.InternalError(c, "failed to list donations")
		return
	}

	response.Success(c, gin.H{"items": donations, "total": total})
}

func (h *DonationHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid donation id")
		return
	}

	donation, err := h.donationService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			response.NotFound(c, "donation not found")
			return
		}
		response.InternalError(c, "failed to load donation")
		return
	}

	response.Success(c, donation)
}

func (h *DonationHandler) Confirm(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid donation id")
		return
	}

	if err := h.donationService.Confirm(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrDonationNotFound):
			response.NotFound(c, "donation not found")
		case errors.Is(err, service.ErrInvalidTransition):
			response.Conflict(c, "donation is not pending")
		default:
			response.InternalError(c, "failed to confirm donation")
		}
		return
	}

	response.Success(c, nil)
}

func (h *DonationHandler) MarkFailed(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid donation id")
		return
	}

	if err := h.donationService.MarkFailed(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrDonationNotFound):
			response.NotFound(c, "donation not found")
		case errors.Is(err, service.ErrInvalidTransition):
			response.Conflict(c, "donation is not pending")
		default:
			response.InternalError(c, "failed to mark donation failed")
		}
		return
	}

	response.Success(c, nil)
}

func (h *DonationHandler) Summary(c *gin.Context) {
	summary, err := h.donationService.Summary(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to build donation summary")
		return
	}

	response.Success(c, summary)
}
