package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"presale/adminhub/internal/model"
	"presale/adminhub/internal/repository"
	"presale/adminhub/internal/service"
	"presale/adminhub/pkg/response"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	params := repository.UserListParams{
		Search:    c.Query("search"),
		KYCStatus: model.KYCStatus(c.Query("kyc_status")),
		Page:      queryInt(c, "page", 1),
		PageSize:  queryInt(c, "page_size", 20),
	}

	users, total, err := h.userService.List(c.Request.Context(), params)
	if err != nil {
		response.InternalError(c, "failed to list users")
		return
	}

	response.Success(c, gin.H{"items": users, "total": total})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to load user")
		return
	}

	response.Success(c, user)
}
