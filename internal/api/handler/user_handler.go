package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/response"
)

// UserHandler user directory endpoints
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers paged user list
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.userSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, page)
}

// ListLawyers
// GET /api/v1/lawyers
func (h *UserHandler) ListLawyers(c *gin.Context) {
	h.listByRole(c, model.RoleLawyer)
}

// ListClients
// GET /api/v1/clients
func (h *UserHandler) ListClients(c *gin.Context) {
	h.listByRole(c, model.RoleClient)
}

func (h *UserHandler) listByRole(c *gin.Context, role model.Role) {
	users, err := h.userSvc.ListByRole(c.Request.Context(), role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": users})
}
