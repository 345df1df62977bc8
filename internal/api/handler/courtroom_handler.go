package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/response"
)

// CourtroomHandler courtroom catalog endpoints
type CourtroomHandler struct {
	courtroomSvc service.CourtroomService
}

// NewCourtroomHandler creates a CourtroomHandler
func NewCourtroomHandler(courtroomSvc service.CourtroomService) *CourtroomHandler {
	return &CourtroomHandler{courtroomSvc: courtroomSvc}
}

// ListCourtrooms
// GET /api/v1/courtrooms
func (h *CourtroomHandler) ListCourtrooms(c *gin.Context) {
	var req dto.CourtroomListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	rooms, err := h.courtroomSvc.List(c.Request.Context(), req.IncludeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rooms})
}

// CreateCourtroom
// POST /api/v1/courtrooms
func (h *CourtroomHandler) CreateCourtroom(c *gin.Context) {
	var req dto.CreateCourtroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	room, err := h.courtroomSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, room)
}

// UpdateCourtroom rename or (de)activate
// PATCH /api/v1/courtrooms/:id
func (h *CourtroomHandler) UpdateCourtroom(c *gin.Context) {
	var req dto.UpdateCourtroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	room, err := h.courtroomSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, room)
}
