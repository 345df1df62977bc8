package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/dto"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/service"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/response"
)

// CaseHandler legal case endpoints
type CaseHandler struct {
	caseSvc service.CaseService
}

// NewCaseHandler creates a CaseHandler
func NewCaseHandler(caseSvc service.CaseService) *CaseHandler {
	return &CaseHandler{caseSvc: caseSvc}
}

// CreateCase
// POST /api/v1/cases
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req dto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	lawyerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.caseSvc.Create(c.Request.Context(), &req, lawyerID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, result)
}

// GetCase
// GET /api/v1/cases/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	result, err := h.caseSvc.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}

// ListCases
// GET /api/v1/cases
func (h *CaseHandler) ListCases(c *gin.Context) {
	var req dto.CaseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	page, err := h.caseSvc.List(c.Request.Context(), caller, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, page)
}
