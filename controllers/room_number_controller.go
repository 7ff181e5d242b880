package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"villa-backend/dto"
	"villa-backend/services"
	"villa-backend/utils"
)

// RoomNumberController exposes the room-number service over HTTP.
type RoomNumberController struct {
	svc *services.RoomNumberService
}

// NewRoomNumberController wires the controller to its service.
func NewRoomNumberController(svc *services.RoomNumberService) *RoomNumberController {
	return &RoomNumberController{svc: svc}
}

// GetRoomNumbers handles GET /api/roomnumbers.
func (rc *RoomNumberController) GetRoomNumbers(c *gin.Context) {
	utils.WriteResponse(c, rc.svc.List(c.Request.Context()))
}

// GetRoomNumber handles GET /api/roomnumbers/:roomNo.
func (rc *RoomNumberController) GetRoomNumber(c *gin.Context) {
	utils.WriteResponse(c, rc.svc.Get(c.Request.Context(), parseID(c, "roomNo")))
}

// CreateRoomNumber handles POST /api/roomnumbers.
func (rc *RoomNumberController) CreateRoomNumber(c *gin.Context) {
	var input dto.RoomNumberCreateDto
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.WriteResponse(c, dto.NewErrorResponse(http.StatusBadRequest, "invalid request payload: "+err.Error()))
		return
	}
	utils.WriteResponse(c, rc.svc.Create(c.Request.Context(), input))
}

// UpdateRoomNumber handles PUT /api/roomnumbers/:roomNo.
func (rc *RoomNumberController) UpdateRoomNumber(c *gin.Context) {
	var input dto.RoomNumberUpdateDto
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.WriteResponse(c, dto.NewErrorResponse(http.StatusBadRequest, "invalid request payload: "+err.Error()))
		return
	}
	utils.WriteResponse(c, rc.svc.Update(c.Request.Context(), parseID(c, "roomNo"), &input))
}

// PatchRoomNumber handles PATCH /api/roomnumbers/:roomNo.
func (rc *RoomNumberController) PatchRoomNumber(c *gin.Context) {
	var doc dto.PatchDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.WriteResponse(c, dto.NewErrorResponse(http.StatusBadRequest, "invalid patch document: "+err.Error()))
		return
	}
	utils.WriteResponse(c, rc.svc.Patch(c.Request.Context(), parseID(c, "roomNo"), doc))
}

// DeleteRoomNumber handles DELETE /api/roomnumbers/:roomNo.
func (rc *RoomNumberController) DeleteRoomNumber(c *gin.Context) {
	utils.WriteResponse(c, rc.svc.Delete(c.Request.Context(), parseID(c, "roomNo")))
}
