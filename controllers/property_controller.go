package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"villa-backend/dto"
	"villa-backend/services"
	"villa-backend/utils"
)

// PropertyController exposes the property service over HTTP. Handlers
// only parse the request and write the envelope; every decision lives
// in the service.
type PropertyController struct {
	svc *services.PropertyService
}

// NewPropertyController wires the controller to its service.
func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{svc: svc}
}

// parseID turns the :id path parameter into an identifier. A
// non-numeric value is reported as 0 so the sentinel-zero rejection
// applies.
func parseID(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// GetProperties handles GET /api/properties.
func (pc *PropertyController) GetProperties(c *gin.Context) {
	utils.WriteResponse(c, pc.svc.List(c.Request.Context()))
}

// GetProperty handles GET /api/properties/:id.
func (pc *PropertyController) GetProperty(c *gin.Context) {
	utils.WriteResponse(c, pc.svc.Get(c.Request.Context(), parseID(c, "id")))
}

// CreateProperty handles POST /api/properties.
func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var input dto.PropertyCreateDto
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.WriteResponse(c, dto.NewErrorResponse(http.StatusBadRequest, "invalid request payload: "+err.Error()))
		return
	}
	utils.WriteResponse(c, pc.svc.Create(c.Request.Context(), input))
}

// UpdateProperty handles PUT /api/properties/:id.
func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	var input dto.PropertyUpdateDto
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.WriteResponse(c, dto.NewErrorResponse(http.StatusBadRequest, "invalid request payload: "+err.Error()))
		return
	}
	utils.WriteResponse(c, pc.svc.Update(c.Request.Context(), parseID(c, "id"), &input))
}

// PatchProperty handles PATCH /api/properties/:id.
func (pc *PropertyController) PatchProperty(c *gin.Context) {
	var doc dto.PatchDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.WriteResponse(c, dto.NewErrorResponse(http.StatusBadRequest, "invalid patch document: "+err.Error()))
		return
	}
	utils.WriteResponse(c, pc.svc.Patch(c.Request.Context(), parseID(c, "id"), doc))
}

// DeleteProperty handles DELETE /api/properties/:id.
func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	utils.WriteResponse(c, pc.svc.Delete(c.Request.Context(), parseID(c, "id")))
}
