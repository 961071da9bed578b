package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/abs-inventory-api/internal/application/service"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/dto/request"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/dto/response"
)

// DistrictHandler handles district HTTP requests
type DistrictHandler struct {
	districtService *service.DistrictService
}

// NewDistrictHandler creates a new district handler
func NewDistrictHandler(districtService *service.DistrictService) *DistrictHandler {
	return &DistrictHandler{districtService: districtService}
}

func (h *DistrictHandler) List(c *gin.Context) {
	params, search := listParams(c)

	result, err := h.districtService.ListDistricts(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Districts retrieved successfully", result)
}

func (h *DistrictHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "district")
	if !ok {
		return
	}

	district, err := h.districtService.GetDistrict(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "District retrieved successfully", district)
}

func (h *DistrictHandler) Create(c *gin.Context) {
	var req request.CreateDistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	district, err := h.districtService.CreateDistrict(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "District created successfully", district)
}

func (h *DistrictHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "district")
	if !ok {
		return
	}

	var req request.UpdateDistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	district, err := h.districtService.UpdateDistrict(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "District updated successfully", district)
}

func (h *DistrictHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "district")
	if !ok {
		return
	}

	if err := h.districtService.DeleteDistrict(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "District deleted successfully", nil)
}
