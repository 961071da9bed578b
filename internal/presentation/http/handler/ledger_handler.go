package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/abs-inventory-api/internal/application/service"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/dto/request"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/dto/response"
)

// LedgerHandler handles party (ledger) HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// List handles listing parties
func (h *LedgerHandler) List(c *gin.Context) {
	params, search := listParams(c)

	result, err := h.ledgerService.ListLedgers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Ledgers retrieved successfully", result)
}

// Get handles getting a party with its district
func (h *LedgerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "ledger")
	if !ok {
		return
	}

	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger retrieved successfully", ledger)
}

// Create handles creating a party
func (h *LedgerHandler) Create(c *gin.Context) {
	var req request.LedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ledger created successfully", ledger)
}

// Update handles a partial update of a party
func (h *LedgerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "ledger")
	if !ok {
		return
	}

	var req request.LedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	ledger, err := h.ledgerService.UpdateLedger(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger updated successfully", ledger)
}

// Delete handles deleting a party. Its orders keep their history with no party.
func (h *LedgerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "ledger")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteLedger(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger deleted successfully", nil)
}
