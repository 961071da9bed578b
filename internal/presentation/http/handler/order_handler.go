package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/application/service"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/dto/request"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/dto/response"
)

const filterDateLayout = "2006-01-02"

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService  *service.OrderService
	numberService *service.OrderNumberService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, numberService *service.OrderNumberService) *OrderHandler {
	return &OrderHandler{orderService: orderService, numberService: numberService}
}

// List handles listing orders with their line counts
// @Summary List orders
// @Tags orders
// @Produce json
// @Param search query string false "Order number or party name"
// @Param status query string false "Pending or Dispatched"
// @Param payment_status query string false "Unpaid, Partial or Paid"
// @Param ledger_id query string false "Party ID"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	params, ok := orderFilters(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", orders)
}

func orderFilters(c *gin.Context) (*repository.OrderFilterParams, bool) {
	params := &repository.OrderFilterParams{Search: c.Query("search")}

	if v := c.Query("status"); v != "" {
		status := enum.OrderStatus(v)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid status filter")
			return nil, false
		}
		params.Status = &status
	}
	if v := c.Query("payment_status"); v != "" {
		status := enum.PaymentStatus(v)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid payment_status filter")
			return nil, false
		}
		params.PaymentStatus = &status
	}
	if v := c.Query("ledger_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid ledger_id filter")
			return nil, false
		}
		params.LedgerID = &id
	}
	if v := c.Query("start_date"); v != "" {
		d, err := time.Parse(filterDateLayout, v)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return nil, false
		}
		params.StartDate = &d
	}
	if v := c.Query("end_date"); v != "" {
		d, err := time.Parse(filterDateLayout, v)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return nil, false
		}
		params.EndDate = &d
	}

	return params, true
}

// Get handles getting an order with its lines
// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// NextNumber returns the next free order number for today
// @Summary Next order number
// @Tags orders
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /orders/next-number [get]
func (h *OrderHandler) NextNumber(c *gin.Context) {
	next, err := h.numberService.Next(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next order number generated", next)
}

// Create handles creating an order with all of its lines
// @Summary Create order
// @Description Lines without an item or a positive quantity are skipped unless strict=true
// @Tags orders
// @Accept json
// @Produce json
// @Param strict query bool false "Reject invalid lines instead of skipping them"
// @Param Idempotency-Key header string false "Replay key"
// @Param request body request.OrderRequest true "Order"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := req.ToInput(GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input, queryBool(c, "strict"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Replace handles replacing an order header and all of its lines
// @Summary Replace order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param strict query bool false "Reject invalid lines instead of skipping them"
// @Param request body request.OrderRequest true "Order"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) Replace(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}

	var req request.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := req.ToInput(GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.ReplaceOrder(c.Request.Context(), id, input, queryBool(c, "strict"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// Delete handles deleting an order and its lines
// @Summary Delete order
// @Tags orders
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}

// UpdatePayment handles recording a payment against an order
// @Summary Update order payment
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request.PaymentRequest true "Payment"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id}/payment [put]
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}

	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.UpdatePayment(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", order)
}
