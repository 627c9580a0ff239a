package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/lodgemart/lodgemart/internal/domain/errors"
	"github.com/lodgemart/lodgemart/internal/domain/model"
	"github.com/lodgemart/lodgemart/internal/server/http/dto"
)

// OrderHandler manages checkout and order history endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// RequestOTP handles POST /order/request-otp.
func (h *OrderHandler) RequestOTP(c *gin.Context) {
	if err := h.facade.RequestOrderOTP(c.Request.Context(), CurrentUserID(c)); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domainErrors.ErrEmailNotVerified):
			respondMessage(c, http.StatusBadRequest, "Please verify your email first.")
		case errors.Is(err, domainErrors.ErrNotificationFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP", "error": err.Error()})
		default:
			respondMessage(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondMessage(c, http.StatusOK, "OTP sent to your email")
}

// Place handles POST /order.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]model.OrderItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, p.ToModel())
	}

	order, updated, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), items, req.OTP, req.Total)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domainErrors.ErrInvalidOTP):
			respondMessage(c, http.StatusBadRequest, "Invalid or expired OTP")
		default:
			respondMessage(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.PlaceOrderResponse{
		Message:         "Order placed successfully",
		Order:           dto.ToOrderResponse(*order),
		UpdatedProducts: dto.ToProductResponses(updated),
	})
}

// List handles GET /order.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "User not found")
			return
		}
		respondMessage(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /order/:orderId.
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	order, err := h.facade.DeleteOrder(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Order not found")
			return
		}
		respondMessage(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteOrderResponse{
		Message: "Order deleted",
		Result:  dto.ToOrderResponse(*order),
	})
}
