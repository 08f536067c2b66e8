package devserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booshananamudara/zoura-mobile/internal/client/models"
)

type createOrderRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "shippingAddress and paymentMethod are required")
		return
	}
	if req.PaymentMethod != "cash_on_delivery" {
		fail(c, http.StatusBadRequest, "unsupported payment method")
		return
	}

	order, err := s.store.CreateOrder(userID(c), req.ShippingAddress)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			fail(c, http.StatusBadRequest, "cart is empty")
			return
		}
		fail(c, http.StatusInternalServerError, "could not create order")
		return
	}

	s.log.Info(c.Request.Context(), "order placed", "order_id", order.ID, "total", order.TotalAmount)
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (s *Server) handleListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": s.store.Orders(userID(c))})
}
