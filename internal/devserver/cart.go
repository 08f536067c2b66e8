package devserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	VariantID string `json:"variantId"`
}

// handleGetCart answers 404 until the user puts something in the cart, which
// the client treats as "no cart yet" rather than an error.
func (s *Server) handleGetCart(c *gin.Context) {
	cart, ok := s.store.Cart(userID(c))
	if !ok {
		fail(c, http.StatusNotFound, "no cart for this user")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) handleAddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "productId and a positive quantity are required")
		return
	}

	cart, err := s.store.AddItem(userID(c), req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownWares):
			fail(c, http.StatusNotFound, "product or variant not found")
		case errors.Is(err, ErrOutOfStock):
			fail(c, http.StatusConflict, "not enough stock")
		default:
			fail(c, http.StatusInternalServerError, "could not update cart")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (s *Server) handleRemoveCartItem(c *gin.Context) {
	cart, err := s.store.RemoveItem(userID(c), c.Param("itemID"))
	if err != nil {
		fail(c, http.StatusNotFound, "cart item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (s *Server) handleClearCart(c *gin.Context) {
	s.store.ClearCart(userID(c))
	c.Status(http.StatusNoContent)
}
