package public

import (
	"errors"

	"github.com/cartnext/internal/http/response"
	"github.com/cartnext/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductUUID string `json:"product_uuid" binding:"required"`
	Quantity    int    `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}

	cart := h.CartService.GetCart(c.Request.Context(), sessionID)
	view := h.CartViewService.Project(cart)
	response.Success(c, view)
}

// AddCartItem 向购物车追加商品
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数有误", err)
		return
	}

	cart, err := h.CartService.AddItem(c.Request.Context(), sessionID, req.ProductUUID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			response.NotFound(c, "商品不存在")
		default:
			respondError(c, response.CodeInternal, "加入购物车失败", err)
		}
		return
	}

	view := h.CartViewService.Project(cart)
	response.Success(c, view)
}
