package public

import (
	"errors"

	"github.com/cartnext/internal/http/response"
	"github.com/cartnext/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 按分类列出上架商品
func (h *Handler) ListProducts(c *gin.Context) {
	category := c.Query("category")

	products, err := h.ProductService.ListByCategory(category)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryRequired):
			respondError(c, response.CodeBadRequest, "分类不能为空", nil)
		default:
			respondError(c, response.CodeInternal, "获取商品列表失败", err)
		}
		return
	}

	response.Success(c, gin.H{"products": products})
}
