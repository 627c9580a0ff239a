package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/lodgemart/lodgemart/internal/domain/errors"
	"github.com/lodgemart/lodgemart/internal/server/http/dto"
)

// ProductHandler serves the catalog and its admin-gated mutations.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /product.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondMessage(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// Get handles GET /product/:productId.
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	product, err := h.facade.Product(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "Product not found")
			return
		}
		respondMessage(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// ListByCategory handles GET /product/category/:category.
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	products, err := h.facade.ProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, "No products found for this category")
			return
		}
		respondMessage(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// Create handles POST /product.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	product := req.ToModel()
	created, err := h.facade.CreateProduct(c.Request.Context(), CurrentUserID(c), &product)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotAdmin) {
			respondMessage(c, http.StatusUnauthorized, "only admin is allowed to manage products")
			return
		}
		respondMessage(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateProductResponse{
		Message: "Product added",
		Product: dto.ToProductResponse(*created),
	})
}

// Update handles PUT /product/:productId.
func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	product := req.ToModel()
	product.ID = productID
	updated, err := h.facade.UpdateProduct(c.Request.Context(), CurrentUserID(c), &product)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotAdmin):
			respondMessage(c, http.StatusUnauthorized, "only admin is allowed to manage products")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "product not found")
		default:
			respondMessage(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*updated))
}

// Delete handles DELETE /product/:productId.
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	deleted, err := h.facade.DeleteProduct(c.Request.Context(), CurrentUserID(c), productID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotAdmin):
			respondMessage(c, http.StatusUnauthorized, "only admin is allowed to manage products")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "product not found")
		default:
			respondMessage(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, dto.DeleteProductResponse{
		Message: "product deleted",
		Result:  dto.ToProductResponse(*deleted),
	})
}
