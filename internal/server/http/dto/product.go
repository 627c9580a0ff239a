package dto

import (
	"time"

	"github.com/lodgemart/lodgemart/internal/domain/model"
)

// ProductRequest is the admin payload for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
}

// ToModel converts the payload to its domain form.
func (r ProductRequest) ToModel() model.Product {
	return model.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		Image:       r.Image,
	}
}

// ProductResponse is the catalog entry representation.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToProductResponse converts a domain product to its wire form.
func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProductResponses converts a product slice to its wire form.
func ToProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// CreateProductResponse reports a created catalog entry.
type CreateProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// DeleteProductResponse reports a deleted catalog entry.
type DeleteProductResponse struct {
	Message string          `json:"message"`
	Result  ProductResponse `json:"result"`
}
