package dto

import "time"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// UpdateItemRequest body para PUT /api/items/:id (campos opcionales).
// El código no se puede cambiar: identidad del item.
type UpdateItemRequest struct {
	Name *string `json:"name,omitempty"`
	Unit *string `json:"unit,omitempty"`
}

// ItemResponse item en respuestas.
type ItemResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemListResponse listado paginado de items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
