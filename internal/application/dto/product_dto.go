package dto

import "time"

// CreateProductRequest entrada para crear un producto.
// Stock es puntero para distinguir "omitido" de 0: el contrato de creación
// exige que venga explícito y sea >= 0.
type CreateProductRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Brand      string `json:"brand" validate:"required,min=1,max=200"`
	Model      string `json:"model" validate:"required,min=1,max=200"`
	Stock      *int   `json:"stock" validate:"required,min=0"`
	Location   string `json:"location" validate:"required,min=1,max=200"`
	Remarks    string `json:"remarks"`
	CategoryID string `json:"category" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial).
// Solo los campos presentes se modifican.
type UpdateProductRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Brand      *string `json:"brand"`
	Model      *string `json:"model"`
	Stock      *int    `json:"stock" validate:"omitempty,min=0"`
	Location   *string `json:"location"`
	Remarks    *string `json:"remarks"`
	CategoryID *string `json:"category"`
}

// StockMovementRequest entrada para vender o reponer unidades de un producto.
type StockMovementRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// ProductResponse salida de un producto con el nombre de su categoría
// resuelto en lectura (join, no denormalización almacenada).
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Stock        int       `json:"stock"`
	Location     string    `json:"location"`
	Remarks      string    `json:"remarks,omitempty"`
	CategoryID   string    `json:"category"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse lista de productos, más reciente primero.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
