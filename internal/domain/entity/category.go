package entity

import "time"

// Category representa una agrupación de productos. El nombre es único
// en todo el catálogo (case-sensitive).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
