package entity

import "time"

// Product representa un artículo del inventario. Stock nunca es negativo;
// se modifica vía los casos de uso de venta/reposición, no directamente.
// CategoryName es una proyección de lectura (join), nunca se persiste.
type Product struct {
	ID           string
	Name         string
	Brand        string
	Model        string
	Stock        int
	Location     string
	Remarks      string
	CategoryID   string
	CategoryName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
