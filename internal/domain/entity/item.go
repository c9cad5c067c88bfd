package entity

import "time"

// Item representa un artículo de inventario: identidad + unidad de medida.
// No lleva ningún atributo de valoración; el costo vive en el ledger y en
// Balance, nunca en el item (inmutable una vez referenciado por el ledger).
type Item struct {
	ID        string
	Code      string // código único legible (SKU)
	Name      string
	Unit      string // unidad de medida: Nos, Kg, Caja, etc.
	CreatedAt time.Time
	UpdatedAt time.Time
}
