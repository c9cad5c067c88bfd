package entity

import "time"

// Warehouse representa una bodega en una jerarquía árbol: los nodos de grupo
// (IsGroup) organizan, solo las hojas almacenan stock y pueden aparecer en el
// ledger. Invariante (al guardar): el padre, si existe, debe ser un grupo.
type Warehouse struct {
	ID        string
	Name      string
	IsGroup   bool
	ParentID  string // vacío = raíz
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLeaf indica si la bodega es posteable (hoja, no grupo).
func (w *Warehouse) IsLeaf() bool { return !w.IsGroup }
