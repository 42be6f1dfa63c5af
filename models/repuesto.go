package models

// Repuesto represents a spare part in the workshop inventory
type Repuesto struct {
	IDRepuesto     int            `json:"id_repuesto"`
	CodigoBarras   string         `json:"codigo_barras"`
	NombreRepuesto string         `json:"nombre_repuesto"`
	ValorCompra    float64        `json:"valor_compra"`
	ValorUnitario  float64        `json:"valor_unitario"`
	Ubicacion      string         `json:"ubicacion"`
	Stock          int            `json:"stock"`
	IDMarca        int            `json:"id_marca"`
	Marca          *MarcaRepuesto `json:"MarcaRepuesto,omitempty"`
}

// MarcaRepuesto represents a spare part brand
type MarcaRepuesto struct {
	IDMarca     int        `json:"id_marca"`
	NombreMarca string     `json:"nombre_marca"`
	Repuestos   []Repuesto `json:"repuestos,omitempty"`
}
