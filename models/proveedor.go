package models

// Proveedor represents a parts supplier. DiasCreditoRestantes is computed by
// the backend from the credit due date and drives the expiry notification.
type Proveedor struct {
	IDProveedor          int    `json:"id_proveedor"`
	NombreProveedor      string `json:"nombre_proveedor"`
	NIT                  string `json:"nit"`
	Telefono             string `json:"telefono"`
	Asesor               string `json:"asesor"`
	FechaVencimiento     string `json:"fecha_vencimiento"`
	DiasCreditoRestantes int    `json:"dias_credito_restantes"`
}
