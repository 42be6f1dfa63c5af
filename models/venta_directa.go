package models

// VentaDirecta represents a direct counter sale of spare parts
type VentaDirecta struct {
	IDVenta           int             `json:"id_venta"`
	Fecha             string          `json:"fecha"`
	PagoEfectivo      float64         `json:"pago_efectivo"`
	PagoTarjeta       float64         `json:"pago_tarjeta"`
	PagoTransferencia float64         `json:"pago_transferencia"`
	Subtotal          float64         `json:"subtotal"`
	IVA               float64         `json:"iva"`
	Total             float64         `json:"total"`
	IDCliente         int             `json:"id_cliente"`
	Cliente           *Cliente        `json:"cliente,omitempty"`
	RepuestoVenta     []RepuestoVenta `json:"RepuestoVenta,omitempty"`
}

// RepuestoVenta is a spare part line on a direct sale
type RepuestoVenta struct {
	IDVenta    int       `json:"id_venta"`
	IDRepuesto int       `json:"id_repuesto"`
	Cantidad   int       `json:"cantidad"`
	Precio     float64   `json:"precio"`
	Repuesto   *Repuesto `json:"Repuesto,omitempty"`
}
