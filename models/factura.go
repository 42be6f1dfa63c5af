package models

// Factura represents an invoice. Exactly one of OrdenServicio or VentaDirecta
// is populated: an invoice is backed either by a service order or by a direct
// sale, never both.
type Factura struct {
	IDFactura         int            `json:"id_factura"`
	Fecha             string         `json:"fecha"`
	PagoEfectivo      float64        `json:"pago_efectivo"`
	PagoTarjeta       float64        `json:"pago_tarjeta"`
	PagoTransferencia float64        `json:"pago_transferencia"`
	Descuento         float64        `json:"descuento"`
	Subtotal          float64        `json:"subtotal"`
	IVA               float64        `json:"iva"`
	Total             float64        `json:"total"`
	Vendedor          string         `json:"vendedor"`
	IDCliente         int            `json:"id_cliente"`
	Cliente           *Cliente       `json:"Cliente,omitempty"`
	IDOrdenServicio   *int           `json:"id_orden_servicio,omitempty"`
	OrdenServicio     *OrdenServicio `json:"OrdenServicio,omitempty"`
	IDVentaDirecta    *int           `json:"id_venta_directa,omitempty"`
	VentaDirecta      *VentaDirecta  `json:"VentaDirecta,omitempty"`
}
