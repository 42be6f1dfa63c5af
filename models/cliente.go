package models

// Cliente represents a workshop client as delivered by the backend
type Cliente struct {
	IDCliente      int            `json:"id_cliente"`
	NombreCliente  string         `json:"nombre_cliente"`
	Cedula         string         `json:"cedula"`
	Correo         string         `json:"correo"`
	Telefono       string         `json:"telefono"`
	Facturas       []Factura      `json:"facturas,omitempty"`
	MotosCliente   []MotoCliente  `json:"motos_cliente,omitempty"`
	VentasDirectas []VentaDirecta `json:"ventas_directas,omitempty"`
	Reservas       []Reserva      `json:"reserva,omitempty"`
}
