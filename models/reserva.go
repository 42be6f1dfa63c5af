package models

// Reserva represents a service reservation
type Reserva struct {
	IDReserva    int       `json:"id_reserva"`
	IDCliente    int       `json:"id_cliente"`
	Cliente      *Cliente  `json:"Cliente,omitempty"`
	IDServicio   *int      `json:"id_servicio,omitempty"`
	Servicio     *Servicio `json:"Servicio,omitempty"`
	FechaReserva Fecha     `json:"fecha_reserva"`
}
