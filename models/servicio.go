package models

// Servicio represents a service offered by the workshop
type Servicio struct {
	IDServicio     int    `json:"id_servicio"`
	NombreServicio string `json:"nombre_servicio"`
}
