package models

// Mecanico represents a mechanic. The backend delivers the optional detail
// rows pre-joined under "mecanicodetalle"; a mechanic created without a
// detail row arrives with an empty slice.
type Mecanico struct {
	IDMecanico int               `json:"id_mecanico"`
	Nombre     string            `json:"nombre"`
	Apellido   string            `json:"apellido"`
	Telefono   string            `json:"telefono"`
	Correo     string            `json:"correo"`
	Direccion  string            `json:"direccion"`
	Cedula     string            `json:"cedula"`
	Detalle    []MecanicoDetalle `json:"mecanicodetalle,omitempty"`
}

// MecanicoDetalle holds the employment details of a mechanic
type MecanicoDetalle struct {
	IDMecanicoDetalle   int     `json:"id_mecanicodetalle"`
	IDMecanico          int     `json:"id_mecanico"`
	Salario             float64 `json:"salario"`
	Horario             string  `json:"horario"`
	TipoMecanico        string  `json:"tipo_mecanico"`
	ServiciosRealizados int     `json:"servicios_realizados"`
	ExperienciaAnhos    int     `json:"experiencia_anhos"`
}
