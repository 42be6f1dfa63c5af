package models

// OrdenServicio represents a service order with its pre-joined service and
// part line collections
type OrdenServicio struct {
	IDOrdenServicio       int                     `json:"id_orden_servicio"`
	Fecha                 string                  `json:"fecha"`
	Estado                string                  `json:"estado"`
	Subtotal              float64                 `json:"subtotal"`
	IVA                   float64                 `json:"iva"`
	Total                 float64                 `json:"total"`
	AdelantoEfectivo      float64                 `json:"adelanto_efectivo"`
	AdelantoTarjeta       float64                 `json:"adelanto_tarjeta"`
	AdelantoTransferencia float64                 `json:"adelanto_transferencia"`
	GuardarCascos         bool                    `json:"guardar_cascos"`
	GuardarPapeles        bool                    `json:"guardar_papeles"`
	Observaciones         string                  `json:"observaciones"`
	ObservacionesMecanico string                  `json:"observaciones_mecanico"`
	ObservacionesFactura  string                  `json:"observaciones_factura"`
	Mecanico              string                  `json:"mecanico"`
	IDMotoCliente         int                     `json:"id_moto_cliente"`
	MotoCliente           *MotoCliente            `json:"MotoCliente,omitempty"`
	Servicios             []ServicioOrdenServicio `json:"ServicioOrdenServicio,omitempty"`
	Repuestos             []RepuestoOrdenServicio `json:"RepuestoOrdenServicio,omitempty"`
}

// ServicioOrdenServicio is a service line on a service order
type ServicioOrdenServicio struct {
	IDOrdenServicio int       `json:"id_orden_servicio"`
	IDServicio      int       `json:"id_servicio"`
	Precio          float64   `json:"precio"`
	Servicio        *Servicio `json:"Servicio,omitempty"`
}

// RepuestoOrdenServicio is a spare part line on a service order
type RepuestoOrdenServicio struct {
	IDOrdenServicio int       `json:"id_orden_servicio"`
	IDRepuesto      int       `json:"id_repuesto"`
	Cantidad        int       `json:"cantidad"`
	Precio          float64   `json:"precio"`
	Repuesto        *Repuesto `json:"Repuesto,omitempty"`
}
