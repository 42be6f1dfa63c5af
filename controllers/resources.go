package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moto-workshop/mws-dashboard-api/models"
)

// MecanicoResource is the mechanics list and form pipeline. The backend
// delivers the detail rows pre-joined under "mecanicodetalle"; the first one
// is lifted into the "detalle" form field for edit drafts.
var MecanicoResource = Resource[models.Mecanico]{
	Name:        "mecanico",
	EnvelopeKey: "mecanicos",
	SortField: func(m models.Mecanico, key string) (interface{}, bool) {
		switch key {
		case "nombre":
			return m.Nombre, true
		case "apellido":
			return m.Apellido, true
		case "cedula":
			return m.Cedula, true
		case "correo":
			return m.Correo, true
		case "telefono":
			return m.Telefono, true
		case "salario":
			if len(m.Detalle) == 0 {
				return nil, false
			}
			return m.Detalle[0].Salario, true
		case "experiencia_anhos":
			if len(m.Detalle) == 0 {
				return nil, false
			}
			return m.Detalle[0].ExperienciaAnhos, true
		default:
			return nil, false
		}
	},
	ExportHeaders: []string{"ID", "Nombre", "Apellido", "Cedula", "Telefono", "Correo", "Direccion"},
	ExportRow: func(m models.Mecanico) []string {
		return []string{
			strconv.Itoa(m.IDMecanico), m.Nombre, m.Apellido, m.Cedula,
			m.Telefono, m.Correo, m.Direccion,
		}
	},
	PrepareDraft: func(entity map[string]interface{}) map[string]interface{} {
		rows, ok := entity["mecanicodetalle"].([]interface{})
		if !ok || len(rows) == 0 {
			return entity
		}
		detail, ok := rows[0].(map[string]interface{})
		if !ok {
			return entity
		}
		prepared := make(map[string]interface{}, len(entity)+1)
		for k, v := range entity {
			prepared[k] = v
		}
		prepared["detalle"] = detail
		return prepared
	},
}

// ClienteResource is the clients pipeline
var ClienteResource = Resource[models.Cliente]{
	Name:        "clientes",
	EnvelopeKey: "clientes",
	SortField: func(cl models.Cliente, key string) (interface{}, bool) {
		switch key {
		case "nombre_cliente":
			return cl.NombreCliente, true
		case "cedula":
			return cl.Cedula, true
		case "correo":
			return cl.Correo, true
		case "telefono":
			return cl.Telefono, true
		default:
			return nil, false
		}
	},
	ExportHeaders: []string{"ID", "Nombre", "Cedula", "Correo", "Telefono"},
	ExportRow: func(cl models.Cliente) []string {
		return []string{strconv.Itoa(cl.IDCliente), cl.NombreCliente, cl.Cedula, cl.Correo, cl.Telefono}
	},
}

// RepuestoResource is the spare parts pipeline
var RepuestoResource = Resource[models.Repuesto]{
	Name:        "repuesto",
	EnvelopeKey: "repuestos",
	SortField: func(r models.Repuesto, key string) (interface{}, bool) {
		switch key {
		case "nombre_repuesto":
			return r.NombreRepuesto, true
		case "codigo_barras":
			return r.CodigoBarras, true
		case "valor_compra":
			return r.ValorCompra, true
		case "valor_unitario":
			return r.ValorUnitario, true
		case "stock":
			return r.Stock, true
		case "ubicacion":
			return r.Ubicacion, true
		case "marca":
			if r.Marca == nil {
				return nil, false
			}
			return r.Marca.NombreMarca, true
		default:
			return nil, false
		}
	},
	ExportHeaders: []string{"ID", "Codigo", "Nombre", "Marca", "Valor compra", "Valor unitario", "Stock", "Ubicacion"},
	ExportRow: func(r models.Repuesto) []string {
		marca := ""
		if r.Marca != nil {
			marca = r.Marca.NombreMarca
		}
		return []string{
			strconv.Itoa(r.IDRepuesto), r.CodigoBarras, r.NombreRepuesto, marca,
			fmt.Sprintf("%.2f", r.ValorCompra), fmt.Sprintf("%.2f", r.ValorUnitario),
			strconv.Itoa(r.Stock), r.Ubicacion,
		}
	},
}

// ProveedorResource is the suppliers pipeline
var ProveedorResource = Resource[models.Proveedor]{
	Name:        "proveedor",
	EnvelopeKey: "proveedores",
	SortField: func(p models.Proveedor, key string) (interface{}, bool) {
		switch key {
		case "nombre_proveedor":
			return p.NombreProveedor, true
		case "nit":
			return p.NIT, true
		case "asesor":
			return p.Asesor, true
		case "fecha_vencimiento":
			return p.FechaVencimiento, true
		case "dias_credito_restantes":
			return p.DiasCreditoRestantes, true
		default:
			return nil, false
		}
	},
	ExportHeaders: []string{"ID", "Nombre", "NIT", "Telefono", "Asesor", "Vencimiento", "Dias de credito"},
	ExportRow: func(p models.Proveedor) []string {
		return []string{
			strconv.Itoa(p.IDProveedor), p.NombreProveedor, p.NIT, p.Telefono,
			p.Asesor, p.FechaVencimiento, strconv.Itoa(p.DiasCreditoRestantes),
		}
	},
}

// ReservaResource is the reservations pipeline
var ReservaResource = Resource[models.Reserva]{
	Name:        "reservas",
	EnvelopeKey: "reservas",
	SortField: func(r models.Reserva, key string) (interface{}, bool) {
		switch key {
		case "fecha_reserva":
			return r.FechaReserva.Time, true
		case "cliente":
			if r.Cliente == nil {
				return nil, false
			}
			return r.Cliente.NombreCliente, true
		case "servicio":
			if r.Servicio == nil {
				return nil, false
			}
			return r.Servicio.NombreServicio, true
		default:
			return nil, false
		}
	},
	ExportHeaders: []string{"ID", "Cliente", "Servicio", "Fecha"},
	ExportRow: func(r models.Reserva) []string {
		cliente := ""
		if r.Cliente != nil {
			cliente = r.Cliente.NombreCliente
		}
		servicio := ""
		if r.Servicio != nil {
			servicio = r.Servicio.NombreServicio
		}
		return []string{strconv.Itoa(r.IDReserva), cliente, servicio, r.FechaReserva.Format("2006-01-02")}
	},
}

// Catalog resources share the generic plumbing with pass-through validation

// ServicioResource is the service catalog
var ServicioResource = Resource[models.Servicio]{
	Name:        "servicio",
	EnvelopeKey: "servicios",
	SortField: func(s models.Servicio, key string) (interface{}, bool) {
		if key == "nombre_servicio" {
			return s.NombreServicio, true
		}
		return nil, false
	},
	ExportHeaders: []string{"ID", "Nombre"},
	ExportRow: func(s models.Servicio) []string {
		return []string{strconv.Itoa(s.IDServicio), s.NombreServicio}
	},
}

// UserResource is the operator account catalog
var UserResource = Resource[models.User]{
	Name:        "users",
	EnvelopeKey: "users",
	SortField: func(u models.User, key string) (interface{}, bool) {
		switch key {
		case "nombre_usuario":
			return u.NombreUsuario, true
		case "email":
			return u.Email, true
		case "rol":
			return u.Rol, true
		default:
			return nil, false
		}
	},
	ExportHeaders: []string{"ID", "Usuario", "Email", "Rol"},
	ExportRow: func(u models.User) []string {
		return []string{strconv.Itoa(u.IDUsuario), u.NombreUsuario, u.Email, u.Rol}
	},
}

// MotoClienteResource is the client motorcycle catalog
var MotoClienteResource = Resource[models.MotoCliente]{
	Name:        "moto-cliente",
	EnvelopeKey: "motos",
	SortField: func(m models.MotoCliente, key string) (interface{}, bool) {
		switch key {
		case "placa":
			return m.Placa, true
		case "marca":
			return m.Marca, true
		case "modelo":
			return m.Modelo, true
		case "ano":
			return m.Ano, true
		default:
			return nil, false
		}
	},
	ExportHeaders: []string{"ID", "Placa", "Marca", "Modelo", "Ano"},
	ExportRow: func(m models.MotoCliente) []string {
		return []string{strconv.Itoa(m.IDMotoCliente), m.Placa, m.Marca, m.Modelo, strconv.Itoa(m.Ano)}
	},
}

// MotoMercadoResource is the market motorcycle catalog
var MotoMercadoResource = Resource[models.MotoMercado]{
	Name:        "moto-mercado",
	EnvelopeKey: "motos",
	SortField: func(m models.MotoMercado, key string) (interface{}, bool) {
		if key == "modelo" {
			return m.Modelo, true
		}
		return nil, false
	},
	ExportHeaders: []string{"ID", "Modelo"},
	ExportRow: func(m models.MotoMercado) []string {
		return []string{strconv.Itoa(m.IDMotoMercado), m.Modelo}
	},
}

// MarcaRepuestoResource is the spare part brand catalog
var MarcaRepuestoResource = Resource[models.MarcaRepuesto]{
	Name:        "marca-repuesto",
	EnvelopeKey: "marcas",
	SortField: func(m models.MarcaRepuesto, key string) (interface{}, bool) {
		if key == "nombre_marca" {
			return m.NombreMarca, true
		}
		return nil, false
	},
	ExportHeaders: []string{"ID", "Nombre"},
	ExportRow: func(m models.MarcaRepuesto) []string {
		return []string{strconv.Itoa(m.IDMarca), m.NombreMarca}
	},
}

// RegisterResources mounts every resource pipeline on the router group
func RegisterResources(rg *gin.RouterGroup) {
	MecanicoResource.Register(rg)
	ClienteResource.Register(rg)
	RepuestoResource.Register(rg)
	ProveedorResource.Register(rg)
	ReservaResource.Register(rg)
	ServicioResource.Register(rg)
	UserResource.Register(rg)
	MotoClienteResource.Register(rg)
	MotoMercadoResource.Register(rg)
	MarcaRepuestoResource.Register(rg)
}
