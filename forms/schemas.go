package forms

// Definition bundles the declarative schema and the create-mode defaults of
// one resource's form
type Definition struct {
	Schema   map[string]interface{}
	Defaults map[string]interface{}
}

// Lookup returns the form definition for a backend resource. Resources
// without a registered definition get pass-through validation and an empty
// draft.
func Lookup(resource string) Definition {
	if def, ok := registry[resource]; ok {
		return def
	}
	return Definition{Defaults: map[string]interface{}{}}
}

var registry = map[string]Definition{
	"mecanico": {
		Schema: map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"nombre", "apellido", "telefono", "correo", "cedula"},
			"properties": map[string]interface{}{
				"nombre":    map[string]interface{}{"type": "string", "minLength": 1},
				"apellido":  map[string]interface{}{"type": "string", "minLength": 1},
				"telefono":  map[string]interface{}{"type": "string", "minLength": 1},
				"correo":    map[string]interface{}{"type": "string", "format": "email"},
				"direccion": map[string]interface{}{"type": "string"},
				"cedula":    map[string]interface{}{"type": "string", "minLength": 1},
				"detalle": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"salario":              map[string]interface{}{"type": "number", "minimum": 0},
						"horario":              map[string]interface{}{"type": "string"},
						"tipo_mecanico":        map[string]interface{}{"type": "string"},
						"servicios_realizados": map[string]interface{}{"type": "integer", "minimum": 0},
						"experiencia_anhos":    map[string]interface{}{"type": "integer", "minimum": 0},
					},
				},
			},
		},
		Defaults: map[string]interface{}{
			"nombre":    "",
			"apellido":  "",
			"telefono":  "",
			"correo":    "",
			"direccion": "",
			"cedula":    "",
			"detalle": map[string]interface{}{
				"salario":              float64(0),
				"horario":              "",
				"tipo_mecanico":        "",
				"servicios_realizados": float64(0),
				"experiencia_anhos":    float64(0),
			},
		},
	},
	"clientes": {
		Schema: map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"nombre_cliente", "cedula", "telefono"},
			"properties": map[string]interface{}{
				"nombre_cliente": map[string]interface{}{"type": "string", "minLength": 1},
				"cedula":         map[string]interface{}{"type": "string", "minLength": 1},
				"correo":         map[string]interface{}{"type": "string"},
				"telefono":       map[string]interface{}{"type": "string", "minLength": 1},
			},
		},
		Defaults: map[string]interface{}{
			"nombre_cliente": "",
			"cedula":         "",
			"correo":         "",
			"telefono":       "",
		},
	},
	"repuesto": {
		Schema: map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"nombre_repuesto", "valor_unitario", "stock", "id_marca"},
			"properties": map[string]interface{}{
				"codigo_barras":   map[string]interface{}{"type": "string"},
				"nombre_repuesto": map[string]interface{}{"type": "string", "minLength": 1},
				"valor_compra":    map[string]interface{}{"type": "number", "minimum": 0},
				"valor_unitario":  map[string]interface{}{"type": "number", "minimum": 0},
				"ubicacion":       map[string]interface{}{"type": "string"},
				"stock":           map[string]interface{}{"type": "integer", "minimum": 0},
				"id_marca":        map[string]interface{}{"type": "integer"},
			},
		},
		Defaults: map[string]interface{}{
			"codigo_barras":   "",
			"nombre_repuesto": "",
			"valor_compra":    float64(0),
			"valor_unitario":  float64(0),
			"ubicacion":       "",
			"stock":           float64(0),
			"id_marca":        float64(0),
		},
	},
	"proveedor": {
		Schema: map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"nombre_proveedor", "nit"},
			"properties": map[string]interface{}{
				"nombre_proveedor":  map[string]interface{}{"type": "string", "minLength": 1},
				"nit":               map[string]interface{}{"type": "string", "minLength": 1},
				"telefono":          map[string]interface{}{"type": "string"},
				"asesor":            map[string]interface{}{"type": "string"},
				"fecha_vencimiento": map[string]interface{}{"type": "string"},
			},
		},
		Defaults: map[string]interface{}{
			"nombre_proveedor":  "",
			"nit":               "",
			"telefono":          "",
			"asesor":            "",
			"fecha_vencimiento": "",
		},
	},
	"reservas": {
		Schema: map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"id_cliente", "fecha_reserva"},
			"properties": map[string]interface{}{
				"id_cliente":    map[string]interface{}{"type": "integer"},
				"id_servicio":   map[string]interface{}{"type": []interface{}{"integer", "null"}},
				"fecha_reserva": map[string]interface{}{"type": "string", "minLength": 1},
			},
		},
		Defaults: map[string]interface{}{
			"id_cliente":    float64(0),
			"id_servicio":   nil,
			"fecha_reserva": "",
		},
	},
}
