// Package documents renders invoices as printable HTML and as a downloadable
// XML export. Rendering is pure: the same invoice always produces the same
// bytes.
package documents

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/moto-workshop/mws-dashboard-api/config"
	"github.com/moto-workshop/mws-dashboard-api/models"
)

// LineItem is a single printable invoice line, regardless of whether it came
// from a service order or a direct sale
type LineItem struct {
	Nombre   string
	Cantidad int
	Precio   float64
}

// Total returns the line total
func (li LineItem) Total() float64 {
	return float64(li.Cantidad) * li.Precio
}

var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP formats an amount as Colombian pesos with thousands grouping
func FormatCOP(v float64) string {
	return copPrinter.Sprintf("$ %v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// FlattenItems converts an invoice's backing document into printable lines.
// Service-order invoices list each service at quantity one followed by the
// part lines; direct-sale invoices list the sold parts.
func FlattenItems(f *models.Factura) []LineItem {
	var items []LineItem

	switch {
	case f.OrdenServicio != nil:
		for _, s := range f.OrdenServicio.Servicios {
			name := "Servicio"
			if s.Servicio != nil {
				name = s.Servicio.NombreServicio
			}
			items = append(items, LineItem{Nombre: name, Cantidad: 1, Precio: s.Precio})
		}
		for _, r := range f.OrdenServicio.Repuestos {
			name := "Repuesto"
			if r.Repuesto != nil {
				name = r.Repuesto.NombreRepuesto
			}
			items = append(items, LineItem{Nombre: name, Cantidad: r.Cantidad, Precio: r.Precio})
		}
	case f.VentaDirecta != nil:
		for _, r := range f.VentaDirecta.RepuestoVenta {
			name := "Repuesto"
			if r.Repuesto != nil {
				name = r.Repuesto.NombreRepuesto
			}
			items = append(items, LineItem{Nombre: name, Cantidad: r.Cantidad, Precio: r.Precio})
		}
	}

	return items
}

// documentData is the data handed to the HTML templates
type documentData struct {
	Company       config.CompanyInfo
	Factura       *models.Factura
	Cliente       *models.Cliente
	Items         []LineItem
	Placa         string
	Observaciones string
	Bruto         float64
}

// Renderer renders invoice documents stamped with the workshop identity
type Renderer struct {
	company  config.CompanyInfo
	thermal  *template.Template
	standard *template.Template
}

var rendererInstance *Renderer

// NewRenderer creates a renderer for the given workshop identity
func NewRenderer(company config.CompanyInfo) *Renderer {
	funcs := template.FuncMap{"cop": FormatCOP}
	return &Renderer{
		company:  company,
		thermal:  template.Must(template.New("thermal").Funcs(funcs).Parse(thermalTemplate)),
		standard: template.Must(template.New("standard").Funcs(funcs).Parse(standardTemplate)),
	}
}

// GetRenderer returns the renderer instance
func GetRenderer() *Renderer {
	return rendererInstance
}

// SetRenderer sets the renderer instance (primarily for testing)
func SetRenderer(r *Renderer) {
	rendererInstance = r
}

func (r *Renderer) buildData(f *models.Factura) documentData {
	data := documentData{
		Company: r.company,
		Factura: f,
		Cliente: f.Cliente,
		Items:   FlattenItems(f),
		Bruto:   f.Subtotal + f.Descuento,
	}
	if f.OrdenServicio != nil {
		data.Observaciones = f.OrdenServicio.ObservacionesFactura
		if f.OrdenServicio.MotoCliente != nil {
			data.Placa = f.OrdenServicio.MotoCliente.Placa
		}
	}
	return data
}

// RenderThermal renders the invoice as 60mm receipt HTML
func (r *Renderer) RenderThermal(f *models.Factura) (string, error) {
	var buf bytes.Buffer
	if err := r.thermal.Execute(&buf, r.buildData(f)); err != nil {
		return "", fmt.Errorf("failed to render thermal receipt: %w", err)
	}
	return buf.String(), nil
}

// RenderStandard renders the invoice as A4 HTML
func (r *Renderer) RenderStandard(f *models.Factura) (string, error) {
	var buf bytes.Buffer
	if err := r.standard.Execute(&buf, r.buildData(f)); err != nil {
		return "", fmt.Errorf("failed to render invoice page: %w", err)
	}
	return buf.String(), nil
}

type xmlParty struct {
	Nombre   string `xml:"nombre"`
	NIT      string `xml:"nit,omitempty"`
	Cedula   string `xml:"cedula,omitempty"`
	Correo   string `xml:"correo"`
	Telefono string `xml:"telefono"`
	Dir      string `xml:"direccion,omitempty"`
	Vendedor string `xml:"vendedor,omitempty"`
}

type xmlItem struct {
	Nombre   string  `xml:"nombre"`
	Cantidad int     `xml:"cantidad"`
	Precio   float64 `xml:"precio"`
}

type xmlFactura struct {
	XMLName   xml.Name  `xml:"factura"`
	ID        int       `xml:"id_de_factura"`
	Fecha     string    `xml:"fecha"`
	Emisor    xmlParty  `xml:"emisor"`
	Receptor  xmlParty  `xml:"receptor"`
	Items     []xmlItem `xml:"items>item"`
	Valor     float64   `xml:"valor"`
	Descuento float64   `xml:"descuento"`
	Subtotal  float64   `xml:"subtotal"`
	IVA       float64   `xml:"iva"`
	Total     float64   `xml:"total"`
}

// RenderXML renders the invoice as the XML export document
func (r *Renderer) RenderXML(f *models.Factura) ([]byte, error) {
	doc := xmlFactura{
		ID:    f.IDFactura,
		Fecha: f.Fecha,
		Emisor: xmlParty{
			Nombre:   r.company.Name,
			NIT:      r.company.NIT,
			Dir:      r.company.Address,
			Telefono: r.company.Phone,
			Correo:   r.company.Email,
			Vendedor: f.Vendedor,
		},
		Valor:     f.Subtotal + f.Descuento,
		Descuento: f.Descuento,
		Subtotal:  f.Subtotal,
		IVA:       f.IVA,
		Total:     f.Total,
	}
	if f.Cliente != nil {
		doc.Receptor = xmlParty{
			Nombre:   f.Cliente.NombreCliente,
			Cedula:   f.Cliente.Cedula,
			Correo:   f.Cliente.Correo,
			Telefono: f.Cliente.Telefono,
		}
	}
	for _, it := range FlattenItems(f) {
		doc.Items = append(doc.Items, xmlItem{Nombre: it.Nombre, Cantidad: it.Cantidad, Precio: it.Precio})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoice XML: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// XMLFilename returns the download filename for an invoice's XML export
func XMLFilename(f *models.Factura) string {
	return fmt.Sprintf("factura_%d.xml", f.IDFactura)
}
