package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moto-workshop/mws-dashboard-api/documents"
	"github.com/moto-workshop/mws-dashboard-api/middleware"
	"github.com/moto-workshop/mws-dashboard-api/models"
	"github.com/moto-workshop/mws-dashboard-api/services"
)

// fetchFactura loads the full invoice graph for the request's token
func fetchFactura(c *gin.Context) (*models.Factura, bool) {
	token, err := middleware.GetToken(c)
	if err != nil {
		respondAuthError(c, err)
		return nil, false
	}
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}

	client := services.GetBackendClient()
	factura, err := services.FetchOne[models.Factura](c.Request.Context(), client, token, "facturas", id)
	if err != nil {
		respondBackendError(c, err)
		return nil, false
	}
	return &factura, true
}

// GetFactura handles GET /api/v1/facturas/:id - the invoice with its nested
// order or sale graph plus the flattened printable lines
func GetFactura(c *gin.Context) {
	factura, ok := fetchFactura(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"factura": factura,
			"items":   documents.FlattenItems(factura),
		},
	})
}

// PrintFacturaThermal handles GET /api/v1/facturas/:id/print/thermal
func PrintFacturaThermal(c *gin.Context) {
	factura, ok := fetchFactura(c)
	if !ok {
		return
	}

	html, err := documents.GetRenderer().RenderThermal(factura)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PrintFacturaStandard handles GET /api/v1/facturas/:id/print/standard
func PrintFacturaStandard(c *gin.Context) {
	factura, ok := fetchFactura(c)
	if !ok {
		return
	}

	html, err := documents.GetRenderer().RenderStandard(factura)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// DownloadFacturaXML handles GET /api/v1/facturas/:id/xml - the invoice as an
// XML attachment
func DownloadFacturaXML(c *gin.Context) {
	factura, ok := fetchFactura(c)
	if !ok {
		return
	}

	xmlDoc, err := documents.GetRenderer().RenderXML(factura)
	if err != nil {
		respondBackendError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+documents.XMLFilename(factura))
	c.Data(http.StatusOK, "text/xml; charset=utf-8", xmlDoc)
}

// SendFacturaEmail handles POST /api/v1/facturas/:id/send-email - notifies
// the client that the invoiced service is done. The payload is derived from
// the invoice graph; it requires a client email and a backing service order.
func SendFacturaEmail(c *gin.Context) {
	factura, ok := fetchFactura(c)
	if !ok {
		return
	}

	if factura.Cliente == nil || factura.Cliente.Correo == "" {
		respondBadRequest(c, "La factura no tiene un correo de cliente")
		return
	}
	if factura.OrdenServicio == nil {
		respondBadRequest(c, "Solo las facturas de orden de servicio envian correo")
		return
	}

	servicio := "Servicio"
	if len(factura.OrdenServicio.Servicios) > 0 && factura.OrdenServicio.Servicios[0].Servicio != nil {
		servicio = factura.OrdenServicio.Servicios[0].Servicio.NombreServicio
	}
	placa := ""
	if factura.OrdenServicio.MotoCliente != nil {
		placa = factura.OrdenServicio.MotoCliente.Placa
	}

	params := services.EmailParams{
		EmailCliente:  factura.Cliente.Correo,
		NombreCliente: factura.Cliente.NombreCliente,
		Servicio:      servicio,
		PlacaMoto:     placa,
		Precio:        factura.Total,
	}

	if err := services.GetEmailService().SendServicioCompletado(c.Request.Context(), params); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMAIL_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Correo enviado",
	})
}

// RegisterFacturaRoutes mounts the invoice document routes
func RegisterFacturaRoutes(rg *gin.RouterGroup) {
	rg.GET("/facturas/:id", GetFactura)
	rg.GET("/facturas/:id/print/thermal", PrintFacturaThermal)
	rg.GET("/facturas/:id/print/standard", PrintFacturaStandard)
	rg.GET("/facturas/:id/xml", DownloadFacturaXML)
	rg.POST("/facturas/:id/send-email", SendFacturaEmail)
}
