package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/moto-workshop/mws-dashboard-api/config"
	"github.com/moto-workshop/mws-dashboard-api/documents"
	"github.com/moto-workshop/mws-dashboard-api/middleware"
	"github.com/moto-workshop/mws-dashboard-api/models"
	"github.com/moto-workshop/mws-dashboard-api/services"
)

func testFactura() models.Factura {
	return models.Factura{
		IDFactura:    77,
		Fecha:        "2024-06-01",
		Vendedor:     "Andres",
		PagoEfectivo: 119000,
		Subtotal:     100000,
		IVA:          19000,
		Total:        119000,
		Cliente: &models.Cliente{
			IDCliente:     7,
			NombreCliente: "Maria Lopez",
			Cedula:        "1020304050",
			Correo:        "maria@example.com",
			Telefono:      "3001112233",
		},
		OrdenServicio: &models.OrdenServicio{
			IDOrdenServicio: 55,
			MotoCliente:     &models.MotoCliente{Placa: "ABC12D"},
			Servicios: []models.ServicioOrdenServicio{
				{IDServicio: 1, Precio: 100000, Servicio: &models.Servicio{NombreServicio: "Revision completa"}},
			},
		},
	}
}

// setupFacturaRouter wires the invoice routes against a fake backend serving
// one invoice, a test renderer and a mock email service
func setupFacturaRouter(t *testing.T, factura models.Factura) (*gin.Engine, *services.MockEmailService) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /facturas/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		if id != factura.IDFactura {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Factura no encontrada"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(factura)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	previousClient := services.GetBackendClient()
	services.SetBackendClient(&services.BackendClient{BaseURL: server.URL, HTTPClient: server.Client()})
	t.Cleanup(func() { services.SetBackendClient(previousClient) })

	previousRenderer := documents.GetRenderer()
	documents.SetRenderer(documents.NewRenderer(config.CompanyInfo{Name: "Taller MotoMax", NIT: "900.123.456-7"}))
	t.Cleanup(func() { documents.SetRenderer(previousRenderer) })

	mock := services.NewMockEmailService()
	previousEmail := services.GetEmailService()
	services.SetEmailService(mock)
	t.Cleanup(func() { services.SetEmailService(previousEmail) })

	router := gin.New()
	rg := router.Group("/api/v1")
	rg.Use(middleware.RequireToken())
	RegisterFacturaRoutes(rg)
	return router, mock
}

func TestGetFacturaReturnsGraphAndItems(t *testing.T) {
	router, _ := setupFacturaRouter(t, testFactura())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/facturas/77", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	items := data["items"].([]interface{})
	assert.Len(t, items, 1)
	factura := data["factura"].(map[string]interface{})
	assert.Equal(t, float64(77), factura["id_factura"])
}

func TestPrintThermalRendersHTML(t *testing.T) {
	router, _ := setupFacturaRouter(t, testFactura())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/facturas/77/print/thermal", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Taller MotoMax")
	assert.Contains(t, w.Body.String(), "60mm")
}

func TestPrintStandardRendersHTML(t *testing.T) {
	router, _ := setupFacturaRouter(t, testFactura())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/facturas/77/print/standard", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A4")
	assert.Contains(t, w.Body.String(), "Revision completa")
}

func TestDownloadXMLIsAnAttachment(t *testing.T) {
	router, _ := setupFacturaRouter(t, testFactura())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/facturas/77/xml", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/xml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "factura_77.xml")
	assert.Contains(t, w.Body.String(), "<id_de_factura>77</id_de_factura>")
}

func TestSendEmailDerivesParamsFromInvoice(t *testing.T) {
	router, mock := setupFacturaRouter(t, testFactura())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/facturas/77/send-email", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	sent := mock.Sent()
	assert.Len(t, sent, 1)
	assert.Equal(t, "maria@example.com", sent[0].EmailCliente)
	assert.Equal(t, "Revision completa", sent[0].Servicio)
	assert.Equal(t, "ABC12D", sent[0].PlacaMoto)
	assert.Equal(t, 119000.0, sent[0].Precio)
}

func TestSendEmailRequiresClientAddress(t *testing.T) {
	factura := testFactura()
	factura.Cliente.Correo = ""
	router, mock := setupFacturaRouter(t, factura)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/facturas/77/send-email", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mock.Sent())
}

func TestSendEmailRejectsDirectSaleInvoice(t *testing.T) {
	factura := testFactura()
	factura.OrdenServicio = nil
	factura.VentaDirecta = &models.VentaDirecta{IDVenta: 1}
	router, mock := setupFacturaRouter(t, factura)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/facturas/77/send-email", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mock.Sent())
}

func TestFacturaNotFound(t *testing.T) {
	router, _ := setupFacturaRouter(t, testFactura())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/facturas/1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Factura no encontrada")
}
