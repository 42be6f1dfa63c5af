package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/moto-workshop/mws-dashboard-api/config"
	"github.com/moto-workshop/mws-dashboard-api/controllers"
	"github.com/moto-workshop/mws-dashboard-api/middleware"
	"github.com/moto-workshop/mws-dashboard-api/models"
	"github.com/moto-workshop/mws-dashboard-api/tests/testutil"
)

// ListViewIntegrationTestSuite drives the clients list pipeline end to end
// against an in-memory backend
type ListViewIntegrationTestSuite struct {
	suite.Suite
	router *gin.Engine

	mu     sync.Mutex
	rows   []models.Cliente
	nextID int
}

// SetupSuite runs once before all tests
func (suite *ListViewIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	os.Setenv("GO_ENV", "test")
	os.Setenv("BACKEND_API_URL", "http://backend.invalid")
	os.Setenv("PORT", "8080")

	_, err := config.Load()
	suite.NoError(err)
}

// SetupTest runs before each test
func (suite *ListViewIntegrationTestSuite) SetupTest() {
	suite.rows = nil
	suite.nextID = 0
	for _, name := range []string{"Maria Lopez", "Pedro Ruiz", "Marta Diaz", "Juan Torres", "Mario Vega"} {
		suite.nextID++
		suite.rows = append(suite.rows, models.Cliente{
			IDCliente:     suite.nextID,
			NombreCliente: name,
			Cedula:        strconv.Itoa(5000 + suite.nextID),
			Correo:        "c" + strconv.Itoa(suite.nextID) + "@example.com",
			Telefono:      "300000000" + strconv.Itoa(suite.nextID),
		})
	}

	testutil.WithFakeBackend(suite.T(), suite.backendHandler())

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	v1.Use(middleware.RequireToken())
	controllers.ClienteResource.Register(v1)
}

func (suite *ListViewIntegrationTestSuite) backendHandler() http.Handler {
	mux := http.NewServeMux()

	filtered := func(query string) []models.Cliente {
		if query == "" {
			return suite.rows
		}
		var out []models.Cliente
		for _, row := range suite.rows {
			if strings.Contains(strings.ToLower(row.NombreCliente), strings.ToLower(query)) {
				out = append(out, row)
			}
		}
		return out
	}

	mux.HandleFunc("GET /clientes", func(w http.ResponseWriter, r *http.Request) {
		suite.mu.Lock()
		defer suite.mu.Unlock()
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		rows := filtered(r.URL.Query().Get("query"))
		start := (page - 1) * limit
		if start > len(rows) {
			start = len(rows)
		}
		end := start + limit
		if end > len(rows) {
			end = len(rows)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"clientes": rows[start:end]})
	})

	mux.HandleFunc("GET /clientes/pages", func(w http.ResponseWriter, r *http.Request) {
		suite.mu.Lock()
		defer suite.mu.Unlock()
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		rows := filtered(r.URL.Query().Get("query"))
		_ = json.NewEncoder(w).Encode(map[string]int{"total_pages": (len(rows) + limit - 1) / limit})
	})

	mux.HandleFunc("POST /clientes", func(w http.ResponseWriter, r *http.Request) {
		suite.mu.Lock()
		defer suite.mu.Unlock()
		var cl models.Cliente
		_ = json.NewDecoder(r.Body).Decode(&cl)
		suite.nextID++
		cl.IDCliente = suite.nextID
		suite.rows = append(suite.rows, cl)
		_ = json.NewEncoder(w).Encode(cl)
	})

	mux.HandleFunc("DELETE /clientes/{id}", func(w http.ResponseWriter, r *http.Request) {
		suite.mu.Lock()
		defer suite.mu.Unlock()
		id, _ := strconv.Atoi(r.PathValue("id"))
		for i, row := range suite.rows {
			if row.IDCliente == id {
				suite.rows = append(suite.rows[:i], suite.rows[i+1:]...)
				fmt.Fprint(w, `{}`)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Cliente no encontrado"}`)
	})

	return mux
}

func (suite *ListViewIntegrationTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestSearchThenPaginate mirrors the operator flow: type a filter, then walk
// the pages of the filtered result
func (suite *ListViewIntegrationTestSuite) TestSearchThenPaginate() {
	// "mar" matches Maria, Marta and Mario
	w := suite.do(testutil.AuthedRequest(suite.T(), http.MethodGet, "/api/v1/clientes?query=mar&page=1&limit=2", nil))
	suite.Equal(http.StatusOK, w.Code)

	data := testutil.DecodeData(suite.T(), w)
	suite.Equal(float64(2), data["total_pages"])
	suite.Len(data["rows"], 2)

	w = suite.do(testutil.AuthedRequest(suite.T(), http.MethodGet, "/api/v1/clientes?query=mar&page=2&limit=2", nil))
	data = testutil.DecodeData(suite.T(), w)
	suite.Len(data["rows"], 1)

	row := data["rows"].([]interface{})[0].(map[string]interface{})
	suite.Equal("Mario Vega", row["nombre_cliente"])
}

// TestSortIsAppliedToLoadedPageOnly verifies the in-memory sort reorders the
// current page without changing which rows it holds
func (suite *ListViewIntegrationTestSuite) TestSortIsAppliedToLoadedPageOnly() {
	w := suite.do(testutil.AuthedRequest(suite.T(), http.MethodGet, "/api/v1/clientes?page=1&limit=3&sort=nombre_cliente&dir=descending", nil))
	data := testutil.DecodeData(suite.T(), w)

	rows := data["rows"].([]interface{})
	suite.Len(rows, 3)
	var names []string
	for _, r := range rows {
		names = append(names, r.(map[string]interface{})["nombre_cliente"].(string))
	}
	// Page 1 holds Maria, Pedro, Marta; descending by name
	suite.Equal([]string{"Pedro Ruiz", "Marta Diaz", "Maria Lopez"}, names)
}

// TestCreateThenDeleteRoundTrip creates a client through the form pipeline
// and deletes it through the list pipeline
func (suite *ListViewIntegrationTestSuite) TestCreateThenDeleteRoundTrip() {
	w := suite.do(testutil.AuthedRequest(suite.T(), http.MethodPost, "/api/v1/clientes", map[string]interface{}{
		"nombre_cliente": "Lucia Mora",
		"cedula":         "9999",
		"telefono":       "3015556677",
	}))
	suite.Equal(http.StatusCreated, w.Code)

	data := testutil.DecodeData(suite.T(), w)
	entity := data["entity"].(map[string]interface{})
	id := int(entity["id_cliente"].(float64))
	suite.Equal(6, id)

	w = suite.do(testutil.AuthedRequest(suite.T(), http.MethodDelete, fmt.Sprintf("/api/v1/clientes/%d?page=1&limit=10", id), nil))
	suite.Equal(http.StatusOK, w.Code)

	data = testutil.DecodeData(suite.T(), w)
	suite.Len(data["rows"], 5, "the deleted client is gone from the refetched page")
}

// TestDeleteLastRowOfLastPageStepsBack is the step-back rule through the full
// HTTP surface
func (suite *ListViewIntegrationTestSuite) TestDeleteLastRowOfLastPageStepsBack() {
	// 5 rows at limit 2: page 3 holds only Mario (id 5)
	w := suite.do(testutil.AuthedRequest(suite.T(), http.MethodDelete, "/api/v1/clientes/5?page=3&limit=2", nil))
	suite.Equal(http.StatusOK, w.Code)

	data := testutil.DecodeData(suite.T(), w)
	suite.Equal(float64(2), data["page"])
	suite.Len(data["rows"], 2)
}

// TestInvalidDraftIsBlocked verifies schema validation guards the create
// endpoint
func (suite *ListViewIntegrationTestSuite) TestInvalidDraftIsBlocked() {
	before := len(suite.rows)

	w := suite.do(testutil.AuthedRequest(suite.T(), http.MethodPost, "/api/v1/clientes", map[string]interface{}{
		"nombre_cliente": "",
		"cedula":         "9999",
		"telefono":       "3015556677",
	}))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "VALIDATION_ERROR")
	suite.Len(suite.rows, before)
}

// TestListViewIntegrationTestSuite runs the suite
func TestListViewIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ListViewIntegrationTestSuite))
}
