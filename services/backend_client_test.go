package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moto-workshop/mws-dashboard-api/models"
)

func newTestClient(handler http.Handler) (*BackendClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := &BackendClient{BaseURL: server.URL, HTTPClient: server.Client()}
	return client, server
}

func TestFetchListAttachesBearerTokenAndQuery(t *testing.T) {
	var gotAuth, gotQuery, gotPage, gotLimit string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		gotPage = r.URL.Query().Get("page")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"mecanicos": [{"id_mecanico": 1, "nombre": "Carlos"}]}`))
	}))
	defer server.Close()

	rows, err := FetchList[models.Mecanico](context.Background(), client, "tok-123", "mecanico", "mecanicos", ListQuery{Query: "car", Page: 2, Limit: 5})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Carlos", rows[0].Nombre)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "car", gotQuery)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "5", gotLimit)
}

func TestFetchListAcceptsBareArray(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id_repuesto": 3, "nombre_repuesto": "Bujia", "stock": 12}]`))
	}))
	defer server.Close()

	rows, err := FetchList[models.Repuesto](context.Background(), client, "", "repuesto", "repuestos", ListQuery{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Bujia", rows[0].NombreRepuesto)
}

func TestHTTPErrorCarriesServerMessage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "El mecanico ya existe"}`))
	}))
	defer server.Close()

	_, err := FetchOne[models.Mecanico](context.Background(), client, "tok", "mecanico", 9)
	assert.Error(t, err)

	httpErr, ok := err.(*HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "El mecanico ya existe", httpErr.Message)
}

func TestHTTPErrorFallsBackToGenericMessage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer server.Close()

	_, err := FetchOne[models.Mecanico](context.Background(), client, "tok", "mecanico", 9)
	httpErr, ok := err.(*HTTPError)
	assert.True(t, ok)
	assert.Equal(t, genericErrorMessage, httpErr.Message)
}

func TestIsNotFound(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "no existe"}`))
	}))
	defer server.Close()

	_, err := FetchOne[models.Cliente](context.Background(), client, "tok", "clientes", 404)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(nil))
}

func TestNetworkErrorOnUnreachableBackend(t *testing.T) {
	client := &BackendClient{BaseURL: "http://127.0.0.1:1", HTTPClient: http.DefaultClient}

	_, err := FetchAll[models.Proveedor](context.Background(), client, "tok", "proveedor", "proveedores")
	assert.Error(t, err)
	_, ok := err.(*NetworkError)
	assert.True(t, ok, "transport failures must surface as NetworkError, got %T", err)
}

func TestFetchPagesDependsOnFilterAndLimitOnly(t *testing.T) {
	var gotPath string
	var sawPageParam bool
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, sawPageParam = r.URL.Query()["page"]
		_, _ = w.Write([]byte(`{"total_pages": 7}`))
	}))
	defer server.Close()

	pages, err := FetchPages(context.Background(), client, "tok", "clientes", "maria", 10)
	assert.NoError(t, err)
	assert.Equal(t, 7, pages)
	assert.Equal(t, "/clientes/pages", gotPath)
	assert.False(t, sawPageParam, "the page count request must not carry a page number")
}

func TestFetchPagesZeroWhenFilterMatchesNothing(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total_pages": 0}`))
	}))
	defer server.Close()

	pages, err := FetchPages(context.Background(), client, "tok", "mecanico", "zzz", 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, pages, "an empty result set has zero pages, not an error")
}

func TestFetchPagesAcceptsBareNumber(t *testing.T) {
	body := `3`
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	pages, err := FetchPages(context.Background(), client, "tok", "mecanico", "", 10)
	assert.NoError(t, err)
	assert.Equal(t, 3, pages)

	body = `0`
	pages, err = FetchPages(context.Background(), client, "tok", "mecanico", "zzz", 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, pages)
}

func TestCreateAndUpdateEntity(t *testing.T) {
	var gotMethod, gotPath string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id_cliente": 12, "nombre_cliente": "Maria"}`))
	}))
	defer server.Close()

	created, err := CreateEntity[models.Cliente](context.Background(), client, "tok", "clientes", map[string]interface{}{"nombre_cliente": "Maria"})
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/clientes", gotPath)
	assert.Equal(t, 12, created.IDCliente)

	updated, err := UpdateEntity[models.Cliente](context.Background(), client, "tok", "clientes", 12, map[string]interface{}{"nombre_cliente": "Maria"})
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/clientes/12", gotPath)
	assert.Equal(t, "Maria", updated.NombreCliente)
}

func TestDeleteEntity(t *testing.T) {
	var gotMethod, gotPath string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	assert.NoError(t, DeleteEntity(context.Background(), client, "tok", "repuesto", 3))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/repuesto/3", gotPath)
}
