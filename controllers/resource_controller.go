package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moto-workshop/mws-dashboard-api/forms"
	"github.com/moto-workshop/mws-dashboard-api/listview"
	"github.com/moto-workshop/mws-dashboard-api/middleware"
	"github.com/moto-workshop/mws-dashboard-api/services"
)

// defaultPageSize is the page size used when the request carries none
const defaultPageSize = 10

// Resource describes one backend resource wired through the shared list and
// form plumbing. SortField and the export columns are optional; resources
// without them still list, create, update and delete.
type Resource[T any] struct {
	// Name is the backend path segment and the form-definition key
	Name string
	// EnvelopeKey is the key the backend wraps list responses under
	EnvelopeKey string

	// SortField extracts sortable values for the in-memory sort
	SortField listview.FieldFunc[T]

	// ExportHeaders and ExportRow describe the spreadsheet projection
	ExportHeaders []string
	ExportRow     func(T) []string

	// PrepareDraft reshapes a fetched entity before it is hydrated into an
	// edit draft (e.g. lifting a joined detail row into a form field)
	PrepareDraft func(entity map[string]interface{}) map[string]interface{}
}

// Register mounts the resource's routes on a router group
func (res Resource[T]) Register(rg *gin.RouterGroup) {
	rg.GET("/"+res.Name, res.list)
	rg.GET("/"+res.Name+"/export", res.export)
	rg.GET("/"+res.Name+"/:id", res.detail)
	rg.POST("/"+res.Name, res.create)
	rg.PUT("/"+res.Name+"/:id", res.update)
	rg.DELETE("/"+res.Name+"/:id", res.delete)
}

// newController binds a list controller to the backend for one request's
// bearer token
func (res Resource[T]) newController(token string, pageSize int) *listview.Controller[T] {
	client := services.GetBackendClient()
	fetch := func(ctx context.Context, q listview.Query) ([]T, error) {
		return services.FetchList[T](ctx, client, token, res.Name, res.EnvelopeKey, services.ListQuery{
			Query: q.Filter,
			Page:  q.Page,
			Limit: q.PageSize,
		})
	}
	countPages := func(ctx context.Context, filter string, size int) (int, error) {
		return services.FetchPages(ctx, client, token, res.Name, filter, size)
	}
	deleteRow := func(ctx context.Context, id int) error {
		return services.DeleteEntity(ctx, client, token, res.Name, id)
	}
	return listview.NewController(fetch, countPages, deleteRow, pageSize)
}

func parseListQuery(c *gin.Context) listview.Query {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	return listview.Query{
		Filter:   c.Query("query"),
		Page:     page,
		PageSize: limit,
	}
}

func parseSort(c *gin.Context) *listview.SortState {
	key := c.Query("sort")
	if key == "" {
		return nil
	}
	dir := listview.Ascending
	if c.Query("dir") == string(listview.Descending) {
		dir = listview.Descending
	}
	return &listview.SortState{Key: key, Direction: dir}
}

// snapshotResponse serializes a controller snapshot, applying the requested
// in-memory sort to the loaded page
func (res Resource[T]) snapshotResponse(c *gin.Context, ctrl *listview.Controller[T]) gin.H {
	snap := ctrl.Snapshot()
	rows := snap.Rows
	if sortState := parseSort(c); sortState != nil && res.SortField != nil {
		rows = listview.Sort(rows, sortState, res.SortField)
	}
	return gin.H{
		"rows":        rows,
		"total_pages": snap.TotalPages,
		"state":       snap.State,
		"page":        snap.Query.Page,
		"limit":       snap.Query.PageSize,
		"query":       snap.Query.Filter,
	}
}

// list handles GET /api/v1/<resource>
func (res Resource[T]) list(c *gin.Context) {
	token, err := middleware.GetToken(c)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	q := parseListQuery(c)
	ctrl := res.newController(token, q.PageSize)
	defer ctrl.Close()

	if err := ctrl.SetQuery(c.Request.Context(), q); err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    res.snapshotResponse(c, ctrl),
	})
}

// detail handles GET /api/v1/<resource>/:id - returns the raw entity along
// with the hydrated edit draft
func (res Resource[T]) detail(c *gin.Context) {
	token, err := middleware.GetToken(c)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	client := services.GetBackendClient()
	entity, err := services.FetchOne[map[string]interface{}](c.Request.Context(), client, token, res.Name, id)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	draftSource := entity
	if res.PrepareDraft != nil {
		draftSource = res.PrepareDraft(entity)
	}
	def := forms.Lookup(res.Name)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"entity": entity,
			"draft":  forms.Hydrate(draftSource, def.Defaults),
		},
	})
}

// create handles POST /api/v1/<resource> - the draft is schema-validated
// before any backend request is made
func (res Resource[T]) create(c *gin.Context) {
	token, err := middleware.GetToken(c)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	var draft map[string]interface{}
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondBadRequest(c, "Invalid request data")
		return
	}

	def := forms.Lookup(res.Name)
	form := forms.NewCreate(def.Schema, def.Defaults, "/"+res.Name)
	form.SetValues(draft)

	client := services.GetBackendClient()
	var created T
	result, err := form.Submit(c.Request.Context(),
		func(ctx context.Context, payload map[string]interface{}) error {
			entity, err := services.CreateEntity[T](ctx, client, token, res.Name, payload)
			if err != nil {
				return err
			}
			created = entity
			return nil
		},
		nil,
	)
	if err != nil {
		respondFormError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"entity":   created,
			"redirect": result.Redirect,
		},
	})
}

// update handles PUT /api/v1/<resource>/:id - full-record replacement
func (res Resource[T]) update(c *gin.Context) {
	token, err := middleware.GetToken(c)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var draft map[string]interface{}
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondBadRequest(c, "Invalid request data")
		return
	}

	def := forms.Lookup(res.Name)
	form := forms.NewEdit(def.Schema, def.Defaults, id, nil, "/"+res.Name)
	form.SetValues(draft)

	client := services.GetBackendClient()
	var updated T
	result, err := form.Submit(c.Request.Context(),
		nil,
		func(ctx context.Context, entityID int, payload map[string]interface{}) error {
			entity, err := services.UpdateEntity[T](ctx, client, token, res.Name, entityID, payload)
			if err != nil {
				return err
			}
			updated = entity
			return nil
		},
	)
	if err != nil {
		respondFormError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"entity":   updated,
			"redirect": result.Redirect,
		},
	})
}

// delete handles DELETE /api/v1/<resource>/:id - deletes, refetches the
// caller's query state and answers with the post-delete snapshot. Deleting the
// last row of the last page lands on the previous page.
func (res Resource[T]) delete(c *gin.Context) {
	token, err := middleware.GetToken(c)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	q := parseListQuery(c)
	ctrl := res.newController(token, q.PageSize)
	defer ctrl.Close()

	// The caller's query state is installed without a fetch; DeleteRow
	// reloads it after the delete anyway
	if err := ctrl.Restore(q); err != nil {
		respondBackendError(c, err)
		return
	}
	if err := ctrl.DeleteRow(c.Request.Context(), id); err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    res.snapshotResponse(c, ctrl),
	})
}

// export handles GET /api/v1/<resource>/export - walks every page of the
// filtered list and streams it as a spreadsheet
func (res Resource[T]) export(c *gin.Context) {
	token, err := middleware.GetToken(c)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	if res.ExportRow == nil {
		respondBadRequest(c, "Export is not available for this resource")
		return
	}

	filter := c.Query("query")
	client := services.GetBackendClient()
	ctx := c.Request.Context()

	const exportPageSize = 200
	pages, err := services.FetchPages(ctx, client, token, res.Name, filter, exportPageSize)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	var data [][]string
	for page := 1; page <= pages; page++ {
		rows, err := services.FetchList[T](ctx, client, token, res.Name, res.EnvelopeKey, services.ListQuery{
			Query: filter,
			Page:  page,
			Limit: exportPageSize,
		})
		if err != nil {
			respondBackendError(c, err)
			return
		}
		for _, row := range rows {
			data = append(data, res.ExportRow(row))
		}
	}

	if c.DefaultQuery("format", "csv") == "xlsx" {
		writeExcel(c, res.Name, res.ExportHeaders, data)
		return
	}
	writeCSV(c, res.Name+".csv", res.ExportHeaders, data)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respondBadRequest(c, "Invalid identifier")
		return 0, false
	}
	return id, true
}
