package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/catalog-pagination/internal/handler"
	"github.com/maxviazov/catalog-pagination/internal/model"
	"github.com/maxviazov/catalog-pagination/internal/pagination"
	"github.com/maxviazov/catalog-pagination/internal/repository"
	"github.com/maxviazov/catalog-pagination/internal/service"
)

// stubDatasetService lets each test control the outcome and capture inputs.
type stubDatasetService struct {
	list struct {
		res  service.DatasetPage
		err  error
		page int
		size int
	}
	get struct {
		res model.Dataset
		err error
		id  int64
	}
}

func (s *stubDatasetService) ListDatasets(_ context.Context, page, pageSize int) (service.DatasetPage, error) {
	s.list.page, s.list.size = page, pageSize
	return s.list.res, s.list.err
}

func (s *stubDatasetService) GetDataset(_ context.Context, id int64) (model.Dataset, error) {
	s.get.id = id
	return s.get.res, s.get.err
}

func newDatasetEngine(svc service.DatasetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return handler.NewEngine(handler.Deps{Pinger: stubPinger{}, Datasets: svc})
}

func TestDatasetHandler_List_OK(t *testing.T) {
	stub := &stubDatasetService{}
	stub.list.res = service.DatasetPage{
		Items: []model.Dataset{{ID: 41, Title: "Air quality"}},
		Meta:  pagination.NewMeta(10, 40, 95),
		Pages: pagination.Generate(pagination.Request{CurrentPage: 5, TotalPages: 10}, 5),
	}
	r := newDatasetEngine(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.APIV1Prefix+"/datasets?page=5&page_size=10", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 5, stub.list.page)
	assert.Equal(t, 10, stub.list.size)

	var body struct {
		Items []model.Dataset    `json:"items"`
		Meta  pagination.Meta    `json:"meta"`
		Pages []pagination.Token `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Air quality", body.Items[0].Title)
	assert.Equal(t, 10, body.Meta.TotalPages)
	assert.Equal(t, stub.list.res.Pages, body.Pages)
}

func TestDatasetHandler_List_Defaults(t *testing.T) {
	stub := &stubDatasetService{}
	r := newDatasetEngine(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.APIV1Prefix+"/datasets", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.list.page)
	assert.Equal(t, 0, stub.list.size, "service picks the configured page size")
}

func TestDatasetHandler_List_InvalidQuery(t *testing.T) {
	r := newDatasetEngine(&stubDatasetService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.APIV1Prefix+"/datasets?page=two", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"page"`)
}

func TestDatasetHandler_List_StorageDown(t *testing.T) {
	stub := &stubDatasetService{}
	stub.list.err = repository.ErrUnavailable
	r := newDatasetEngine(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.APIV1Prefix+"/datasets", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDatasetHandler_Get(t *testing.T) {
	stub := &stubDatasetService{}
	stub.get.res = model.Dataset{ID: 7, Title: "Census"}
	r := newDatasetEngine(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.APIV1Prefix+"/datasets/7", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), stub.get.id)
	assert.Contains(t, w.Body.String(), "Census")
}

func TestDatasetHandler_Get_Errors(t *testing.T) {
	stub := &stubDatasetService{}
	stub.get.err = repository.ErrNotFound
	r := newDatasetEngine(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.APIV1Prefix+"/datasets/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, handler.APIV1Prefix+"/datasets/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
