package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/catalog-pagination/internal/service"
	"github.com/maxviazov/catalog-pagination/pkg/response"
)

type DatasetHandler struct {
	svc service.DatasetService
}

func NewDatasetHandler(svc service.DatasetService) *DatasetHandler { return &DatasetHandler{svc: svc} }

func (h *DatasetHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/datasets")
	{
		g.GET("", h.list)
		g.GET("/:id", h.getByID)
	}
}

func (h *DatasetHandler) list(c *gin.Context) {
	var ferrs []service.FieldError
	page := queryInt(c, "page", 1, &ferrs)
	pageSize := queryInt(c, "page_size", 0, &ferrs)
	if err := service.NewInvalidInputError(ferrs); err != nil {
		response.WriteError(c, err)
		return
	}

	res, err := h.svc.ListDatasets(c.Request.Context(), page, pageSize)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *DatasetHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	d, err := h.svc.GetDataset(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, d)
}
