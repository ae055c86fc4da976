package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/catalog-pagination/internal/service"
	"github.com/maxviazov/catalog-pagination/pkg/response"
)

const serviceTimeout = 5 * time.Second

type PaginationHandler struct {
	svc service.PaginationService
}

func NewPaginationHandler(svc service.PaginationService) *PaginationHandler {
	return &PaginationHandler{svc: svc}
}

func (h *PaginationHandler) Register(r *gin.RouterGroup) {
	r.GET("/pagination", h.build)
}

// build handles GET /pagination?current_page=&total_pages=&max_visible_pages=.
// current_page defaults to 1, max_visible_pages to the configured width.
func (h *PaginationHandler) build(c *gin.Context) {
	var ferrs []service.FieldError
	current := queryInt(c, "current_page", 1, &ferrs)
	total := queryInt(c, "total_pages", 0, &ferrs)
	maxVisible := queryInt(c, "max_visible_pages", 0, &ferrs)
	if _, ok := c.GetQuery("total_pages"); !ok {
		ferrs = append(ferrs, service.FieldError{Field: "total_pages", Message: "is required"})
	}
	if err := service.NewInvalidInputError(ferrs); err != nil {
		response.WriteError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), serviceTimeout)
	defer cancel()

	links, err := h.svc.Build(ctx, current, total, maxVisible)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, links)
}
