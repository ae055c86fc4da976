package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/catalog-pagination/internal/service"
)

// queryInt reads an integer query parameter. Absent or blank values yield def;
// anything unparsable is appended to ferrs.
func queryInt(c *gin.Context, name string, def int, ferrs *[]service.FieldError) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*ferrs = append(*ferrs, service.FieldError{Field: name, Message: "must be a valid integer"})
		return def
	}
	return v
}
