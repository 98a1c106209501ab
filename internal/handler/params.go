package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ski-station-api/internal/middleware"
	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
	"github.com/noah-isme/ski-station-api/pkg/response"
)

// int64Param parses a positive numeric path parameter. On failure it writes a
// 400 response and reports false.
func int64Param(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid %s %q", name, raw)))
		return 0, false
	}
	return id, true
}

func dateParam(c *gin.Context, name string) (models.Date, bool) {
	raw := c.Param(name)
	d, err := models.ParseDate(raw)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid %s %q, expected YYYY-MM-DD", name, raw)))
		return models.Date{}, false
	}
	return d, true
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request payload"))
		return false
	}
	return true
}

func notFound(c *gin.Context, entity string) {
	response.Error(c, appErrors.Clone(appErrors.ErrNotFound, entity+" not found"))
}

// rejection renders a refused registration as a 409 carrying the rejection reason.
func rejection(c *gin.Context, reason models.RejectionReason) {
	switch reason {
	case models.RejectionAlreadyRegistered:
		response.Error(c, appErrors.Clone(appErrors.ErrAlreadyRegistered, "skier is already registered to this course for that week"))
	case models.RejectionCourseFull:
		response.Error(c, appErrors.Clone(appErrors.ErrCourseFull, "course is full for that week"))
	default:
		response.Error(c, appErrors.New(appErrors.ErrConflict.Code, http.StatusConflict, string(reason)))
	}
}

// listMeta merges the collection size into the response metadata gathered for c.
func listMeta(c *gin.Context, total int) map[string]interface{} {
	middleware.SetMeta(c, "total", total)
	return middleware.ExtractMeta(c)
}
