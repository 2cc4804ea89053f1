package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/scrapnalyze/internal/dtos"
	"github.com/justsurfingit/scrapnalyze/internal/models"
	"github.com/justsurfingit/scrapnalyze/internal/services"
)

type JobHandler struct {
	JobService          *services.JobService
	AutocompleteService *services.AutocompleteService
}

func NewJobHandler(j *services.JobService, a *services.AutocompleteService) *JobHandler {
	return &JobHandler{
		JobService:          j,
		AutocompleteService: a,
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Dashboard is GET /dashboard
func (h *JobHandler) Dashboard(c *gin.Context) {
	d, err := h.JobService.Dashboard(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to load dashboard", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// About is GET /about
func (h *JobHandler) About(c *gin.Context) {
	a, err := h.JobService.About(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to load statistics", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListJobs is GET /jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	jobs, err := h.JobService.Search(c.Request.Context(), q.Filter())
	if err != nil {
		internalError(c, "Failed to list jobs", err)
		return
	}
	c.JSON(http.StatusOK, dtos.JobListResponse{
		Jobs:     jobs,
		Q:        q.Q,
		Location: q.Location,
		SortBy:   q.SortBy,
		Order:    q.Order,
	})
}

// GetJob is GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	// ids are bigint in the table, so anything past MaxInt64 cannot exist
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if errors.Is(err, strconv.ErrRange) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}
	job, err := h.JobService.GetJob(c.Request.Context(), uint(id))
	if errors.Is(err, models.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to load job", err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// AutocompleteTitles is GET /jobs/autocomplete
func (h *JobHandler) AutocompleteTitles(c *gin.Context) {
	h.autocomplete(c, models.ColumnTitle)
}

// AutocompleteLocations is GET /jobs/autocomplete/location
func (h *JobHandler) AutocompleteLocations(c *gin.Context) {
	h.autocomplete(c, models.ColumnLocation)
}

func (h *JobHandler) autocomplete(c *gin.Context, column models.Column) {
	var q dtos.AutocompleteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	suggestions, err := h.AutocompleteService.Suggest(c.Request.Context(), column, q.Q)
	if err != nil {
		internalError(c, "Autocomplete failed", err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

func internalError(c *gin.Context, msg string, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg + ": " + err.Error()})
}
