package handlers

import (
	"errors"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/scrapnalyze/internal/dtos"
	"github.com/justsurfingit/scrapnalyze/internal/services"
)

// CareerHandler serves the CV tools and the advice page.
type CareerHandler struct {
	TipsService    *services.TipsService
	CVService      *services.CVService
	MatcherService *services.MatcherService
}

func NewCareerHandler(t *services.TipsService, cv *services.CVService, m *services.MatcherService) *CareerHandler {
	return &CareerHandler{
		TipsService:    t,
		CVService:      cv,
		MatcherService: m,
	}
}

// CareerAdvice is GET /career-advice
func (h *CareerHandler) CareerAdvice(c *gin.Context) {
	tips, err := h.TipsService.Load()
	if err != nil {
		internalError(c, "Failed to load career tips", err)
		return
	}
	c.JSON(http.StatusOK, dtos.CareerAdviceResponse{Tips: tips})
}

// GenerateCV is POST /cv-generator
func (h *CareerHandler) GenerateCV(c *gin.Context) {
	var req dtos.CVGenerationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form: " + err.Error()})
		return
	}
	cv, err := h.CVService.Generate(req.Name, req.Skills)
	if errors.Is(err, services.ErrInvalidCVRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		internalError(c, "Failed to generate CV", err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": cv.DownloadName}))
	c.Data(http.StatusOK, services.DocxMediaType, cv.Content)
}

// MatchCV is POST /cv-job-matcher
func (h *CareerHandler) MatchCV(c *gin.Context) {
	var req dtos.CVMatchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form: " + err.Error()})
		return
	}
	result, err := h.MatcherService.MatchJobs(c.Request.Context(), services.ParseSkills(req.Skills))
	if err != nil {
		internalError(c, "Matching failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
