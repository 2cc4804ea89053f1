package dtos

import (
	"github.com/justsurfingit/scrapnalyze/internal/models"
	"github.com/justsurfingit/scrapnalyze/internal/services"
)

type JobListQuery struct {
	Q        string `form:"q"`
	Location string `form:"location"`
	SortBy   string `form:"sort_by,default=date_posted"`
	Order    string `form:"order,default=desc"`
}

func (q JobListQuery) Filter() models.JobFilter {
	return models.NewJobFilter(q.Q, q.Location, q.SortBy, q.Order)
}

// JobListResponse echoes the raw parameters so a client can redraw its
// search form, even when sort_by was not recognised.
type JobListResponse struct {
	Jobs     []models.Job `json:"jobs"`
	Q        string       `json:"q"`
	Location string       `json:"location"`
	SortBy   string       `json:"sort_by"`
	Order    string       `json:"order"`
}

type AutocompleteQuery struct {
	Q string `form:"q"`
}

type CVGenerationRequest struct {
	Name   string `form:"name" binding:"required"`
	Skills string `form:"skills" binding:"required"`
}

type CVMatchRequest struct {
	Skills string `form:"skills" binding:"required"`
}

type CareerAdviceResponse struct {
	Tips []services.Tip `json:"tips"`
}
