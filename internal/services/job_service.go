package services

import (
	"context"

	"github.com/justsurfingit/scrapnalyze/internal/models"
)

const latestJobsOnDashboard = 5

// JobStore is the read side of the listings table.
type JobStore interface {
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint) (models.Job, error)
	ListLatest(ctx context.Context, n int) ([]models.Job, error)
	ListFiltered(ctx context.Context, f models.JobFilter) ([]models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	DistinctValues(ctx context.Context, column models.Column, substr string, limit int) ([]string, error)
	CountDistinct(ctx context.Context, column models.Column) (int64, error)
}

type JobService struct {
	Store JobStore
}

func NewJobService(store JobStore) *JobService {
	return &JobService{
		Store: store,
	}
}

type Dashboard struct {
	JobCount   int64        `json:"job_count"`
	LatestJobs []models.Job `json:"latest_jobs"`
}

type About struct {
	TotalJobs       int64 `json:"total_jobs"`
	UniqueLocations int64 `json:"unique_locations"`
}

func (s *JobService) Dashboard(ctx context.Context) (*Dashboard, error) {
	count, err := s.Store.Count(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := s.Store.ListLatest(ctx, latestJobsOnDashboard)
	if err != nil {
		return nil, err
	}
	return &Dashboard{JobCount: count, LatestJobs: latest}, nil
}

func (s *JobService) About(ctx context.Context) (*About, error) {
	total, err := s.Store.Count(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.Store.CountDistinct(ctx, models.ColumnLocation)
	if err != nil {
		return nil, err
	}
	return &About{TotalJobs: total, UniqueLocations: locations}, nil
}

// GetJob returns models.ErrJobNotFound (wrapped) when there is no such id.
func (s *JobService) GetJob(ctx context.Context, id uint) (models.Job, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *JobService) Search(ctx context.Context, f models.JobFilter) ([]models.Job, error) {
	return s.Store.ListFiltered(ctx, f)
}
