package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/scrapnalyze/internal/models"
)

// fakeStore keeps jobs in insertion order. It only implements what the
// services rely on, not the SQL filtering itself.
type fakeStore struct {
	jobs  []models.Job
	err   error
	calls int

	lastFilter   models.JobFilter
	lastColumn   models.Column
	lastSubstr   string
	lastLimit    int
	distinctVals []string
}

func (f *fakeStore) Count(ctx context.Context) (int64, error) {
	f.calls++
	return int64(len(f.jobs)), f.err
}

func (f *fakeStore) GetByID(ctx context.Context, id uint) (models.Job, error) {
	f.calls++
	if f.err != nil {
		return models.Job{}, f.err
	}
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return models.Job{}, fmt.Errorf("job %d: %w", id, models.ErrJobNotFound)
}

func (f *fakeStore) ListLatest(ctx context.Context, n int) ([]models.Job, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Job{}
	for i := len(f.jobs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.jobs[i])
	}
	return out, nil
}

func (f *fakeStore) ListFiltered(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	f.calls++
	f.lastFilter = filter
	return f.jobs, f.err
}

func (f *fakeStore) ListAll(ctx context.Context) ([]models.Job, error) {
	f.calls++
	return f.jobs, f.err
}

func (f *fakeStore) DistinctValues(ctx context.Context, column models.Column, substr string, limit int) ([]string, error) {
	f.calls++
	f.lastColumn, f.lastSubstr, f.lastLimit = column, substr, limit
	return f.distinctVals, f.err
}

func (f *fakeStore) CountDistinct(ctx context.Context, column models.Column) (int64, error) {
	f.calls++
	seen := map[string]bool{}
	for _, j := range f.jobs {
		if j.Location != "" {
			seen[j.Location] = true
		}
	}
	return int64(len(seen)), f.err
}
