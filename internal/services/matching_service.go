package services

import (
	"context"
	"strings"

	"github.com/justsurfingit/scrapnalyze/internal/models"
)

type MatcherService struct {
	Store JobStore
}

func NewMatcherService(store JobStore) *MatcherService {
	return &MatcherService{Store: store}
}

type MatchResult struct {
	Jobs   []models.Job `json:"matched_jobs"`
	Skills []string     `json:"skills"`
}

// ParseSkills splits the comma separated form value into lower-cased
// keywords. Blank entries are dropped, otherwise a trailing comma would match
// every job.
func ParseSkills(raw string) []string {
	skills := []string{}
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	return skills
}

// MatchJobs scans every job in store order and keeps the ones whose title
// contains one of the skills.
func (s *MatcherService) MatchJobs(ctx context.Context, skills []string) (*MatchResult, error) {
	lowered := make([]string, len(skills))
	for i, skill := range skills {
		lowered[i] = strings.ToLower(skill)
	}

	jobs, err := s.Store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &MatchResult{
		Jobs:   MatchTitles(jobs, lowered),
		Skills: lowered,
	}, nil
}

// MatchTitles keeps jobs whose lower-cased title contains any of the
// already lower-cased skills. Each job is checked against the skills in order
// and added at most once. Input order is preserved.
func MatchTitles(jobs []models.Job, skills []string) []models.Job {
	matched := []models.Job{}
	for _, job := range jobs {
		title := strings.ToLower(job.Title)
		for _, skill := range skills {
			if strings.Contains(title, skill) {
				matched = append(matched, job)
				break
			}
		}
	}
	return matched
}
