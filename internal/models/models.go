package models

import "errors"

var ErrJobNotFound = errors.New("job not found")

// Job is the value handed to services and handlers. Columns that are NULL in
// the table come through as empty strings.
type Job struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Salary      string `json:"salary"`
	DatePosted  string `json:"date_posted"`
	Location    string `json:"location"`
	ClosingDate string `json:"closing_date"`
	Link        string `json:"link"`
}

// JobRecord is the gorm row for the listings table filled by the scraper.
// Every text column is nullable.
type JobRecord struct {
	ID          uint    `gorm:"primaryKey"`
	Title       *string `gorm:"type:text"`
	Salary      *string `gorm:"type:text"`
	DatePosted  *string `gorm:"type:text"`
	Location    *string `gorm:"type:text"`
	ClosingDate *string `gorm:"type:text"`
	Link        *string `gorm:"type:text"`
}

func (JobRecord) TableName() string {
	return "myjob"
}

func (r JobRecord) ToJob() Job {
	return Job{
		ID:          r.ID,
		Title:       deref(r.Title),
		Salary:      deref(r.Salary),
		DatePosted:  deref(r.DatePosted),
		Location:    deref(r.Location),
		ClosingDate: deref(r.ClosingDate),
		Link:        deref(r.Link),
	}
}

// NewJobRecord builds a row from a Job. Empty strings are stored as NULL,
// the ID is left for the database to assign.
func NewJobRecord(j Job) JobRecord {
	return JobRecord{
		Title:       nullable(j.Title),
		Salary:      nullable(j.Salary),
		DatePosted:  nullable(j.DatePosted),
		Location:    nullable(j.Location),
		ClosingDate: nullable(j.ClosingDate),
		Link:        nullable(j.Link),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
