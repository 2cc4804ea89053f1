package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/justsurfingit/scrapnalyze/internal/models"
	"gorm.io/gorm"
)

const batchSize = 500

// JobStore reads the listings table. All methods are read-only apart from
// Create, which exists for seeding.
type JobStore struct {
	db *gorm.DB
}

func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{db: db}
}

func (s *JobStore) session(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.JobRecord{})
}

func (s *JobStore) Create(ctx context.Context, job models.Job) (models.Job, error) {
	row := models.NewJobRecord(job)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.Job{}, fmt.Errorf("create job: %w", err)
	}
	return row.ToJob(), nil
}

func (s *JobStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.session(ctx).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}

func (s *JobStore) GetByID(ctx context.Context, id uint) (models.Job, error) {
	var row models.JobRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Job{}, fmt.Errorf("job %d: %w", id, models.ErrJobNotFound)
	}
	if err != nil {
		return models.Job{}, fmt.Errorf("get job %d: %w", id, err)
	}
	return row.ToJob(), nil
}

// ListLatest returns the n most recently inserted jobs, newest first.
func (s *JobStore) ListLatest(ctx context.Context, n int) ([]models.Job, error) {
	if n <= 0 {
		return []models.Job{}, nil
	}
	var rows []models.JobRecord
	if err := s.session(ctx).Order("id DESC").Limit(n).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list latest jobs: %w", err)
	}
	return toJobs(rows), nil
}

// ListFiltered applies the title and location substring filters and sorts by
// the chosen column in byte order. NULLs come last ascending and first
// descending, as Postgres does by default; equal keys keep id order.
func (s *JobStore) ListFiltered(ctx context.Context, f models.JobFilter) ([]models.Job, error) {
	q := s.session(ctx)
	if f.TitleContains != "" {
		q = q.Where(containsClause(models.ColumnTitle), containsPattern(f.TitleContains))
	}
	if f.LocationContains != "" {
		q = q.Where(containsClause(models.ColumnLocation), containsPattern(f.LocationContains))
	}

	col, ok := columnName(f.SortBy)
	if !ok {
		col = string(models.ColumnDatePosted)
	}
	dir := "DESC NULLS FIRST"
	if f.Order == models.SortAsc {
		dir = "ASC NULLS LAST"
	}
	q = q.Order(fmt.Sprintf("%s%s %s", col, s.byteCollation(), dir)).Order("id ASC")

	var rows []models.JobRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return toJobs(rows), nil
}

// ListAll returns every job in id order, reading the table in batches.
func (s *JobStore) ListAll(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	var batch []models.JobRecord
	err := s.db.WithContext(ctx).FindInBatches(&batch, batchSize, func(_ *gorm.DB, _ int) error {
		jobs = append(jobs, toJobs(batch)...)
		return nil
	}).Error
	if err != nil {
		return nil, fmt.Errorf("list all jobs: %w", err)
	}
	return jobs, nil
}

// DistinctValues returns up to limit distinct non-NULL values of column that
// contain substr, ignoring case, in order of first appearance.
func (s *JobStore) DistinctValues(ctx context.Context, column models.Column, substr string, limit int) ([]string, error) {
	col, ok := columnName(column)
	if !ok {
		return nil, fmt.Errorf("unknown column %q", column)
	}
	values := []string{}
	if limit <= 0 {
		return values, nil
	}
	err := s.session(ctx).
		Where(containsClause(column), containsPattern(substr)).
		Group(col).
		Order("MIN(id) ASC").
		Limit(limit).
		Pluck(col, &values).Error
	if err != nil {
		return nil, fmt.Errorf("distinct %s values: %w", col, err)
	}
	return values, nil
}

// CountDistinct counts the distinct values of column, with NULL counted as
// one value of its own when any row has it.
func (s *JobStore) CountDistinct(ctx context.Context, column models.Column) (int64, error) {
	col, ok := columnName(column)
	if !ok {
		return 0, fmt.Errorf("unknown column %q", column)
	}
	var n int64
	expr := fmt.Sprintf("COUNT(DISTINCT %[1]s) + COALESCE(MAX(CASE WHEN %[1]s IS NULL THEN 1 ELSE 0 END), 0)", col)
	if err := s.session(ctx).Select(expr).Scan(&n).Error; err != nil {
		return 0, fmt.Errorf("count distinct %s: %w", col, err)
	}
	return n, nil
}

// byteCollation forces plain byte ordering on Postgres, where the default
// collation is locale aware. SQLite already compares bytes.
func (s *JobStore) byteCollation() string {
	if s.db.Dialector.Name() == "postgres" {
		return ` COLLATE "C"`
	}
	return ""
}

func columnName(c models.Column) (string, bool) {
	switch c {
	case models.ColumnTitle, models.ColumnDatePosted, models.ColumnSalary, models.ColumnLocation:
		return string(c), true
	default:
		return "", false
	}
}

func containsClause(c models.Column) string {
	return fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, c)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user input into a literal, lower-cased LIKE pattern.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func toJobs(rows []models.JobRecord) []models.Job {
	jobs := make([]models.Job, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, r.ToJob())
	}
	return jobs
}
