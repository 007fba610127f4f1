package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/recruitd/pkg/models"
)

// ListJobs returns the reference jobs with their competences, both ordered by id.
func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, name FROM job ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Name); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	for i := range jobs {
		comps, err := s.competencesByJob(ctx, jobs[i].ID)
		if err != nil {
			return nil, err
		}
		jobs[i].Competences = comps
	}
	return jobs, nil
}

func (s *Store) competencesByJob(ctx context.Context, jobID int64) ([]models.Competence, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, name FROM competence WHERE job_id = ? ORDER BY id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("query competences: %w", err)
	}
	defer rows.Close()

	var out []models.Competence
	for rows.Next() {
		var c models.Competence
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan competence: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) CompetenceExists(ctx context.Context, competenceID int64) (bool, error) {
	row := s.q.QueryRowContext(ctx, `SELECT COUNT(1) FROM competence WHERE id = ?`, competenceID)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("query competence exists: %w", err)
	}
	return count > 0, nil
}
