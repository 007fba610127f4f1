package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/garnizeh/recruitd/pkg/models"
)

// FindOverlappingApplication looks for an existing application by personID
// for competenceID where any of the person's availability windows overlaps
// [from, to]. Overlap predicate: existing.from_date <= to AND
// existing.to_date >= from. Returns 0 when nothing overlaps.
func (s *Store) FindOverlappingApplication(ctx context.Context, personID, competenceID int64, from, to string) (int64, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT a.id
		FROM application a
		JOIN applicant_availability av ON av.person_id = a.person_id
		WHERE a.person_id = ? AND a.competence_id = ?
		  AND av.from_date <= ? AND av.to_date >= ?
		ORDER BY a.id
		LIMIT 1`, personID, competenceID, to, from)
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("query overlapping application: %w", err)
	}
	return id, nil
}

func (s *Store) CreateApplication(ctx context.Context, a *models.Application) (int64, error) {
	if a == nil {
		return 0, errors.New("application is nil")
	}
	row := s.q.QueryRowContext(ctx,
		`INSERT INTO application (person_id, competence_id, years_of_experience) VALUES (?, ?, ?) RETURNING id`,
		a.PersonID, a.CompetenceID, a.YearsOfExp)
	if err := row.Scan(&a.ID); err != nil {
		return 0, fmt.Errorf("insert application: %w", err)
	}
	return a.ID, nil
}

// CreateApplicationStatus inserts the paired status row: decision unhandled,
// recruiter NULL.
func (s *Store) CreateApplicationStatus(ctx context.Context, applicationID int64) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO application_status (application_id, decision, recruiter_id) VALUES (?, ?, NULL)`,
		applicationID, string(models.DecisionUnhandled))
	if err != nil {
		return fmt.Errorf("insert application status: %w", err)
	}
	return nil
}

func (s *Store) CreateAvailability(ctx context.Context, av *models.Availability) (int64, error) {
	if av == nil {
		return 0, errors.New("availability is nil")
	}
	row := s.q.QueryRowContext(ctx,
		`INSERT INTO applicant_availability (person_id, from_date, to_date) VALUES (?, ?, ?) RETURNING id`,
		av.PersonID, av.FromDate, av.ToDate)
	if err := row.Scan(&av.ID); err != nil {
		return 0, fmt.Errorf("insert availability: %w", err)
	}
	return av.ID, nil
}

// ApplicationStatusByID returns nil when the application has no status row,
// which also covers unknown application ids since the rows are created together.
func (s *Store) ApplicationStatusByID(ctx context.Context, applicationID int64) (*models.ApplicationStatus, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT application_id, decision, recruiter_id FROM application_status WHERE application_id = ?`,
		applicationID)
	var st models.ApplicationStatus
	var recruiter sql.NullInt64
	if err := row.Scan(&st.ApplicationID, &st.Decision, &recruiter); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query application status: %w", err)
	}
	if recruiter.Valid {
		st.RecruiterID = &recruiter.Int64
	}
	return &st, nil
}

func (s *Store) SetApplicationDecision(ctx context.Context, applicationID int64, d models.Decision, recruiterID int64) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE application_status SET decision = ?, recruiter_id = ? WHERE application_id = ?`,
		string(d), recruiterID, applicationID)
	if err != nil {
		return fmt.Errorf("update application decision: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decision rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no status row for application %d", applicationID)
	}
	return nil
}
