package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/garnizeh/recruitd/pkg/models"
	"github.com/garnizeh/recruitd/pkg/repository"
)

// filterClauses builds the shared FROM/WHERE of the filtered application
// query. Only persons with the applicant role are eligible. The availability
// join picks one window per application via a correlated subquery so that an
// applicant with several windows never multiplies listing rows; when a date
// bound excludes every window the join drops the application, which is the
// filter semantics.
func filterClauses(f repository.Filter) (string, []any) {
	avWhere := []string{"av2.person_id = a.person_id"}
	var avArgs []any
	if from, ok := f.From.Get(); ok {
		avWhere = append(avWhere, "av2.from_date >= ?")
		avArgs = append(avArgs, from)
	}
	if to, ok := f.To.Get(); ok {
		avWhere = append(avWhere, "av2.to_date <= ?")
		avArgs = append(avArgs, to)
	}

	where := []string{"p.role_id = ?"}
	args := append(avArgs, int64(models.RoleApplicant))
	if name, ok := f.Name.Get(); ok {
		where = append(where, "(p.first_name = ? OR p.last_name = ?)")
		args = append(args, name, name)
	}
	if cid, ok := f.CompetenceID.Get(); ok {
		where = append(where, "a.competence_id = ?")
		args = append(args, cid)
	}

	clause := `
		FROM application a
		JOIN person p ON p.id = a.person_id
		JOIN competence c ON c.id = a.competence_id
		JOIN application_status s ON s.application_id = a.id
		JOIN applicant_availability av ON av.id = (
			SELECT MIN(av2.id) FROM applicant_availability av2 WHERE ` + strings.Join(avWhere, " AND ") + `
		)
		WHERE ` + strings.Join(where, " AND ")
	return clause, args
}

// ListApplications returns filtered summaries ordered by ascending
// application id. limit <= 0 disables paging.
func (s *Store) ListApplications(ctx context.Context, f repository.Filter, limit, offset int) ([]models.ApplicationSummary, error) {
	clause, args := filterClauses(f)
	query := `SELECT a.id, p.first_name, p.last_name, c.name, a.years_of_experience, av.from_date, av.to_date, s.decision` +
		clause + ` ORDER BY a.id ASC`
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	out := []models.ApplicationSummary{}
	for rows.Next() {
		var a models.ApplicationSummary
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Competence, &a.YearsOfExp, &a.FromDate, &a.ToDate, &a.Decision); err != nil {
			return nil, fmt.Errorf("scan application summary: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return out, nil
}

func (s *Store) CountApplications(ctx context.Context, f repository.Filter) (int64, error) {
	clause, args := filterClauses(f)
	row := s.q.QueryRowContext(ctx, `SELECT COUNT(a.id)`+clause, args...)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return count, nil
}

// GetApplicationDetail returns nil when no application matches id.
func (s *Store) GetApplicationDetail(ctx context.Context, id int64) (*models.ApplicationDetail, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT a.id, p.first_name, p.last_name, p.person_number, c.name, a.years_of_experience,
		       av.from_date, av.to_date, s.decision, s.recruiter_id
		FROM application a
		JOIN person p ON p.id = a.person_id
		JOIN competence c ON c.id = a.competence_id
		JOIN application_status s ON s.application_id = a.id
		JOIN applicant_availability av ON av.id = (
			SELECT MIN(av2.id) FROM applicant_availability av2 WHERE av2.person_id = a.person_id
		)
		WHERE a.id = ?`, id)
	var d models.ApplicationDetail
	var recruiter sql.NullInt64
	if err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &d.PersonNum, &d.Competence, &d.YearsOfExp,
		&d.FromDate, &d.ToDate, &d.Decision, &recruiter); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query application detail: %w", err)
	}
	if recruiter.Valid {
		d.RecruiterID = &recruiter.Int64
	}
	return &d, nil
}
