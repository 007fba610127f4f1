package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/garnizeh/recruitd/pkg/models"
)

// PersonIDByUsername maps a login handle to the owning person id. Returns 0
// when no credential matches.
func (s *Store) PersonIDByUsername(ctx context.Context, username string) (int64, error) {
	row := s.q.QueryRowContext(ctx, `SELECT person_id FROM login_info WHERE username = ?`, username)
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("query person by username: %w", err)
	}
	return id, nil
}

// RoleByPersonID returns models.RoleNone when the person does not exist.
func (s *Store) RoleByPersonID(ctx context.Context, personID int64) (models.Role, error) {
	row := s.q.QueryRowContext(ctx, `SELECT role_id FROM person WHERE id = ?`, personID)
	var role models.Role
	if err := row.Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RoleNone, nil
		}
		return models.RoleNone, fmt.Errorf("query person role: %w", err)
	}
	return role, nil
}

func (s *Store) UsernameTaken(ctx context.Context, username string) (bool, error) {
	row := s.q.QueryRowContext(ctx, `SELECT COUNT(1) FROM login_info WHERE username = ?`, username)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("query username taken: %w", err)
	}
	return count > 0, nil
}

func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	row := s.q.QueryRowContext(ctx, `SELECT COUNT(1) FROM login_info WHERE email = ?`, email)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("query email taken: %w", err)
	}
	return count > 0, nil
}

func (s *Store) CreatePerson(ctx context.Context, p *models.Person) (int64, error) {
	if p == nil {
		return 0, errors.New("person is nil")
	}
	row := s.q.QueryRowContext(ctx,
		`INSERT INTO person (first_name, last_name, person_number, role_id) VALUES (?, ?, ?, ?) RETURNING id`,
		p.FirstName, p.LastName, p.PersonNum, int64(p.Role))
	if err := row.Scan(&p.ID); err != nil {
		return 0, fmt.Errorf("insert person: %w", err)
	}
	return p.ID, nil
}

func (s *Store) CreateCredential(ctx context.Context, c *models.Credential) (int64, error) {
	if c == nil {
		return 0, errors.New("credential is nil")
	}
	row := s.q.QueryRowContext(ctx,
		`INSERT INTO login_info (person_id, username, email, password_hash) VALUES (?, ?, ?, ?) RETURNING id`,
		c.PersonID, c.Username, c.Email, c.PasswordHash)
	if err := row.Scan(&c.ID); err != nil {
		return 0, fmt.Errorf("insert credential: %w", err)
	}
	return c.ID, nil
}

// CredentialByUsername returns nil when no credential matches. Used by signin.
func (s *Store) CredentialByUsername(ctx context.Context, username string) (*models.Credential, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT id, person_id, username, email, password_hash FROM login_info WHERE username = ?`, username)
	var c models.Credential
	if err := row.Scan(&c.ID, &c.PersonID, &c.Username, &c.Email, &c.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query credential: %w", err)
	}
	return &c, nil
}
