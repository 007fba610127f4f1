package recruit

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/garnizeh/recruitd/pkg/models"
	"github.com/garnizeh/recruitd/pkg/repository"
)

// Signup creates a person with the applicant role plus its credential. The
// username and email uniqueness checks and the two inserts share one
// transaction, so the check-then-insert sequence cannot be interleaved with
// a competing signup. passwordHash is the already-derived digest; the core
// never sees plaintext passwords.
func (s *Service) Signup(ctx context.Context, firstName, lastName, personNum, username, email, passwordHash string) (*SignupResult, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var result *SignupResult
	err := s.store.WithTx(ctx, func(q repository.Queries) error {
		taken, err := q.UsernameTaken(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			result, err = NewSignupResult(CodeExistentUsername, 0)
			return err
		}

		taken, err = q.EmailTaken(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			result, err = NewSignupResult(CodeExistentEmail, 0)
			return err
		}

		person := models.Person{FirstName: firstName, LastName: lastName, PersonNum: personNum, Role: models.RoleApplicant}
		personID, err := q.CreatePerson(ctx, &person)
		if err != nil {
			return err
		}
		cred := models.Credential{PersonID: personID, Username: username, Email: email, PasswordHash: passwordHash}
		if _, err := q.CreateCredential(ctx, &cred); err != nil {
			return err
		}

		result, err = NewSignupResult(CodeOK, personID)
		return err
	})
	if err != nil {
		s.logger.Error("signup failed", slog.String("username", username), slog.Any("err", err))
		return nil, fmt.Errorf("signup: %w", err)
	}
	return result, nil
}

// Credential returns the stored credential for username, or nil when none
// exists. Used by signin for digest comparison.
func (s *Service) Credential(ctx context.Context, username string) (*models.Credential, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cred, err := s.store.CredentialByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("credential: %w", err)
	}
	return cred, nil
}

// RoleOf resolves the role of the person owning username. Returns
// models.RoleNone when the username is unknown.
func (s *Service) RoleOf(ctx context.Context, username string) (models.Role, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	personID, err := s.store.PersonIDByUsername(ctx, username)
	if err != nil {
		return models.RoleNone, fmt.Errorf("resolve username: %w", err)
	}
	if personID == 0 {
		return models.RoleNone, nil
	}
	role, err := s.store.RoleByPersonID(ctx, personID)
	if err != nil {
		return models.RoleNone, fmt.Errorf("resolve role: %w", err)
	}
	return role, nil
}
