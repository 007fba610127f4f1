package recruit

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/garnizeh/recruitd/pkg/models"
	"github.com/garnizeh/recruitd/pkg/repository"
)

// RegisterApplication validates and inserts a new application for username,
// all inside one transaction:
//
//  1. unknown username            -> CodeInvalidUsername
//  2. role other than applicant   -> CodeInvalidRole
//  3. unknown competence          -> CodeInvalidCompetence
//  4. overlapping prior window    -> CodeExistentApplication with the old id
//  5. otherwise insert application + unhandled status + availability window
//
// from and to are ISO YYYY-MM-DD dates, validated by the caller. A returned
// error means an infrastructure failure; the transaction has been rolled back
// and no result is produced.
func (s *Service) RegisterApplication(ctx context.Context, username string, competenceID, yearsOfExp int64, from, to string) (*RegistrationResult, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var result *RegistrationResult
	err := s.store.WithTx(ctx, func(q repository.Queries) error {
		personID, err := q.PersonIDByUsername(ctx, username)
		if err != nil {
			return err
		}
		if personID == 0 {
			result, err = NewRegistrationResult(CodeInvalidUsername, 0)
			return err
		}

		role, err := q.RoleByPersonID(ctx, personID)
		if err != nil {
			return err
		}
		if role != models.RoleApplicant {
			result, err = NewRegistrationResult(CodeInvalidRole, 0)
			return err
		}

		// Competence invalidity takes precedence over duplicate detection.
		known, err := q.CompetenceExists(ctx, competenceID)
		if err != nil {
			return err
		}
		if !known {
			result, err = NewRegistrationResult(CodeInvalidCompetence, 0)
			return err
		}

		existing, err := q.FindOverlappingApplication(ctx, personID, competenceID, from, to)
		if err != nil {
			return err
		}
		if existing != 0 {
			result, err = NewRegistrationResult(CodeExistentApplication, existing)
			return err
		}

		app := models.Application{PersonID: personID, CompetenceID: competenceID, YearsOfExp: yearsOfExp}
		appID, err := q.CreateApplication(ctx, &app)
		if err != nil {
			return err
		}
		if err := q.CreateApplicationStatus(ctx, appID); err != nil {
			return err
		}
		if _, err := q.CreateAvailability(ctx, &models.Availability{PersonID: personID, FromDate: from, ToDate: to}); err != nil {
			return err
		}

		result, err = NewRegistrationResult(CodeOK, appID)
		return err
	})
	if err != nil {
		s.logger.Error("register application failed",
			slog.String("username", username),
			slog.Any("err", err),
		)
		return nil, fmt.Errorf("register application: %w", err)
	}
	return result, nil
}
