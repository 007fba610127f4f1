package recruit

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/garnizeh/recruitd/pkg/models"
	"github.com/garnizeh/recruitd/pkg/repository"
)

// SubmitDecision applies the one-time status transition of an application,
// all inside one transaction:
//
//  1. unknown username           -> CodeInvalidUsername
//  2. caller not a recruiter     -> CodeInvalidRole
//  3. unknown application        -> CodeInvalidApplication
//  4. already decided            -> CodeExistentDecision with the stored decision, no mutation
//  5. bad decision literal       -> CodeInvalidDecision
//  6. otherwise store the decision and the deciding recruiter
//
// The only legal transitions are unhandled -> accepted and unhandled ->
// rejected; both are terminal. The role check duplicates the boundary's gate
// on purpose.
func (s *Service) SubmitDecision(ctx context.Context, username string, applicationID int64, decision models.Decision) (*DecisionResult, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var result *DecisionResult
	err := s.store.WithTx(ctx, func(q repository.Queries) error {
		personID, err := q.PersonIDByUsername(ctx, username)
		if err != nil {
			return err
		}
		if personID == 0 {
			result, err = NewDecisionResult(CodeInvalidUsername, "")
			return err
		}

		role, err := q.RoleByPersonID(ctx, personID)
		if err != nil {
			return err
		}
		if role != models.RoleRecruiter {
			result, err = NewDecisionResult(CodeInvalidRole, "")
			return err
		}

		status, err := q.ApplicationStatusByID(ctx, applicationID)
		if err != nil {
			return err
		}
		if status == nil {
			result, err = NewDecisionResult(CodeInvalidApplication, "")
			return err
		}
		if status.Decision != models.DecisionUnhandled {
			result, err = NewDecisionResult(CodeExistentDecision, status.Decision)
			return err
		}

		if !decision.Valid() || !decision.Terminal() {
			result, err = NewDecisionResult(CodeInvalidDecision, "")
			return err
		}

		if err := q.SetApplicationDecision(ctx, applicationID, decision, personID); err != nil {
			return err
		}
		result, err = NewDecisionResult(CodeOK, decision)
		return err
	})
	if err != nil {
		s.logger.Error("submit decision failed",
			slog.String("username", username),
			slog.Int64("application_id", applicationID),
			slog.Any("err", err),
		)
		return nil, fmt.Errorf("submit decision: %w", err)
	}
	return result, nil
}
