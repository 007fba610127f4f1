// Package recruit implements the recruitment workflow core: identity
// resolution, application registration, the filtered application queries and
// the one-time decision workflow. Business outcomes are carried as codes
// inside result values; Go errors are reserved for infrastructure failures.
package recruit

import (
	"fmt"

	"github.com/garnizeh/recruitd/pkg/models"
)

// Code tags the business outcome of an operation.
type Code string

const (
	CodeOK                  Code = "OK"
	CodeInvalidUsername     Code = "INVALID_USERNAME"
	CodeInvalidRole         Code = "INVALID_ROLE"
	CodeInvalidCompetence   Code = "INVALID_COMPETENCE"
	CodeExistentApplication Code = "EXISTENT_APPLICATION"
	CodeInvalidApplication  Code = "INVALID_APPLICATION"
	CodeExistentDecision    Code = "EXISTENT_DECISION"
	CodeInvalidDecision     Code = "INVALID_DECISION"
	CodeInvalidID           Code = "INVALID_ID"
	CodeExistentUsername    Code = "EXISTENT_USERNAME"
	CodeExistentEmail       Code = "EXISTENT_EMAIL"
)

// RegistrationResult is the outcome of RegisterApplication. ApplicationID is
// the new application's id on CodeOK, the already-existing application's id
// on CodeExistentApplication and 0 otherwise.
type RegistrationResult struct {
	ApplicationID int64 `json:"application_id"`
	Code          Code  `json:"code"`
}

// NewRegistrationResult validates the (code, id) pairing so an out-of-domain
// combination can never leave the engine.
func NewRegistrationResult(code Code, applicationID int64) (*RegistrationResult, error) {
	switch code {
	case CodeOK, CodeExistentApplication:
		if applicationID <= 0 {
			return nil, fmt.Errorf("registration result %s requires a positive application id, got %d", code, applicationID)
		}
	case CodeInvalidUsername, CodeInvalidRole, CodeInvalidCompetence:
		if applicationID != 0 {
			return nil, fmt.Errorf("registration result %s requires application id 0, got %d", code, applicationID)
		}
	default:
		return nil, fmt.Errorf("invalid registration result code %q", code)
	}
	return &RegistrationResult{ApplicationID: applicationID, Code: code}, nil
}

// DecisionResult is the outcome of SubmitDecision. Decision carries the
// stored decision on CodeOK and CodeExistentDecision and is empty otherwise.
type DecisionResult struct {
	Decision models.Decision `json:"decision,omitempty"`
	Code     Code            `json:"code"`
}

func NewDecisionResult(code Code, decision models.Decision) (*DecisionResult, error) {
	switch code {
	case CodeOK, CodeExistentDecision:
		if !decision.Terminal() {
			return nil, fmt.Errorf("decision result %s requires a terminal decision, got %q", code, decision)
		}
	case CodeInvalidUsername, CodeInvalidRole, CodeInvalidApplication, CodeInvalidDecision:
		if decision != "" {
			return nil, fmt.Errorf("decision result %s must not carry a decision, got %q", code, decision)
		}
	default:
		return nil, fmt.Errorf("invalid decision result code %q", code)
	}
	return &DecisionResult{Decision: decision, Code: code}, nil
}

// DetailResult wraps a single-application view. Unknown ids yield a zero
// Detail tagged CodeInvalidID, never a nil result, so callers can tell "not
// found" from an infrastructure failure.
type DetailResult struct {
	Detail models.ApplicationDetail `json:"application"`
	Code   Code                     `json:"code"`
}

// SignupResult is the outcome of Signup. PersonID is set on CodeOK only.
type SignupResult struct {
	PersonID int64 `json:"person_id"`
	Code     Code  `json:"code"`
}

func NewSignupResult(code Code, personID int64) (*SignupResult, error) {
	switch code {
	case CodeOK:
		if personID <= 0 {
			return nil, fmt.Errorf("signup result OK requires a positive person id, got %d", personID)
		}
	case CodeExistentUsername, CodeExistentEmail:
		if personID != 0 {
			return nil, fmt.Errorf("signup result %s requires person id 0, got %d", code, personID)
		}
	default:
		return nil, fmt.Errorf("invalid signup result code %q", code)
	}
	return &SignupResult{PersonID: personID, Code: code}, nil
}

// ApplicationPage is one page of the recruiter's filtered listing. Page is
// 1-based; 0 means the whole unpaged result.
type ApplicationPage struct {
	Items []models.ApplicationSummary `json:"items"`
	Page  int                         `json:"page"`
}
