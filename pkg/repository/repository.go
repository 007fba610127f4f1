package repository

import (
	"context"

	"github.com/garnizeh/recruitd/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// Opt is an explicitly tagged optional value, used by query filters instead
// of in-band sentinels (-1, empty string, magic dates).
type Opt[T any] struct {
	val T
	ok  bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{val: v, ok: true}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) {
	return o.val, o.ok
}

// Set reports whether the option holds a value.
func (o Opt[T]) Set() bool {
	return o.ok
}

// Filter restricts the application listing. Every predicate is independently
// optional. Name matches first OR last name by case-sensitive equality.
// From and To are ISO YYYY-MM-DD availability bounds.
type Filter struct {
	Name         Opt[string]
	CompetenceID Opt[int64]
	From         Opt[string]
	To           Opt[string]
}

type IdentityRepo interface {
	// PersonIDByUsername returns the person id owning the credential with
	// the given username, or 0 when no credential matches.
	PersonIDByUsername(ctx context.Context, username string) (int64, error)
	// RoleByPersonID returns the person's role, or models.RoleNone when the
	// person does not exist.
	RoleByPersonID(ctx context.Context, personID int64) (models.Role, error)
}

type CredentialRepo interface {
	// CredentialByUsername returns nil when no credential matches.
	CredentialByUsername(ctx context.Context, username string) (*models.Credential, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	CreatePerson(ctx context.Context, p *models.Person) (int64, error)
	CreateCredential(ctx context.Context, c *models.Credential) (int64, error)
}

type JobRepo interface {
	// ListJobs returns the reference jobs with their competences ordered by id.
	ListJobs(ctx context.Context) ([]models.Job, error)
	CompetenceExists(ctx context.Context, competenceID int64) (bool, error)
}

type ApplicationRepo interface {
	// FindOverlappingApplication returns the id of an existing application by
	// personID for competenceID whose availability window overlaps [from, to],
	// or 0 when there is none.
	FindOverlappingApplication(ctx context.Context, personID, competenceID int64, from, to string) (int64, error)
	CreateApplication(ctx context.Context, a *models.Application) (int64, error)
	// CreateApplicationStatus inserts the paired status row with decision
	// unhandled and no recruiter.
	CreateApplicationStatus(ctx context.Context, applicationID int64) error
	CreateAvailability(ctx context.Context, av *models.Availability) (int64, error)

	// ListApplications returns filtered summaries in ascending application id
	// order. limit <= 0 disables paging.
	ListApplications(ctx context.Context, f Filter, limit, offset int) ([]models.ApplicationSummary, error)
	CountApplications(ctx context.Context, f Filter) (int64, error)
	// GetApplicationDetail returns nil when no application matches id.
	GetApplicationDetail(ctx context.Context, id int64) (*models.ApplicationDetail, error)

	// ApplicationStatusByID returns nil when the application has no status row.
	ApplicationStatusByID(ctx context.Context, applicationID int64) (*models.ApplicationStatus, error)
	SetApplicationDecision(ctx context.Context, applicationID int64, d models.Decision, recruiterID int64) error
}

// Queries bundles every repository contract bound to one handle, either the
// shared connection or a single transaction.
type Queries interface {
	IdentityRepo
	CredentialRepo
	JobRepo
	ApplicationRepo
}

// Store is the process-wide storage entry point. WithTx runs fn against a
// transaction-bound Queries, committing when fn returns nil and rolling back
// otherwise.
type Store interface {
	Queries
	WithTx(ctx context.Context, fn func(q Queries) error) error
}
