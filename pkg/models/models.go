package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Role is a person's role in the recruitment workflow.
type Role int64

const (
	RoleNone      Role = 0
	RoleApplicant Role = 1
	RoleRecruiter Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleApplicant:
		return "applicant"
	case RoleRecruiter:
		return "recruiter"
	default:
		return "none"
	}
}

// ParseRole maps a role name to a Role. Unknown names map to RoleNone.
func ParseRole(s string) Role {
	switch s {
	case "applicant":
		return RoleApplicant
	case "recruiter":
		return RoleRecruiter
	default:
		return RoleNone
	}
}

// Decision is the state of an application's status record.
type Decision string

const (
	DecisionUnhandled Decision = "unhandled"
	DecisionAccepted  Decision = "accepted"
	DecisionRejected  Decision = "rejected"
)

// Valid reports whether d is one of the three known decision literals.
func (d Decision) Valid() bool {
	return d == DecisionUnhandled || d == DecisionAccepted || d == DecisionRejected
}

// Terminal reports whether d allows no further transitions.
func (d Decision) Terminal() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

type Person struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	PersonNum string `json:"person_number" db:"person_number"`
	Role      Role   `json:"role" db:"role_id"`
}

type Credential struct {
	ID           int64  `json:"id" db:"id"`
	PersonID     int64  `json:"person_id" db:"person_id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Competence struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Job struct {
	ID          int64        `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Competences []Competence `json:"competences"`
}

type Application struct {
	ID           int64 `json:"id" db:"id"`
	PersonID     int64 `json:"person_id" db:"person_id"`
	CompetenceID int64 `json:"competence_id" db:"competence_id"`
	YearsOfExp   int64 `json:"years_of_experience" db:"years_of_experience"`
}

// ApplicationStatus is the one-to-one decision record of an application.
// RecruiterID stays nil until a recruiter decides.
type ApplicationStatus struct {
	ApplicationID int64    `json:"application_id" db:"application_id"`
	Decision      Decision `json:"decision" db:"decision"`
	RecruiterID   *int64   `json:"recruiter_id,omitempty" db:"recruiter_id"`
}

// Availability is an applicant's declared work window. Dates are ISO
// YYYY-MM-DD strings; lexicographic order equals chronological order.
type Availability struct {
	ID       int64  `json:"id" db:"id"`
	PersonID int64  `json:"person_id" db:"person_id"`
	FromDate string `json:"from_date" db:"from_date"`
	ToDate   string `json:"to_date" db:"to_date"`
}

// ApplicationSummary is one row of the recruiter's filtered listing.
type ApplicationSummary struct {
	ID         int64    `json:"id"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Competence string   `json:"competence"`
	YearsOfExp int64    `json:"years_of_experience"`
	FromDate   string   `json:"from_date"`
	ToDate     string   `json:"to_date"`
	Decision   Decision `json:"decision"`
}

// ApplicationDetail is the joined single-application view.
type ApplicationDetail struct {
	ID          int64    `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	PersonNum   string   `json:"person_number"`
	Competence  string   `json:"competence"`
	YearsOfExp  int64    `json:"years_of_experience"`
	FromDate    string   `json:"from_date"`
	ToDate      string   `json:"to_date"`
	Decision    Decision `json:"decision"`
	RecruiterID *int64   `json:"recruiter_id,omitempty"`
}
