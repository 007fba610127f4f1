// Package mock provides an in-memory repository.Store for handler and
// service tests.
package mock

import (
	"context"
	"sort"

	"github.com/garnizeh/recruitd/pkg/models"
	"github.com/garnizeh/recruitd/pkg/repository"
)

// Store keeps every entity in memory. Set Err to make all storage calls fail,
// simulating an unreachable database.
type Store struct {
	Err error

	Persons        map[int64]*models.Person
	Credentials    map[string]*models.Credential // by username
	Competences    map[int64]string
	Jobs           []models.Job
	Applications   map[int64]*models.Application
	Statuses       map[int64]*models.ApplicationStatus
	Availabilities []*models.Availability

	nextID int64
}

var _ repository.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		Persons:      map[int64]*models.Person{},
		Credentials:  map[string]*models.Credential{},
		Competences:  map[int64]string{},
		Applications: map[int64]*models.Application{},
		Statuses:     map[int64]*models.ApplicationStatus{},
	}
}

// AddPerson registers a person with a credential and returns the person id.
func (m *Store) AddPerson(firstName, lastName, personNum, username, email, passwordHash string, role models.Role) int64 {
	id := m.id()
	m.Persons[id] = &models.Person{ID: id, FirstName: firstName, LastName: lastName, PersonNum: personNum, Role: role}
	m.Credentials[username] = &models.Credential{ID: m.id(), PersonID: id, Username: username, Email: email, PasswordHash: passwordHash}
	return id
}

func (m *Store) id() int64 {
	m.nextID++
	return m.nextID
}

// WithTx runs fn against the same store. The mock does not emulate rollback;
// tests asserting rollback behavior use the sqlite store.
func (m *Store) WithTx(ctx context.Context, fn func(q repository.Queries) error) error {
	if m.Err != nil {
		return m.Err
	}
	return fn(m)
}

func (m *Store) PersonIDByUsername(ctx context.Context, username string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if c, ok := m.Credentials[username]; ok {
		return c.PersonID, nil
	}
	return 0, nil
}

func (m *Store) RoleByPersonID(ctx context.Context, personID int64) (models.Role, error) {
	if m.Err != nil {
		return models.RoleNone, m.Err
	}
	if p, ok := m.Persons[personID]; ok {
		return p.Role, nil
	}
	return models.RoleNone, nil
}

func (m *Store) CredentialByUsername(ctx context.Context, username string) (*models.Credential, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Credentials[username], nil
}

func (m *Store) UsernameTaken(ctx context.Context, username string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.Credentials[username]
	return ok, nil
}

func (m *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, c := range m.Credentials {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *Store) CreatePerson(ctx context.Context, p *models.Person) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	p.ID = m.id()
	m.Persons[p.ID] = p
	return p.ID, nil
}

func (m *Store) CreateCredential(ctx context.Context, c *models.Credential) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	c.ID = m.id()
	m.Credentials[c.Username] = c
	return c.ID, nil
}

func (m *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Jobs, nil
}

func (m *Store) CompetenceExists(ctx context.Context, competenceID int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.Competences[competenceID]
	return ok, nil
}

func (m *Store) FindOverlappingApplication(ctx context.Context, personID, competenceID int64, from, to string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var ids []int64
	for id, a := range m.Applications {
		if a.PersonID != personID || a.CompetenceID != competenceID {
			continue
		}
		for _, av := range m.Availabilities {
			if av.PersonID == personID && av.FromDate <= to && av.ToDate >= from {
				ids = append(ids, id)
				break
			}
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids[0], nil
}

func (m *Store) CreateApplication(ctx context.Context, a *models.Application) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	a.ID = m.id()
	m.Applications[a.ID] = a
	return a.ID, nil
}

func (m *Store) CreateApplicationStatus(ctx context.Context, applicationID int64) error {
	if m.Err != nil {
		return m.Err
	}
	m.Statuses[applicationID] = &models.ApplicationStatus{ApplicationID: applicationID, Decision: models.DecisionUnhandled}
	return nil
}

func (m *Store) CreateAvailability(ctx context.Context, av *models.Availability) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	av.ID = m.id()
	m.Availabilities = append(m.Availabilities, av)
	return av.ID, nil
}

func (m *Store) ListApplications(ctx context.Context, f repository.Filter, limit, offset int) ([]models.ApplicationSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	all := m.summaries(f)
	if limit <= 0 {
		return all, nil
	}
	if offset >= len(all) {
		return []models.ApplicationSummary{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *Store) CountApplications(ctx context.Context, f repository.Filter) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.summaries(f))), nil
}

func (m *Store) summaries(f repository.Filter) []models.ApplicationSummary {
	var out []models.ApplicationSummary
	for id, a := range m.Applications {
		p := m.Persons[a.PersonID]
		if p == nil || p.Role != models.RoleApplicant {
			continue
		}
		if name, ok := f.Name.Get(); ok && p.FirstName != name && p.LastName != name {
			continue
		}
		if cid, ok := f.CompetenceID.Get(); ok && a.CompetenceID != cid {
			continue
		}
		av := m.availabilityFor(a.PersonID, f)
		if av == nil {
			continue
		}
		st := m.Statuses[id]
		decision := models.DecisionUnhandled
		if st != nil {
			decision = st.Decision
		}
		out = append(out, models.ApplicationSummary{
			ID:         id,
			FirstName:  p.FirstName,
			LastName:   p.LastName,
			Competence: m.Competences[a.CompetenceID],
			YearsOfExp: a.YearsOfExp,
			FromDate:   av.FromDate,
			ToDate:     av.ToDate,
			Decision:   decision,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *Store) availabilityFor(personID int64, f repository.Filter) *models.Availability {
	for _, av := range m.Availabilities {
		if av.PersonID != personID {
			continue
		}
		if from, ok := f.From.Get(); ok && av.FromDate < from {
			continue
		}
		if to, ok := f.To.Get(); ok && av.ToDate > to {
			continue
		}
		return av
	}
	return nil
}

func (m *Store) GetApplicationDetail(ctx context.Context, id int64) (*models.ApplicationDetail, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.Applications[id]
	if !ok {
		return nil, nil
	}
	p := m.Persons[a.PersonID]
	av := m.availabilityFor(a.PersonID, repository.Filter{})
	st := m.Statuses[id]
	d := &models.ApplicationDetail{
		ID:         id,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		PersonNum:  p.PersonNum,
		Competence: m.Competences[a.CompetenceID],
		YearsOfExp: a.YearsOfExp,
	}
	if av != nil {
		d.FromDate = av.FromDate
		d.ToDate = av.ToDate
	}
	if st != nil {
		d.Decision = st.Decision
		d.RecruiterID = st.RecruiterID
	}
	return d, nil
}

func (m *Store) ApplicationStatusByID(ctx context.Context, applicationID int64) (*models.ApplicationStatus, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Statuses[applicationID], nil
}

func (m *Store) SetApplicationDecision(ctx context.Context, applicationID int64, d models.Decision, recruiterID int64) error {
	if m.Err != nil {
		return m.Err
	}
	st, ok := m.Statuses[applicationID]
	if !ok {
		return nil
	}
	st.Decision = d
	st.RecruiterID = &recruiterID
	return nil
}
