package assessment

import (
	"errors"
	"sort"
	"sync"

	"github.com/clearhire/screening/internal/scoring"
)

var (
	ErrApplicantNotFound   = errors.New("applicant not found")
	ErrModelAnswerNotFound = errors.New("model answer not found")
)

// Store persists applicants, reference data and settings. Implementations:
// in-memory (tests, dev) and SQL (sqlite/postgres).
type Store interface {
	PutApplicant(a Applicant) error
	GetApplicant(id string) (Applicant, error)
	GetApplicantByDNI(dni string) (Applicant, error)
	ListApplicants() ([]Applicant, error)
	DeleteApplicant(id string) error

	PutModelAnswer(m ModelAnswer) error
	ModelAnswers(testType string) ([]ModelAnswer, error)

	PutQuestion(q Question) error
	Questions(testType string) ([]Question, error)

	// Settings are global and versioned by last write; GetSettings returns
	// the defaults when nothing was stored yet. EnsureSettings writes the
	// given values only when no row exists, for first-start seeding.
	PutSettings(s scoring.Settings) error
	GetSettings() (scoring.Settings, error)
	EnsureSettings(s scoring.Settings) error
}

type memoryStore struct {
	mu         sync.RWMutex
	applicants map[string]Applicant
	models     map[string][]ModelAnswer // by test type
	questions  map[string][]Question    // by test type
	settings   *scoring.Settings
}

func NewInMemoryStore() Store {
	return &memoryStore{
		applicants: map[string]Applicant{},
		models:     map[string][]ModelAnswer{},
		questions:  map[string][]Question{},
	}
}

func (m *memoryStore) PutApplicant(a Applicant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applicants[a.ID] = a
	return nil
}

func (m *memoryStore) GetApplicant(id string) (Applicant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.applicants[id]
	if !ok {
		return Applicant{}, ErrApplicantNotFound
	}
	return a, nil
}

func (m *memoryStore) GetApplicantByDNI(dni string) (Applicant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.applicants {
		if a.DNI == dni {
			return a, nil
		}
	}
	return Applicant{}, ErrApplicantNotFound
}

func (m *memoryStore) ListApplicants() ([]Applicant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Applicant, 0, len(m.applicants))
	for _, a := range m.applicants {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) DeleteApplicant(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.applicants[id]; !ok {
		return ErrApplicantNotFound
	}
	delete(m.applicants, id)
	return nil
}

func (m *memoryStore) PutModelAnswer(ma ModelAnswer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.models[ma.TestType]
	for i, existing := range list {
		if existing.QuestionOrder == ma.QuestionOrder {
			list[i] = ma
			m.models[ma.TestType] = list
			return nil
		}
	}
	m.models[ma.TestType] = append(list, ma)
	return nil
}

func (m *memoryStore) ModelAnswers(testType string) ([]ModelAnswer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := append([]ModelAnswer(nil), m.models[testType]...)
	sort.Slice(list, func(i, j int) bool { return list[i].QuestionOrder < list[j].QuestionOrder })
	return list, nil
}

func (m *memoryStore) PutQuestion(q Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.questions[q.TestType]
	for i, existing := range list {
		if existing.Order == q.Order {
			list[i] = q
			m.questions[q.TestType] = list
			return nil
		}
	}
	m.questions[q.TestType] = append(list, q)
	return nil
}

func (m *memoryStore) Questions(testType string) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := append([]Question(nil), m.questions[testType]...)
	sort.Slice(list, func(i, j int) bool { return list[i].Order < list[j].Order })
	return list, nil
}

func (m *memoryStore) PutSettings(s scoring.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &s
	return nil
}

func (m *memoryStore) GetSettings() (scoring.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return scoring.DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *memoryStore) EnsureSettings(s scoring.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		m.settings = &s
	}
	return nil
}
