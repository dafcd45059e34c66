package assessment

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/clearhire/screening/internal/scoring"
)

// SQLStore persists assessment data in sqlite or postgres. JSON columns hold
// the variable-shape parts (answers, key points, external analysis), in the
// same spirit as the rest of the schema.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

type applicantBlob struct {
	Answers      []string          `json:"answers"`
	TimeSpentSec []int             `json:"time_spent_sec"`
	FrontScores  []int             `json:"front_scores,omitempty"`
	OverallScore float64           `json:"overall_score,omitempty"`
	FinalRisk    scoring.RiskLevel `json:"final_risk,omitempty"`
}

func (s *SQLStore) PutApplicant(a Applicant) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	blob, err := json.Marshal(applicantBlob{
		Answers:      a.Answers,
		TimeSpentSec: a.TimeSpentSec,
		FrontScores:  a.FrontScores,
		OverallScore: a.OverallScore,
		FinalRisk:    a.FinalRisk,
	})
	if err != nil {
		return err
	}
	status := a.Status
	if status == "" {
		status = StatusEnabled
	}
	_, err = s.db.Exec(`INSERT INTO applicants (id,name,dni,test_type,status,disabled_reason,data_json,submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, dni=EXCLUDED.dni, test_type=EXCLUDED.test_type,
			status=EXCLUDED.status, disabled_reason=EXCLUDED.disabled_reason, data_json=EXCLUDED.data_json,
			submitted_at=EXCLUDED.submitted_at`,
		a.ID, a.Name, a.DNI, a.TestType, string(status), a.DisabledReason, string(blob), a.SubmittedAt)
	return err
}

func (s *SQLStore) GetApplicant(id string) (Applicant, error) {
	row := s.db.QueryRow(`SELECT id,name,dni,test_type,status,disabled_reason,data_json,submitted_at
		FROM applicants WHERE id=$1`, id)
	return scanApplicant(row)
}

func (s *SQLStore) GetApplicantByDNI(dni string) (Applicant, error) {
	row := s.db.QueryRow(`SELECT id,name,dni,test_type,status,disabled_reason,data_json,submitted_at
		FROM applicants WHERE dni=$1`, dni)
	return scanApplicant(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanApplicant(row rowScanner) (Applicant, error) {
	var a Applicant
	var status, blobJSON string
	if err := row.Scan(&a.ID, &a.Name, &a.DNI, &a.TestType, &status, &a.DisabledReason, &blobJSON, &a.SubmittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Applicant{}, ErrApplicantNotFound
		}
		return Applicant{}, err
	}
	a.Status = ApplicantStatus(status)
	var blob applicantBlob
	if err := json.Unmarshal([]byte(blobJSON), &blob); err == nil {
		a.Answers = blob.Answers
		a.TimeSpentSec = blob.TimeSpentSec
		a.FrontScores = blob.FrontScores
		a.OverallScore = blob.OverallScore
		a.FinalRisk = blob.FinalRisk
	}
	return a, nil
}

func (s *SQLStore) ListApplicants() ([]Applicant, error) {
	rows, err := s.db.Query(`SELECT id,name,dni,test_type,status,disabled_reason,data_json,submitted_at
		FROM applicants ORDER BY submitted_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Applicant{}
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteApplicant(id string) error {
	res, err := s.db.Exec(`DELETE FROM applicants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrApplicantNotFound
	}
	return nil
}

func (s *SQLStore) PutModelAnswer(m ModelAnswer) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	kp, err := json.Marshal(m.KeyPoints)
	if err != nil {
		return err
	}
	crit, err := json.Marshal(m.ScoringCriteria)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO model_answers (id,test_type,question_order,correct_answer,key_points_json,criteria_json)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (test_type,question_order) DO UPDATE SET correct_answer=EXCLUDED.correct_answer,
			key_points_json=EXCLUDED.key_points_json, criteria_json=EXCLUDED.criteria_json`,
		m.ID, m.TestType, m.QuestionOrder, m.CorrectAnswer, string(kp), string(crit))
	return err
}

func (s *SQLStore) ModelAnswers(testType string) ([]ModelAnswer, error) {
	rows, err := s.db.Query(`SELECT id,test_type,question_order,correct_answer,key_points_json,criteria_json
		FROM model_answers WHERE test_type=$1 ORDER BY question_order`, testType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ModelAnswer{}
	for rows.Next() {
		var m ModelAnswer
		var kpJSON, critJSON string
		if err := rows.Scan(&m.ID, &m.TestType, &m.QuestionOrder, &m.CorrectAnswer, &kpJSON, &critJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(kpJSON), &m.KeyPoints); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(critJSON), &m.ScoringCriteria); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLStore) PutQuestion(q Question) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`INSERT INTO questions (id,test_type,question_order,question_text,category,expected_answer_length)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (test_type,question_order) DO UPDATE SET question_text=EXCLUDED.question_text,
			category=EXCLUDED.category, expected_answer_length=EXCLUDED.expected_answer_length`,
		q.ID, q.TestType, q.Order, q.QuestionText, string(q.Category), q.ExpectedAnswerLength)
	return err
}

func (s *SQLStore) Questions(testType string) ([]Question, error) {
	rows, err := s.db.Query(`SELECT id,test_type,question_order,question_text,category,expected_answer_length
		FROM questions WHERE test_type=$1 ORDER BY question_order`, testType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Question{}
	for rows.Next() {
		var q Question
		var category string
		if err := rows.Scan(&q.ID, &q.TestType, &q.Order, &q.QuestionText, &category, &q.ExpectedAnswerLength); err != nil {
			return nil, err
		}
		q.Category = QuestionCategory(category)
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) PutSettings(cfg scoring.Settings) error {
	blob, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO settings (id,data_json,updated_at) VALUES (1,$1,$2)
		ON CONFLICT (id) DO UPDATE SET data_json=EXCLUDED.data_json, updated_at=EXCLUDED.updated_at`,
		string(blob), time.Now().Unix())
	return err
}

func (s *SQLStore) EnsureSettings(cfg scoring.Settings) error {
	blob, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO settings (id,data_json,updated_at) VALUES (1,$1,$2)
		ON CONFLICT (id) DO NOTHING`,
		string(blob), time.Now().Unix())
	return err
}

func (s *SQLStore) GetSettings() (scoring.Settings, error) {
	row := s.db.QueryRow(`SELECT data_json FROM settings WHERE id=1`)
	var blobJSON string
	if err := row.Scan(&blobJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return scoring.DefaultSettings(), nil
		}
		return scoring.DefaultSettings(), err
	}
	var cfg scoring.Settings
	if err := json.Unmarshal([]byte(blobJSON), &cfg); err != nil {
		return scoring.DefaultSettings(), nil
	}
	return cfg, nil
}
