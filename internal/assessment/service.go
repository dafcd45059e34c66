package assessment

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/clearhire/screening/internal/scoring"
)

// Service runs the scoring engine over stored records. Settings are loaded
// per call and threaded explicitly into the aggregation; the service keeps
// no scoring state of its own.
type Service struct {
	store     Store
	estimator scoring.Estimator
	strategy  scoring.Strategy
	log       *zap.Logger
}

type Option func(*Service)

// WithEstimator swaps the humanness estimator, e.g. for a real classifier.
func WithEstimator(e scoring.Estimator) Option { return func(s *Service) { s.estimator = e } }

// WithStrategy selects the composite aggregation strategy.
func WithStrategy(st scoring.Strategy) Option { return func(s *Service) { s.strategy = st } }

func NewService(store Store, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		store:     store,
		estimator: scoring.PatternEstimator{},
		strategy:  scoring.SimpleAverage{},
		log:       log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Evaluate scores one applicant: per-question scores, exam total, AI signal
// averages, composite and risk level.
func (s *Service) Evaluate(ctx context.Context, applicantID string) (Evaluation, error) {
	a, err := s.store.GetApplicant(applicantID)
	if err != nil {
		return Evaluation{}, err
	}
	return s.evaluate(ctx, a)
}

// EvaluateAll scores every stored applicant. Individual records never fail
// evaluation; store errors abort.
func (s *Service) EvaluateAll(ctx context.Context) ([]Evaluation, error) {
	applicants, err := s.store.ListApplicants()
	if err != nil {
		return nil, err
	}
	out := make([]Evaluation, 0, len(applicants))
	for _, a := range applicants {
		ev, err := s.evaluate(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func (s *Service) evaluate(_ context.Context, a Applicant) (Evaluation, error) {
	models, err := s.store.ModelAnswers(a.TestType)
	if err != nil {
		return Evaluation{}, err
	}
	byOrder := make(map[int]*scoring.ModelAnswer, len(models))
	for _, m := range models {
		byOrder[m.QuestionOrder] = m.engineView()
	}

	questionScores := make([]int, len(a.Answers))
	autoSum := 0
	for i, answer := range a.Answers {
		questionScores[i] = scoring.ScoreQuestion(answer, byOrder[i+1])
		autoSum += questionScores[i]
	}
	autoAvg := 0.0
	if len(questionScores) > 0 {
		autoAvg = float64(autoSum) / float64(len(questionScores))
	}

	total := scoring.ExamTotal(a.Answers, byOrder)
	combined := scoring.CombineAnswers(a.Answers, a.FrontScores, s.estimator)

	settings, err := s.store.GetSettings()
	if err != nil {
		// Scoring never blocks on settings.
		settings = scoring.DefaultSettings()
	}
	composite := s.strategy.Composite(autoAvg, combined.Back, combined.Front, settings)
	risk := scoring.ResolveRisk(a.FinalRisk, scoring.ClassifyCombined(combined.Combined))

	s.log.Debug("applicant evaluated",
		zap.String("applicant_id", a.ID),
		zap.Float64("exam_total", total),
		zap.Int("combined_ai", combined.Combined),
		zap.String("risk", string(risk)),
	)

	return Evaluation{
		ApplicantID:    a.ID,
		Name:           a.Name,
		DNI:            a.DNI,
		QuestionScores: questionScores,
		ExamTotal:      total,
		AIFrontAvg:     combined.Front,
		AIBackAvg:      combined.Back,
		CombinedAI:     combined.Combined,
		Composite:      composite,
		RiskLevel:      risk,
		OverallLabel:   scoring.ClassifyOverall(a.OverallScore),
	}, nil
}

// ValidateLogin decides whether an applicant may start the assessment.
// Records without a status are enabled (legacy data).
func (s *Service) ValidateLogin(_ context.Context, dni string) (bool, string) {
	a, err := s.store.GetApplicantByDNI(dni)
	if err != nil {
		return false, "applicant not found"
	}
	if a.Status == StatusDisabled {
		reason := a.DisabledReason
		if reason == "" {
			reason = "access disabled"
		}
		return false, reason
	}
	return true, ""
}

// SuspicionSignals summarizes the supplemental per-answer analysis: text
// metrics, typing-speed suspicion and stylistic AI markers.
type SuspicionSignals struct {
	Metrics     []scoring.TextMetrics `json:"metrics"`
	SpeedScores []int                 `json:"speed_scores"`
	Indicators  [][]string            `json:"indicators"`
	SpeedAvg    int                   `json:"speed_avg"`
}

// Analyze computes the supplemental suspicion signals for one applicant.
func (s *Service) Analyze(_ context.Context, applicantID string) (SuspicionSignals, error) {
	a, err := s.store.GetApplicant(applicantID)
	if err != nil {
		return SuspicionSignals{}, err
	}
	sig := SuspicionSignals{
		Metrics:     make([]scoring.TextMetrics, len(a.Answers)),
		SpeedScores: make([]int, len(a.Answers)),
		Indicators:  make([][]string, len(a.Answers)),
	}
	speedSum := 0
	for i, answer := range a.Answers {
		m := scoring.AnalyzeText(answer)
		sig.Metrics[i] = m
		spent := 0
		if i < len(a.TimeSpentSec) {
			spent = a.TimeSpentSec[i]
		}
		sig.SpeedScores[i] = scoring.TypingSpeedScore(spent, m.WordCount)
		speedSum += sig.SpeedScores[i]
		sig.Indicators[i] = scoring.PatternIndicators(answer)
	}
	if n := len(a.Answers); n > 0 {
		sig.SpeedAvg = int(math.Round(float64(speedSum) / float64(n)))
	}
	return sig, nil
}
