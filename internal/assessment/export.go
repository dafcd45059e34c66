package assessment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteCSV renders evaluations as the report export consumed by the hiring
// team, one row per applicant, ranked by exam total descending (callers
// pre-sort; this function preserves order).
func WriteCSV(w io.Writer, evals []Evaluation) error {
	cw := csv.NewWriter(w)
	header := []string{"applicant_id", "name", "dni", "exam_total", "question_scores", "ai_front_avg", "ai_back_avg", "combined_ai", "composite", "risk_level"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, ev := range evals {
		scores := make([]string, len(ev.QuestionScores))
		for i, qs := range ev.QuestionScores {
			scores[i] = fmt.Sprintf("%d", qs)
		}
		rec := []string{
			ev.ApplicantID,
			ev.Name,
			ev.DNI,
			fmt.Sprintf("%.1f", ev.ExamTotal),
			strings.Join(scores, " "),
			fmt.Sprintf("%d", ev.AIFrontAvg),
			fmt.Sprintf("%d", ev.AIBackAvg),
			fmt.Sprintf("%d", ev.CombinedAI),
			fmt.Sprintf("%d", ev.Composite),
			string(ev.RiskLevel),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
