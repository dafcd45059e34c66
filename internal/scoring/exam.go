package scoring

import "math"

const examMaxPoints = 20.0

// ExamTotal converts an ordered answer set into a proportional 0-20 exam
// grade, rounded to one decimal. Each question carries the same weight
// regardless of question count; questions without a model answer contribute
// zero rather than erroring. Models are keyed by question order (1-based).
func ExamTotal(answers []string, models map[int]*ModelAnswer) float64 {
	n := len(answers)
	if n == 0 {
		return 0
	}
	pointsPerQuestion := examMaxPoints / float64(n)
	total := 0.0
	for i, answer := range answers {
		model := models[i+1]
		if model == nil {
			continue
		}
		score := ScoreQuestion(answer, model)
		total += float64(score) / 10 * pointsPerQuestion
	}
	return round1(clamp(total, 0, examMaxPoints))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
