package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/clearhire/screening/internal/assessment"
)

// POST /tests/{testType}/model-answers
func UpsertModelAnswerHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testType := strings.TrimSpace(chi.URLParam(r, "testType"))
		if testType == "" {
			http.Error(w, "testType required", http.StatusBadRequest)
			return
		}
		var m assessment.ModelAnswer
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		m.TestType = testType
		if m.QuestionOrder < 1 {
			http.Error(w, "question_order must be >= 1", http.StatusBadRequest)
			return
		}
		if err := store.PutModelAnswer(m); err != nil {
			http.Error(w, "save model answer: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(m)
	}
}

// GET /tests/{testType}/model-answers
func ListModelAnswersHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testType := strings.TrimSpace(chi.URLParam(r, "testType"))
		list, err := store.ModelAnswers(testType)
		if err != nil {
			http.Error(w, "model answers: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}

// POST /tests/{testType}/questions
func UpsertQuestionHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testType := strings.TrimSpace(chi.URLParam(r, "testType"))
		if testType == "" {
			http.Error(w, "testType required", http.StatusBadRequest)
			return
		}
		var q assessment.Question
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		q.TestType = testType
		if q.Order < 1 {
			http.Error(w, "order must be >= 1", http.StatusBadRequest)
			return
		}
		if err := store.PutQuestion(q); err != nil {
			http.Error(w, "save question: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(q)
	}
}

// GET /tests/{testType}/questions
func ListQuestionsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testType := strings.TrimSpace(chi.URLParam(r, "testType"))
		list, err := store.Questions(testType)
		if err != nil {
			http.Error(w, "questions: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}
