package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/typing"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// PersonaHandler serves the scorer and the classifier.
type PersonaHandler struct {
	classifier *quiz.Classifier
	refine     *refine.Service
}

// AnalyzeRequest is the body of POST /v1/persona/analyze.
type AnalyzeRequest struct {
	Text    string                `json:"text"`
	Metrics *typing.TypingMetrics `json:"typing_metrics,omitempty"`

	// SecondOpinion asks the configured model as well, regardless of the
	// rule confidence.
	SecondOpinion bool `json:"second_opinion,omitempty"`
}

// AnalyzeResponse is the reply of POST /v1/persona/analyze.
type AnalyzeResponse struct {
	*persona.Analysis
	Auxiliary     persona.Auxiliary `json:"auxiliary"`
	SecondOpinion *refine.Opinion   `json:"second_opinion,omitempty"`
}

// Analyze handles POST /v1/persona/analyze.
func (h *PersonaHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	a := persona.Analyze(req.Text, req.Metrics)
	resp := AnalyzeResponse{Analysis: a, Auxiliary: persona.AuxiliaryScores(req.Text)}

	if req.SecondOpinion {
		if h.refine == nil || !h.refine.Enabled() {
			writeError(w, http.StatusServiceUnavailable, "second opinion is not configured")
			return
		}
		op, err := h.refine.Refine(r.Context(), refine.Request{Text: req.Text, Rule: a})
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		resp.SecondOpinion = op
	}
	writeJSON(w, http.StatusOK, resp)
}

// ClassifyRequest is the body of POST /v1/persona/classify. Free-text
// answers are analysed server-side when semantic_analysis is absent.
type ClassifyRequest struct {
	Responses []quiz.Response `json:"responses"`
}

// Classify handles POST /v1/persona/classify.
func (h *PersonaHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !decode(w, r, &req) {
		return
	}
	bank := h.classifier.Bank()
	if len(req.Responses) > bank.Len() {
		writeError(w, http.StatusBadRequest, "more responses than questions")
		return
	}
	for i, resp := range req.Responses {
		if _, ok := bank.Question(resp.QuestionID); !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown question_id in response %d", i))
			return
		}
	}
	writeJSON(w, http.StatusOK, h.classifier.Classify(req.Responses))
}

// QuizHandler serves the question bank.
type QuizHandler struct {
	bank *quiz.Bank
}

// List handles GET /v1/quiz/questions.
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bank)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
