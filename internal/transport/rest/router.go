// Package rest exposes the persona scorer and classifier over HTTP.
package rest

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
)

// Container holds the router dependencies. Refine and Typing may be nil.
type Container struct {
	Classifier *quiz.Classifier
	Refine     *refine.Service
	Typing     http.Handler // websocket keystroke capture
	Logger     *zap.Logger
	Version    string
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(accessLog(logger.Named("http")))

	persona := &PersonaHandler{classifier: c.Classifier, refine: c.Refine}
	questions := &QuizHandler{bank: c.Classifier.Bank()}

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/persona/analyze", persona.Analyze).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/persona/classify", persona.Classify).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/quiz/questions", questions.List).Methods(http.MethodGet, http.MethodOptions)
	if c.Typing != nil {
		v1.Handle("/ws/typing", c.Typing).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": c.Version})
	}).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrader take over the connection.
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	s.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }

func accessLog(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("elapsed", time.Since(start)))
		})
	}
}
