package refine

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/llm"
	"github.com/madboat/madboat/internal/persona"
	"github.com/madboat/madboat/internal/store"
)

// DefaultThreshold is the rule confidence below which a second opinion is
// requested.
const DefaultThreshold = 40

const queueSize = 16

// Recorder persists opinions. The store's event repo implements it.
type Recorder interface {
	AppendRefinementEvent(ctx context.Context, data store.RefinementEventData) error
}

// Request is one answer to refine.
type Request struct {
	SessionID string
	Text      string
	Rule      *persona.Analysis
}

type job struct {
	ctx context.Context
	req Request
	cb  func(*Opinion)
}

// Service queues low-confidence answers for the model and reports opinions
// through a callback. Without a provider it never dispatches.
type Service struct {
	refiner   *Refiner
	threshold float64
	recorder  Recorder
	logger    *zap.Logger

	pending chan job
	done    chan struct{}
	once    sync.Once
}

// Option configures a Service.
type Option func(*Service)

func WithThreshold(t float64) Option { return func(s *Service) { s.threshold = t } }

func WithRecorder(r Recorder) Option { return func(s *Service) { s.recorder = r } }

func WithLogger(l *zap.Logger) Option { return func(s *Service) { s.logger = l } }

// NewService starts the worker when provider is non-nil.
func NewService(provider llm.Provider, cfg Config, opts ...Option) *Service {
	s := &Service{
		threshold: DefaultThreshold,
		logger:    zap.NewNop(),
		pending:   make(chan job, queueSize),
		done:      make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	if provider == nil {
		close(s.done)
		return s
	}
	s.refiner = NewRefiner(provider, cfg)
	go s.loop()
	return s
}

// Enabled reports whether opinions can be produced.
func (s *Service) Enabled() bool { return s.refiner != nil }

// Wants reports whether a reading is weak enough to ask the model.
func (s *Service) Wants(a *persona.Analysis) bool {
	return s.Enabled() && a != nil && a.Confidence < s.threshold
}

// Submit queues req when its rule reading is below the threshold. It
// returns false when the request was not queued: refinement disabled,
// confident reading, or queue full.
func (s *Service) Submit(ctx context.Context, req Request, cb func(*Opinion)) bool {
	if !s.Wants(req.Rule) {
		return false
	}
	select {
	case s.pending <- job{ctx: ctx, req: req, cb: cb}:
		return true
	default:
		s.logger.Debug("refine queue full, dropping", zap.String("session_id", req.SessionID))
		return false
	}
}

// Refine runs one request synchronously, ignoring the threshold.
func (s *Service) Refine(ctx context.Context, req Request) (*Opinion, error) {
	if !s.Enabled() {
		return nil, llm.ErrDisabled
	}
	op, err := s.refiner.Opine(ctx, req.Text, req.Rule)
	if err != nil {
		return nil, err
	}
	s.record(ctx, req, op)
	return op, nil
}

func (s *Service) loop() {
	defer close(s.done)
	for j := range s.pending {
		if j.ctx.Err() != nil {
			continue
		}
		op, err := s.Refine(j.ctx, j.req)
		if err != nil {
			s.logger.Warn("second opinion failed",
				zap.String("session_id", j.req.SessionID), zap.Error(err))
			continue
		}
		if j.cb != nil {
			j.cb(op)
		}
	}
}

func (s *Service) record(ctx context.Context, req Request, op *Opinion) {
	if s.recorder == nil {
		return
	}
	data := store.RefinementEventData{
		SessionID:       req.SessionID,
		ModelPersona:    op.Category.String(),
		ModelConfidence: op.Confidence,
		Model:           op.Model,
		Reasoning:       op.Reasoning,
	}
	if req.Rule != nil {
		data.RulePersona = req.Rule.Type.String()
		data.RuleConfidence = req.Rule.Confidence
	}
	if err := s.recorder.AppendRefinementEvent(context.WithoutCancel(ctx), data); err != nil {
		s.logger.Warn("record second opinion", zap.Error(err))
	}
}

// Close waits for queued requests to finish. Submit must not be called
// after Close.
func (s *Service) Close() {
	s.once.Do(func() {
		if s.refiner != nil {
			close(s.pending)
		}
	})
	<-s.done
}
