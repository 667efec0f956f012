package quiz

import (
	"context"

	"go.uber.org/zap"

	"github.com/madboat/madboat/internal/quiz"
	"github.com/madboat/madboat/internal/refine"
	"github.com/madboat/madboat/internal/store"
)

// keep this many snapshots after each save
const snapshotsKept = 20

// Deps are the services a quiz screen needs. Any of the repos and the
// refine service may be nil.
type Deps struct {
	Classifier *quiz.Classifier
	Events     store.EventRepo
	Snapshots  store.SnapshotRepo
	Refine     *refine.Service
	Logger     *zap.Logger
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Deps) sessionOptions() []quiz.SessionOption {
	opts := []quiz.SessionOption{quiz.WithLogger(d.logger().Named("quiz"))}
	if d.Events != nil {
		opts = append(opts, quiz.WithRecorder(d.Events))
	}
	return opts
}

// saveProgress stores the session for --resume, or marks it finished.
func (d Deps) saveProgress(ctx context.Context, s *quiz.Session) {
	if d.Snapshots == nil {
		return
	}
	log := d.logger()
	if s.Result().Done {
		if err := d.Snapshots.MarkDone(ctx, s.ID); err != nil {
			log.Warn("mark snapshot done", zap.String("session_id", s.ID), zap.Error(err))
		}
		return
	}
	snap := &store.Snapshot{
		SessionID: s.ID,
		Data: store.SnapshotData{
			BankVersion: d.Classifier.Bank().Version,
			StartedAt:   s.StartedAt(),
			Responses:   s.Responses(),
		},
	}
	if err := d.Snapshots.Save(ctx, snap); err != nil {
		log.Warn("save snapshot", zap.String("session_id", s.ID), zap.Error(err))
		return
	}
	if err := d.Snapshots.Prune(ctx, snapshotsKept); err != nil {
		log.Warn("prune snapshots", zap.Error(err))
	}
}
