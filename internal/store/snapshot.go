package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/madboat/madboat/ent"
	"github.com/madboat/madboat/ent/snapshot"
)

// snapshotVersion is bumped when SnapshotData changes shape.
const snapshotVersion = 1

type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.Data.Version == 0 {
		snap.Data.Version = snapshotVersion
	}
	if snap.Sequence == 0 {
		seq, err := r.seq.Next(ctx)
		if err != nil {
			return err
		}
		snap.Sequence = seq
	}

	data, err := toMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	b := r.client.Snapshot.Create().
		SetSessionID(snap.SessionID).
		SetSequence(snap.Sequence).
		SetDone(snap.Done).
		SetData(data)
	if !snap.Timestamp.IsZero() {
		b = b.SetTimestamp(snap.Timestamp)
	}

	saved, err := b.Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID = saved.ID
	return nil
}

func (r *snapshotRepo) LatestUnfinished(ctx context.Context) (*Snapshot, error) {
	latest, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	finished, err := r.client.Snapshot.Query().
		Where(snapshot.SessionID(latest.SessionID), snapshot.Done(true)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("query snapshot state: %w", err)
	}
	if finished || latest.Done {
		return nil, nil
	}
	return fromEnt(latest)
}

func (r *snapshotRepo) MarkDone(ctx context.Context, sessionID string) error {
	_, err := r.client.Snapshot.Update().
		Where(snapshot.SessionID(sessionID)).
		SetDone(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark snapshot done: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	cut, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(cut) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(cut[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func toMap(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromEnt(s *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		SessionID: s.SessionID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Done:      s.Done,
		Data:      data,
	}, nil
}
