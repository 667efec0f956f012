package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRefinementEvent(ctx context.Context, data RefinementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	b := r.client.RefinementEvent.Create().
		SetSequence(seqNum).
		SetRulePersona(data.RulePersona).
		SetRuleConfidence(data.RuleConfidence).
		SetModelPersona(data.ModelPersona).
		SetModelConfidence(data.ModelConfidence).
		SetModel(data.Model).
		SetReasoning(data.Reasoning)
	if data.SessionID != "" {
		b = b.SetSessionID(data.SessionID)
	}

	if _, err := b.Save(ctx); err != nil {
		return fmt.Errorf("save refinement event: %w", err)
	}
	return nil
}
