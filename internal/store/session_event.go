package store

import (
	"context"
	"fmt"

	"github.com/tanmayb/wordgym/ent"
	"github.com/tanmayb/wordgym/ent/answerevent"
	"github.com/tanmayb/wordgym/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetVariant(data.Variant).
		SetScore(data.Score).
		SetCorrectCount(data.CorrectCount).
		SetTotalPlayed(data.TotalPlayed).
		SetDurationSecs(data.DurationSecs).
		SetAccuracy(data.Accuracy)

	if len(data.WordIDs) > 0 {
		builder = builder.SetWords(data.WordIDs)
	}
	if !data.StartedAt.IsZero() {
		builder = builder.SetTimestamp(data.StartedAt)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetWordID(data.WordID).
		SetVariant(data.Variant).
		SetPrompt(data.Prompt).
		SetCorrectAnswer(data.CorrectAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetAttempts(data.Attempts).
		SetScoreDelta(data.ScoreDelta).
		SetNeedsReview(data.NeedsReview).
		SetUserID(data.UserID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		out = append(out, SessionSummary{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			SessionID:    e.SessionID,
			Variant:      e.Variant,
			Score:        e.Score,
			CorrectCount: e.CorrectCount,
			TotalPlayed:  e.TotalPlayed,
			DurationSecs: e.DurationSecs,
			Accuracy:     e.Accuracy,
		})
	}
	return out, nil
}

func (r *eventRepo) WordAccuracy(ctx context.Context, wordID string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.WordID(wordID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query word accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
