package session

import (
	"context"

	"github.com/tanmayb/wordgym/internal/question"
)

// The pipeline keeps exactly one generation in flight, one item ahead of
// play. scheduleGenerate cancels whatever was running before starting the
// next task, and completions carry the epoch they were started under so a
// restart can never be contaminated by a stale result.

// scheduleGenerate starts generating the question for items[i], replacing
// any in-flight task. Out-of-range or already-cached indexes are skipped.
// Caller holds the lock.
func (s *Session) scheduleGenerate(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	w := s.items[i]
	if _, ok := s.cache[w.ID]; ok {
		return
	}

	s.cancelInflight()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelGen = cancel
	s.inflight = w.ID
	epoch := s.epoch

	go func() {
		q, err := s.opts.Source.Generate(ctx, w)
		if ctx.Err() != nil {
			// Cancelled tasks never touch the session, whatever the
			// source returned.
			return
		}
		s.onGenerated(epoch, w.ID, q, err)
	}()
}

// cancelInflight stops the running generation task, if any. Caller holds
// the lock.
func (s *Session) cancelInflight() {
	if s.cancelGen != nil {
		s.cancelGen()
		s.cancelGen = nil
	}
	s.inflight = ""
}

// onGenerated receives a completed generation. Results from a previous
// epoch are dropped; current ones land in the cache and, when the machine
// is blocked on this word, resume it.
func (s *Session) onGenerated(epoch int, wordID string, q *question.Question, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return
	}
	if s.inflight == wordID {
		s.inflight = ""
		s.cancelGen = nil
	}

	if err != nil {
		s.log.Error().Err(err).Str("word_id", wordID).Msg("question generation failed")
		s.errMsg = err.Error()
		// Remember which word failed so Retry can regenerate just that
		// item instead of restarting the session.
		s.waitingFor = wordID
		s.phase = PhaseError
		s.publish()
		return
	}

	s.cache[wordID] = q

	if s.waitingFor == wordID {
		s.waitingFor = ""
		if s.items[s.index].ID == wordID {
			s.present(s.index)
			s.scheduleGenerate(s.index + 1)
		} else {
			// A retried lookahead landed; the current item is untouched.
			s.phase = PhaseReady
		}
		s.publish()
		return
	}
	s.publish()
}

// present installs the cached question for items[i] as the current one
// and resets per-item state. Caller holds the lock.
func (s *Session) present(i int) {
	w := s.items[i]
	q := s.cache[w.ID]

	s.current = q
	s.selected = -1
	s.submitted = false
	s.lastCorrect = false
	s.attempts = 0
	s.correctIdx = -1
	if len(q.Options) > 0 {
		s.correctIdx = q.CorrectIndex()
		if s.correctIdx < 0 {
			// Broken source contract. Degrade to the first option so the
			// item stays playable.
			s.log.Warn().Str("word_id", w.ID).Msg("no correct option in generated question")
			s.correctIdx = 0
		}
	}
	s.phase = PhaseReady
}
