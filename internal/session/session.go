package session

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tanmayb/wordgym/internal/question"
	"github.com/tanmayb/wordgym/internal/scoring"
	"github.com/tanmayb/wordgym/internal/word"
)

// Options configures a Session. Source is required; the rest degrade
// gracefully when absent.
type Options struct {
	// Preset is the immutable session configuration.
	Preset word.Preset

	// Pool is the candidate word pool the selector draws from.
	Pool []word.Word

	// Source generates questions.
	Source question.Source

	// Recorder receives the session summary. Nil disables recording.
	Recorder Recorder

	// Answers receives every finished item. Nil disables it.
	Answers AnswerSink

	// Words receives per-word difficulty updates. Nil disables them.
	Words word.Repo

	// UserID is stamped on every emitted Answer, attributing updates on
	// shared words to the acting user.
	UserID string

	// Rules overrides the variant's scoring table when non-zero.
	Rules *scoring.Rules

	// Log receives diagnostics. Defaults to stderr.
	Log *zerolog.Logger
}

// Session is the quiz state machine. All exported methods serialize on an
// internal mutex; it is safe to call them from any goroutine, but the
// engine is designed for a single driving consumer.
type Session struct {
	mu sync.Mutex

	opts  Options
	rules scoring.Rules
	log   zerolog.Logger

	id        string
	phase     Phase
	errMsg    string
	startedAt time.Time

	// items is the shuffled session selection; restart reshuffles it in
	// place without re-querying the repository.
	items []word.Word
	index int

	current     *question.Question
	correctIdx  int
	selected    int
	submitted   bool
	lastCorrect bool
	attempts    int

	score      int
	correct    int
	streak     int
	bestStreak int
	played     []string
	correctIDs []string
	accuracy   map[string]float64

	// cache maps word id to its generated question, append-only within
	// one epoch and replaced wholesale on restart.
	cache      map[string]*question.Question
	waitingFor string
	inflight   string
	cancelGen  context.CancelFunc

	// epoch invalidates superseded prefetch completions and auto-advance
	// timers after restart or dismissal.
	epoch int

	recorded bool
	recordWG sync.WaitGroup

	updates  chan Snapshot
	done     chan struct{}
	doneOnce sync.Once
}

// New creates a Session. Call Start to begin.
func New(opts Options) *Session {
	rules := scoring.RulesFor(opts.Preset.Variant)
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Str("component", "session").Logger()
	if opts.Log != nil {
		log = *opts.Log
	}
	return &Session{
		opts:       opts,
		rules:      rules,
		log:        log,
		phase:      PhaseInitializing,
		selected:   -1,
		correctIdx: -1,
		accuracy:   make(map[string]float64),
		cache:      make(map[string]*question.Question),
		updates:    make(chan Snapshot, 1),
		done:       make(chan struct{}),
	}
}

// Start selects the working set and begins generating the first question.
// A pool smaller than the preset's count returns word.ErrInsufficientWords
// and the session never starts.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := word.Select(s.opts.Pool, s.opts.Preset)
	if err != nil {
		return err
	}

	s.items = items
	s.id = uuid.New().String()
	s.startedAt = time.Now()
	s.phase = PhaseGeneratingFirst
	s.waitingFor = s.items[0].ID
	s.scheduleGenerate(0)
	s.publish()
	return nil
}

// Updates returns the snapshot channel. Publishing is latest-wins: a slow
// consumer only ever misses intermediate states, never the newest one.
func (s *Session) Updates() <-chan Snapshot {
	return s.updates
}

// Done is closed once, on completion or dismissal.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SelectOption records a tentative choice. Repeated calls overwrite the
// previous choice; the score is untouched until submission. Ignored after
// submission or outside PhaseReady.
func (s *Session) SelectOption(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady || s.submitted || s.current == nil {
		return
	}
	if i < 0 || i >= len(s.current.Options) {
		return
	}
	s.selected = i
	s.publish()
}

// SubmitAnswer scores the selected option. A no-op without a selection or
// after the item was already submitted.
func (s *Session) SubmitAnswer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady || s.submitted || s.current == nil || s.selected < 0 {
		return
	}

	s.attempts = 1
	if s.selected == s.correctIdx {
		s.finishItem(scoring.EventCorrect)
	} else {
		s.finishItem(scoring.EventIncorrect)
	}
}

// SubmitTyped scores a typed answer (spelling variant). Wrong answers
// keep the item open; the learner may keep trying, or give up through
// RevealAnswer once the attempt limit is reached.
func (s *Session) SubmitTyped(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady || s.submitted || s.current == nil {
		return
	}

	s.attempts++
	if question.Normalize(text) == question.Normalize(s.current.Answer) {
		s.finishItem(scoring.EventCorrect)
		return
	}
	s.publish()
}

// RevealAnswer gives up on the current item and shows the answer. Only
// available once the variant's attempt limit has been exhausted.
func (s *Session) RevealAnswer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady || s.submitted || s.current == nil {
		return
	}
	if s.attempts < s.rules.MaxAttempts {
		return
	}
	s.finishItem(scoring.EventRevealed)
}

// SkipItem forfeits the current item. Only permitted before submission;
// scored like a wrong answer but no option is marked as the learner's
// choice.
func (s *Session) SkipItem() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady || s.submitted || s.current == nil {
		return
	}
	s.selected = -1
	s.finishItem(scoring.EventSkipped)
}

// NextItem advances to the next question. If its generation is still in
// flight the session waits in PhasePrefetching and resumes on its own.
func (s *Session) NextItem() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next()
}

// Retry recovers from PhaseError. When the failure happened on an item
// the session was waiting for, only that item is regenerated; otherwise
// the whole session restarts.
func (s *Session) Retry() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseError {
		return
	}

	if s.waitingFor != "" {
		s.errMsg = ""
		s.phase = PhasePrefetching
		s.scheduleGenerate(s.indexOf(s.waitingFor))
		s.publish()
		return
	}
	s.restart()
}

// RestartQuiz resets all mutable state, reshuffles the selection, clears
// the question cache, and regenerates from the first item.
func (s *Session) RestartQuiz() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseDismissed {
		return
	}
	s.restart()
}

// Dismiss ends the session and moves it to the terminal PhaseDismissed,
// after which all inputs are ignored. With nonzero progress and no prior
// record it saves a partial summary first; a second call does nothing.
// Dismiss waits for any pending recorder write so teardown never loses
// data.
func (s *Session) Dismiss() {
	s.mu.Lock()

	s.cancelInflight()
	s.epoch++

	if !s.recorded && len(s.played) > 0 {
		s.record()
	}
	s.phase = PhaseDismissed
	s.publish()
	s.mu.Unlock()

	s.recordWG.Wait()
	s.signalDone()
}

// next advances the index and either presents the cached question or
// enters the waiting phase. Caller holds the lock.
func (s *Session) next() {
	if s.phase != PhaseReady || !s.submitted {
		return
	}
	if s.index+1 >= len(s.items) {
		return
	}

	s.index++
	id := s.items[s.index].ID
	if _, ok := s.cache[id]; ok {
		s.present(s.index)
		s.scheduleGenerate(s.index + 1)
		s.publish()
		return
	}

	// Advanced faster than generation. Record what we wait for; the
	// pipeline resumes the machine when it lands.
	s.waitingFor = id
	s.phase = PhasePrefetching
	if s.inflight != id {
		s.scheduleGenerate(s.index)
	}
	s.publish()
}

// finishItem applies the scorer outcome for the current item and records
// it as played. Caller holds the lock.
func (s *Session) finishItem(ev scoring.Event) {
	out := scoring.Score(s.rules, ev, s.attempts)
	w := s.items[s.index]

	s.submitted = true
	s.lastCorrect = ev == scoring.EventCorrect
	s.score = scoring.Clamp(s.rules, s.score+out.ScoreDelta)

	if out.ResetStreak {
		s.streak = 0
	} else {
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
	}

	if s.lastCorrect {
		s.correct++
		s.correctIDs = append(s.correctIDs, w.ID)
	}

	s.played = append(s.played, w.ID)
	s.accuracy[w.ID] = out.Accuracy

	s.adjustDifficulty(w, out)
	s.emitAnswer(w, out)

	if len(s.played) >= len(s.items) {
		s.phase = PhaseComplete
		if !s.recorded {
			s.record()
		}
		s.publish()
		s.signalDone()
		return
	}

	if s.rules.AutoAdvance > 0 {
		epoch := s.epoch
		time.AfterFunc(s.rules.AutoAdvance, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if epoch != s.epoch {
				return
			}
			s.next()
		})
	}

	s.publish()
}

// adjustDifficulty persists the per-word difficulty delta without blocking
// the transition that produced it. Failures are logged only.
func (s *Session) adjustDifficulty(w word.Word, out scoring.Outcome) {
	if s.opts.Words == nil || out.DifficultyDelta == 0 {
		return
	}
	id, delta := w.ID, out.DifficultyDelta
	log := s.log
	go func() {
		if err := s.opts.Words.AdjustDifficulty(context.Background(), id, delta); err != nil {
			log.Warn().Err(err).Str("word_id", id).Msg("difficulty update failed")
		}
	}()
}

// emitAnswer hands the finished item to the answer sink off the lock.
// Caller holds the lock.
func (s *Session) emitAnswer(w word.Word, out scoring.Outcome) {
	if s.opts.Answers == nil || s.current == nil {
		return
	}

	a := Answer{
		SessionID:     s.id,
		UserID:        s.opts.UserID,
		WordID:        w.ID,
		Variant:       s.opts.Preset.Variant,
		Prompt:        s.current.Prompt,
		CorrectAnswer: s.current.Answer,
		Correct:       s.lastCorrect,
		Attempts:      s.attempts,
		ScoreDelta:    out.ScoreDelta,
		NeedsReview:   out.NeedsReview,
	}
	if s.lastCorrect {
		a.LearnerAnswer = s.current.Answer
	} else if s.selected >= 0 && s.selected < len(s.current.Options) {
		a.LearnerAnswer = s.current.Options[s.selected].Text
	}

	log := s.log
	sink := s.opts.Answers
	s.recordWG.Add(1)
	go func() {
		defer s.recordWG.Done()
		if err := sink.RecordAnswer(context.Background(), a); err != nil {
			log.Warn().Err(err).Str("word_id", a.WordID).Msg("answer record failed")
		}
	}()
}

// restart implements RestartQuiz. Caller holds the lock.
func (s *Session) restart() {
	s.cancelInflight()
	s.epoch++

	word.Shuffle(s.items)
	s.index = 0
	s.current = nil
	s.correctIdx = -1
	s.selected = -1
	s.submitted = false
	s.lastCorrect = false
	s.attempts = 0
	s.score = 0
	s.correct = 0
	s.streak = 0
	s.bestStreak = 0
	s.played = nil
	s.correctIDs = nil
	s.accuracy = make(map[string]float64)
	s.cache = make(map[string]*question.Question)
	s.errMsg = ""
	s.recorded = false
	s.id = uuid.New().String()
	s.startedAt = time.Now()

	s.phase = PhaseGeneratingFirst
	s.waitingFor = s.items[0].ID
	s.scheduleGenerate(0)
	s.publish()
}

// record hands the summary to the recorder exactly once per lifecycle.
// The write runs off the lock; Dismiss waits for it before teardown.
func (s *Session) record() {
	s.recorded = true
	if s.opts.Recorder == nil {
		return
	}

	rec := Record{
		SessionID:    s.id,
		Variant:      s.opts.Preset.Variant,
		Score:        s.score,
		CorrectCount: s.correct,
		TotalPlayed:  len(s.played),
		StartedAt:    s.startedAt,
		Duration:     time.Since(s.startedAt),
		WordIDs:      append([]string(nil), s.played...),
	}
	var sum float64
	for _, id := range s.played {
		sum += s.accuracy[id]
	}
	if len(s.played) > 0 {
		rec.Accuracy = sum / float64(len(s.played))
	}

	log := s.log
	s.recordWG.Add(1)
	go func() {
		defer s.recordWG.Done()
		if err := s.opts.Recorder.SaveSession(context.Background(), rec); err != nil {
			// The screen is often being torn down here; log, don't surface.
			log.Error().Err(err).Str("session_id", rec.SessionID).Msg("session record failed")
		}
	}()
}

func (s *Session) indexOf(id string) int {
	for i, w := range s.items {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) signalDone() {
	s.doneOnce.Do(func() { close(s.done) })
}

// snapshot builds the published view. Caller holds the lock.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		SessionID:    s.id,
		Phase:        s.phase,
		Message:      s.errMsg,
		Index:        s.index,
		Total:        len(s.items),
		Question:     s.current,
		CorrectIndex: s.correctIdx,
		Selected:     s.selected,
		Submitted:    s.submitted,
		LastCorrect:  s.lastCorrect,
		Attempts:     s.attempts,
		Score:        s.score,
		Streak:       s.streak,
		BestStreak:   s.bestStreak,
		CorrectCount: s.correct,
		Played:       len(s.played),
		WaitingFor:   s.waitingFor,
	}
	if s.index < len(s.items) {
		snap.Word = s.items[s.index]
	}
	return snap
}

// publish replaces the pending snapshot, latest-wins. Caller holds the lock.
func (s *Session) publish() {
	snap := s.snapshot()
	select {
	case s.updates <- snap:
	default:
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- snap:
		default:
		}
	}
}
