package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/tanmayb/wordgym/internal/question"
	"github.com/tanmayb/wordgym/internal/scoring"
	"github.com/tanmayb/wordgym/internal/word"
)

// fakeSource builds deterministic questions. Individual words can be held
// (generation blocks until released) or made to fail.
type fakeSource struct {
	mu    sync.Mutex
	calls []string
	holds map[string]chan struct{}
	errs  map[string]error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		holds: make(map[string]chan struct{}),
		errs:  make(map[string]error),
	}
}

func (f *fakeSource) hold(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.holds[id]; !ok {
		f.holds[id] = make(chan struct{})
	}
}

func (f *fakeSource) release(id string) {
	f.mu.Lock()
	ch := f.holds[id]
	delete(f.holds, id)
	f.mu.Unlock()
	if ch != nil {
		close(ch)
	}
}

func (f *fakeSource) failWith(id string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[id] = err
}

func (f *fakeSource) callCount(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == id {
			n++
		}
	}
	return n
}

func (f *fakeSource) Generate(ctx context.Context, w word.Word) (*question.Question, error) {
	f.mu.Lock()
	f.calls = append(f.calls, w.ID)
	ch := f.holds[w.ID]
	err := f.errs[w.ID]
	f.mu.Unlock()

	if ch != nil {
		select {
		case <-ch:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	q := &question.Question{
		WordID:  w.ID,
		Subject: w.Text,
		Prompt:  "prompt for " + w.Text,
		Answer:  w.Definition,
	}
	if w.Definition != "" {
		// Choice question with the correct answer deliberately not first.
		q.Options = []question.Option{
			{Text: "wrong a"},
			{Text: "wrong b"},
			{Text: w.Definition, Correct: true},
			{Text: "wrong c"},
		}
	}
	return q, nil
}

// spellingSource generates optionless questions answered by typing the word.
type spellingSource struct{}

func (spellingSource) Generate(_ context.Context, w word.Word) (*question.Question, error) {
	return &question.Question{WordID: w.ID, Subject: w.Text, Prompt: w.Definition, Answer: w.Text}, nil
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []Record
}

func (f *fakeRecorder) SaveSession(_ context.Context, r Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, r)
	return nil
}

func (f *fakeRecorder) all() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Record(nil), f.records...)
}

type fakeAnswerSink struct {
	mu      sync.Mutex
	answers []Answer
}

func (f *fakeAnswerSink) RecordAnswer(_ context.Context, a Answer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, a)
	return nil
}

func (f *fakeAnswerSink) all() []Answer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Answer(nil), f.answers...)
}

func makePool(n int) []word.Word {
	pool := make([]word.Word, n)
	for i := range pool {
		pool[i] = word.Word{
			ID:         fmt.Sprintf("w%d", i),
			Text:       fmt.Sprintf("word%d", i),
			Definition: fmt.Sprintf("definition %d", i),
			Difficulty: 10,
		}
	}
	return pool
}

func waitSnap(t *testing.T, s *Session, desc string, ok func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		snap := s.Snapshot()
		if ok(snap) {
			return snap
		}
		time.Sleep(time.Millisecond)
	}
	snap := s.Snapshot()
	t.Fatalf("timed out waiting for %s; phase=%s waitingFor=%q played=%d", desc, snap.Phase, snap.WaitingFor, snap.Played)
	return snap
}

func waitReady(t *testing.T, s *Session) Snapshot {
	t.Helper()
	return waitSnap(t, s, "ready question", func(snap Snapshot) bool {
		return snap.Phase == PhaseReady && !snap.Submitted && snap.Question != nil
	})
}

func startSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s := New(opts)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestStartInsufficientPool(t *testing.T) {
	s := New(Options{
		Preset: word.Preset{Count: 5, Variant: word.VariantContextChoice},
		Pool:   makePool(3),
		Source: newFakeSource(),
	})
	if err := s.Start(); !errors.Is(err, word.ErrInsufficientWords) {
		t.Fatalf("expected ErrInsufficientWords, got %v", err)
	}
	if got := s.Snapshot().Phase; got != PhaseInitializing {
		t.Errorf("failed start moved phase to %s", got)
	}
}

func TestStartRejectsNonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		s := New(Options{
			Preset: word.Preset{Count: count, Variant: word.VariantContextChoice},
			Pool:   makePool(3),
			Source: newFakeSource(),
		})
		if err := s.Start(); !errors.Is(err, word.ErrInvalidCount) {
			t.Errorf("Count=%d: expected ErrInvalidCount, got %v", count, err)
		}
	}
}

func TestContextChoiceCorrectAnswer(t *testing.T) {
	src := newFakeSource()
	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:   makePool(2),
		Source: src,
	})
	defer s.Dismiss()

	snap := waitReady(t, s)
	if snap.CorrectIndex < 0 {
		t.Fatalf("no correct index in snapshot")
	}

	s.SelectOption(snap.CorrectIndex)
	s.SubmitAnswer()

	snap = s.Snapshot()
	if !snap.Submitted || !snap.LastCorrect {
		t.Fatalf("answer not registered as correct: %+v", snap)
	}
	if snap.Score != 5 {
		t.Errorf("score = %d, want 5", snap.Score)
	}
	if snap.Streak != 1 || snap.BestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", snap.Streak, snap.BestStreak)
	}
	if snap.Played != 1 {
		t.Errorf("played = %d, want 1", snap.Played)
	}
	if snap.Phase != PhaseReady {
		t.Errorf("phase = %s, want ready", snap.Phase)
	}
}

func TestSelectOptionIdempotentBeforeSubmit(t *testing.T) {
	src := newFakeSource()
	s := startSession(t, Options{
		Preset: word.Preset{Count: 1, Variant: word.VariantContextChoice},
		Pool:   makePool(1),
		Source: src,
	})
	defer s.Dismiss()

	waitReady(t, s)

	s.SelectOption(0)
	s.SelectOption(1)
	s.SelectOption(0)

	snap := s.Snapshot()
	if snap.Selected != 0 {
		t.Errorf("selected = %d, want 0", snap.Selected)
	}
	if snap.Score != 0 || snap.Played != 0 {
		t.Errorf("selection changed score or progress: %+v", snap)
	}
}

func TestSubmitTwiceIsNoop(t *testing.T) {
	src := newFakeSource()
	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:   makePool(2),
		Source: src,
	})
	defer s.Dismiss()

	snap := waitReady(t, s)
	wrong := (snap.CorrectIndex + 1) % len(snap.Question.Options)
	s.SelectOption(wrong)
	s.SubmitAnswer()

	first := s.Snapshot()
	s.SubmitAnswer()
	second := s.Snapshot()

	if first.Score != second.Score || first.Played != second.Played || first.Streak != second.Streak {
		t.Errorf("second submit changed state: %+v vs %+v", first, second)
	}
	if first.Score != -2 {
		t.Errorf("score = %d, want -2", first.Score)
	}
}

func TestSkipWithoutSelection(t *testing.T) {
	src := newFakeSource()
	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:   makePool(2),
		Source: src,
	})
	defer s.Dismiss()

	waitReady(t, s)
	s.SkipItem()

	snap := s.Snapshot()
	if snap.Score != -2 {
		t.Errorf("score = %d, want -2", snap.Score)
	}
	if snap.Streak != 0 {
		t.Errorf("streak = %d, want 0", snap.Streak)
	}
	if snap.Played != 1 {
		t.Errorf("played = %d, want 1", snap.Played)
	}
	if snap.Selected != -1 {
		t.Errorf("skip marked option %d as the learner's choice", snap.Selected)
	}
}

func TestPrefetchRaceResumesWithoutInput(t *testing.T) {
	src := newFakeSource()
	pool := makePool(2)
	for _, w := range pool {
		src.hold(w.ID)
	}

	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:   pool,
		Source: src,
	})
	defer s.Dismiss()

	snap := waitSnap(t, s, "first generation pending", func(snap Snapshot) bool {
		return snap.Phase == PhaseGeneratingFirst && snap.WaitingFor != ""
	})
	first := snap.WaitingFor
	second := pool[0].ID
	if first == second {
		second = pool[1].ID
	}

	src.release(first)
	snap = waitReady(t, s)

	// Answer while the lookahead is still blocked, then ask for the next
	// item before it exists.
	s.SelectOption(snap.CorrectIndex)
	s.SubmitAnswer()
	s.NextItem()

	snap = s.Snapshot()
	if snap.Phase != PhasePrefetching {
		t.Fatalf("phase = %s, want prefetching", snap.Phase)
	}
	if snap.WaitingFor != second {
		t.Fatalf("waitingFor = %q, want %q", snap.WaitingFor, second)
	}

	src.release(second)
	snap = waitReady(t, s)
	if snap.Question.WordID != second {
		t.Errorf("resumed with question for %q, want %q", snap.Question.WordID, second)
	}
	if snap.Index != 1 {
		t.Errorf("index = %d, want 1", snap.Index)
	}
}

func TestGenerationErrorAndRetry(t *testing.T) {
	src := newFakeSource()
	pool := makePool(2)

	s := New(Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:   pool,
		Source: src,
	})
	for _, w := range pool {
		src.failWith(w.ID, errors.New("provider down"))
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Dismiss()

	snap := waitSnap(t, s, "error phase", func(snap Snapshot) bool {
		return snap.Phase == PhaseError
	})
	if snap.Message == "" {
		t.Errorf("error phase carries no message")
	}
	if snap.WaitingFor == "" {
		t.Fatalf("failed word not remembered for retry")
	}

	// Recovery regenerates only the failed item.
	for _, w := range pool {
		src.failWith(w.ID, nil)
	}
	s.Retry()

	snap = waitReady(t, s)
	if snap.Played != 0 || snap.Score != 0 {
		t.Errorf("retry disturbed progress: %+v", snap)
	}
}

func TestLookaheadErrorKeepsCurrentItem(t *testing.T) {
	src := newFakeSource()
	pool := makePool(3)

	for _, w := range pool {
		src.hold(w.ID)
	}
	s := New(Options{
		Preset: word.Preset{Count: 3, Variant: word.VariantContextChoice},
		Pool:   pool,
		Source: src,
	})
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Dismiss()

	snap := waitSnap(t, s, "first generation pending", func(snap Snapshot) bool {
		return snap.Phase == PhaseGeneratingFirst && snap.WaitingFor != ""
	})
	current := snap.WaitingFor

	// Everything except the first item will fail, so the lookahead that
	// starts once the first question is presented hits the error path.
	boom := errors.New("boom")
	for _, w := range pool {
		if w.ID != current {
			src.failWith(w.ID, boom)
		}
		src.release(w.ID)
	}

	snap = waitSnap(t, s, "lookahead failure", func(snap Snapshot) bool {
		return snap.Phase == PhaseError
	})
	failed := snap.WaitingFor
	if failed == current {
		t.Fatalf("current item reported as failed")
	}

	src.failWith(failed, nil)
	s.Retry()

	snap = waitSnap(t, s, "phase restored", func(snap Snapshot) bool {
		return snap.Phase == PhaseReady
	})
	if snap.Question.WordID != current {
		t.Errorf("current item changed across retry: %q -> %q", current, snap.Question.WordID)
	}
}

func TestDismissRecordsPartialOnce(t *testing.T) {
	src := newFakeSource()
	rec := &fakeRecorder{}
	s := startSession(t, Options{
		Preset:   word.Preset{Count: 10, Variant: word.VariantContextChoice},
		Pool:     makePool(10),
		Source:   src,
		Recorder: rec,
	})

	for i := 0; i < 3; i++ {
		snap := waitReady(t, s)
		s.SelectOption(snap.CorrectIndex)
		s.SubmitAnswer()
		s.NextItem()
	}

	s.Dismiss()
	s.Dismiss()

	records := rec.all()
	if len(records) != 1 {
		t.Fatalf("recorder called %d times, want 1", len(records))
	}
	r := records[0]
	if r.TotalPlayed != 3 {
		t.Errorf("totalPlayed = %d, want 3", r.TotalPlayed)
	}
	if r.CorrectCount != 3 {
		t.Errorf("correctCount = %d, want 3", r.CorrectCount)
	}
	if r.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", r.Accuracy)
	}
	if len(r.WordIDs) != 3 {
		t.Errorf("wordIDs = %v, want 3 entries", r.WordIDs)
	}
}

func TestDismissWithoutProgressDoesNotRecord(t *testing.T) {
	src := newFakeSource()
	rec := &fakeRecorder{}
	s := startSession(t, Options{
		Preset:   word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:     makePool(2),
		Source:   src,
		Recorder: rec,
	})

	waitReady(t, s)
	s.Dismiss()

	if n := len(rec.all()); n != 0 {
		t.Errorf("recorder called %d times for zero-progress session", n)
	}

	select {
	case <-s.Done():
	default:
		t.Errorf("Done not signalled after dismiss")
	}
}

func TestDismissIsTerminal(t *testing.T) {
	src := newFakeSource()
	rec := &fakeRecorder{}
	s := startSession(t, Options{
		Preset:   word.Preset{Count: 3, Variant: word.VariantContextChoice},
		Pool:     makePool(3),
		Source:   src,
		Recorder: rec,
	})

	snap := waitReady(t, s)
	s.SelectOption(snap.CorrectIndex)
	s.SubmitAnswer()
	s.Dismiss()

	if got := s.Snapshot().Phase; got != PhaseDismissed {
		t.Fatalf("phase after dismiss = %s, want dismissed", got)
	}

	// Inputs after teardown must not move the machine or touch the score.
	s.NextItem()
	s.SubmitAnswer()
	s.RestartQuiz()

	got := s.Snapshot()
	if got.Phase != PhaseDismissed {
		t.Errorf("phase after post-dismiss input = %s, want dismissed", got.Phase)
	}
	if got.Played != 1 {
		t.Errorf("played = %d after post-dismiss input, want 1", got.Played)
	}
	if n := len(rec.all()); n != 1 {
		t.Errorf("recorder called %d times, want 1", n)
	}
}

func TestCompletionRecordsExactlyOnce(t *testing.T) {
	src := newFakeSource()
	rec := &fakeRecorder{}
	s := startSession(t, Options{
		Preset:   word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:     makePool(2),
		Source:   src,
		Recorder: rec,
	})

	for i := 0; i < 2; i++ {
		snap := waitReady(t, s)
		s.SelectOption(snap.CorrectIndex)
		s.SubmitAnswer()
		s.NextItem()
	}

	waitSnap(t, s, "completion", func(snap Snapshot) bool {
		return snap.Phase == PhaseComplete
	})

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatalf("Done not signalled on completion")
	}

	s.Dismiss()

	records := rec.all()
	if len(records) != 1 {
		t.Fatalf("recorder called %d times, want 1", len(records))
	}
	if records[0].TotalPlayed != 2 || records[0].CorrectCount != 2 {
		t.Errorf("record = %+v, want 2 played 2 correct", records[0])
	}
}

func TestSpellingLateAttemptSuccess(t *testing.T) {
	rec := &fakeRecorder{}
	s := startSession(t, Options{
		Preset:   word.Preset{Count: 2, Variant: word.VariantSpelling},
		Pool:     makePool(2),
		Source:   spellingSource{},
		Recorder: rec,
	})

	snap := waitReady(t, s)
	answer := snap.Question.Answer

	s.SubmitTyped("nope")
	s.SubmitTyped("still nope")
	s.SubmitTyped("wrong again")

	snap = s.Snapshot()
	if snap.Submitted {
		t.Fatalf("item closed after wrong attempts")
	}
	if snap.Attempts != 3 {
		t.Fatalf("attempts = %d, want 3", snap.Attempts)
	}

	s.SubmitTyped(answer)

	snap = s.Snapshot()
	if !snap.LastCorrect {
		t.Fatalf("correct answer not accepted on attempt 4")
	}
	if snap.Score != 100 {
		t.Errorf("score = %d, want 100", snap.Score)
	}
	if snap.Streak != 1 {
		t.Errorf("streak = %d, want 1", snap.Streak)
	}

	s.Dismiss()
	records := rec.all()
	if len(records) != 1 {
		t.Fatalf("recorder called %d times, want 1", len(records))
	}
	if records[0].Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5 for late success", records[0].Accuracy)
	}
}

func TestSpellingRevealRequiresExhaustedAttempts(t *testing.T) {
	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantSpelling},
		Pool:   makePool(2),
		Source: spellingSource{},
	})
	defer s.Dismiss()

	waitReady(t, s)

	s.SubmitTyped("nope")
	s.RevealAnswer()
	if snap := s.Snapshot(); snap.Submitted {
		t.Fatalf("reveal allowed after %d attempts", snap.Attempts)
	}

	s.SubmitTyped("nope")
	s.SubmitTyped("nope")
	s.RevealAnswer()

	snap := s.Snapshot()
	if !snap.Submitted || snap.LastCorrect {
		t.Fatalf("reveal did not close the item: %+v", snap)
	}
	if snap.Score != 0 {
		t.Errorf("reveal changed score to %d", snap.Score)
	}
	if snap.Streak != 0 {
		t.Errorf("streak = %d after reveal, want 0", snap.Streak)
	}
}

func TestSpellingSkipFloorsAtZero(t *testing.T) {
	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantSpelling},
		Pool:   makePool(2),
		Source: spellingSource{},
	})
	defer s.Dismiss()

	waitReady(t, s)
	s.SkipItem()

	if snap := s.Snapshot(); snap.Score != 0 {
		t.Errorf("score = %d, want floor at 0", snap.Score)
	}
}

func TestSpellingAnswerMatchIgnoresCaseAndSpace(t *testing.T) {
	s := startSession(t, Options{
		Preset: word.Preset{Count: 1, Variant: word.VariantSpelling},
		Pool:   makePool(1),
		Source: spellingSource{},
	})
	defer s.Dismiss()

	snap := waitReady(t, s)
	s.SubmitTyped("  " + snap.Question.Answer + "  ")

	if snap = s.Snapshot(); !snap.LastCorrect {
		t.Errorf("padded answer rejected")
	}
}

func TestRestartResetsEverything(t *testing.T) {
	src := newFakeSource()
	rec := &fakeRecorder{}
	s := startSession(t, Options{
		Preset:   word.Preset{Count: 3, Variant: word.VariantContextChoice},
		Pool:     makePool(3),
		Source:   src,
		Recorder: rec,
	})
	defer s.Dismiss()

	snap := waitReady(t, s)
	firstID := snap.SessionID
	s.SelectOption(snap.CorrectIndex)
	s.SubmitAnswer()

	s.RestartQuiz()

	snap = waitReady(t, s)
	if snap.Played != 0 || snap.Score != 0 || snap.Streak != 0 {
		t.Errorf("restart kept progress: %+v", snap)
	}
	if snap.Index != 0 {
		t.Errorf("index = %d after restart, want 0", snap.Index)
	}
	if snap.SessionID == firstID {
		t.Errorf("restart reused the session id")
	}

	// A restarted, unplayed session records nothing on dismissal.
	s.Dismiss()
	if n := len(rec.all()); n != 0 {
		t.Errorf("recorder called %d times after restart and dismiss", n)
	}
}

func TestRestartWhileGenerationInFlight(t *testing.T) {
	src := newFakeSource()
	pool := makePool(2)
	for _, w := range pool {
		src.hold(w.ID)
	}

	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:   pool,
		Source: src,
	})
	defer s.Dismiss()

	waitSnap(t, s, "first generation pending", func(snap Snapshot) bool {
		return snap.Phase == PhaseGeneratingFirst
	})

	s.RestartQuiz()
	for _, w := range pool {
		src.release(w.ID)
	}

	snap := waitReady(t, s)
	if snap.Played != 0 || snap.Score != 0 {
		t.Errorf("stale generation contaminated the restarted session: %+v", snap)
	}
}

func TestAutoAdvanceMovesOnWithoutInput(t *testing.T) {
	src := newFakeSource()
	rules := scoring.RulesFor(word.VariantContextChoice)
	rules.AutoAdvance = 10 * time.Millisecond

	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:   makePool(2),
		Source: src,
		Rules:  &rules,
	})
	defer s.Dismiss()

	snap := waitReady(t, s)
	first := snap.Question.WordID
	s.SelectOption(snap.CorrectIndex)
	s.SubmitAnswer()

	snap = waitSnap(t, s, "auto-advanced item", func(sn Snapshot) bool {
		return sn.Phase == PhaseReady && !sn.Submitted &&
			sn.Question != nil && sn.Question.WordID != first
	})
	if snap.Index != 1 {
		t.Errorf("index = %d after auto-advance, want 1", snap.Index)
	}
	if snap.Score != 5 {
		t.Errorf("auto-advance changed scoring: score = %d, want 5", snap.Score)
	}
}

func TestUpdatesLatestWins(t *testing.T) {
	src := newFakeSource()
	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:   makePool(2),
		Source: src,
	})
	defer s.Dismiss()

	snap := waitReady(t, s)

	// Burst of transitions with no consumer; the channel must still yield
	// the newest state afterwards.
	s.SelectOption(snap.CorrectIndex)
	s.SubmitAnswer()

	select {
	case got := <-s.Updates():
		if !got.Submitted {
			t.Errorf("update channel yielded stale snapshot: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("no update published")
	}
}

func TestDifficultyAdjustmentFlows(t *testing.T) {
	src := newFakeSource()
	repo := &fakeWordRepo{pool: makePool(2)}
	s := startSession(t, Options{
		Preset: word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:   repo.pool,
		Source: src,
		Words:  repo,
		UserID: "u1",
	})
	defer s.Dismiss()

	snap := waitReady(t, s)
	s.SelectOption(snap.CorrectIndex)
	s.SubmitAnswer()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if d, ok := repo.delta(snap.Question.WordID); ok {
			if d != 5 {
				t.Fatalf("difficulty delta = %d, want 5", d)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no difficulty adjustment recorded")
}

func TestAnswersCarryUserAttribution(t *testing.T) {
	src := newFakeSource()
	sink := &fakeAnswerSink{}
	s := startSession(t, Options{
		Preset:  word.Preset{Count: 2, Variant: word.VariantContextChoice},
		Pool:    makePool(2),
		Source:  src,
		Answers: sink,
		UserID:  "u7",
	})
	defer s.Dismiss()

	snap := waitReady(t, s)
	s.SelectOption(snap.CorrectIndex)
	s.SubmitAnswer()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if answers := sink.all(); len(answers) > 0 {
			a := answers[0]
			if a.UserID != "u7" {
				t.Fatalf("answer user = %q, want u7", a.UserID)
			}
			if a.WordID != snap.Question.WordID {
				t.Fatalf("answer word = %q, want %q", a.WordID, snap.Question.WordID)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no answer emitted")
}

type fakeWordRepo struct {
	mu     sync.Mutex
	pool   []word.Word
	deltas map[string]int
}

func (f *fakeWordRepo) All(_ context.Context, _ word.Filter) ([]word.Word, error) {
	return f.pool, nil
}

func (f *fakeWordRepo) AdjustDifficulty(_ context.Context, id string, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deltas == nil {
		f.deltas = make(map[string]int)
	}
	f.deltas[id] += delta
	return nil
}

func (f *fakeWordRepo) delta(id string) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deltas[id]
	return d, ok
}
