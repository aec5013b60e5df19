package word

import (
	"errors"
	"fmt"
	"testing"
)

func testPool(n int) []Word {
	pool := make([]Word, n)
	for i := range pool {
		pool[i] = Word{
			ID:         fmt.Sprintf("w%d", i),
			Text:       fmt.Sprintf("word%d", i),
			Definition: fmt.Sprintf("definition %d", i),
			Language:   "en",
			Difficulty: i - n/2, // half hard, half easy
		}
	}
	return pool
}

func TestSelect_ExactCount(t *testing.T) {
	pool := testPool(20)
	got, err := Select(pool, Preset{Count: 10})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}

	seen := make(map[string]bool)
	for _, w := range got {
		if seen[w.ID] {
			t.Errorf("duplicate word %s in selection", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestSelect_InsufficientPool(t *testing.T) {
	pool := testPool(5)
	_, err := Select(pool, Preset{Count: 10})
	if !errors.Is(err, ErrInsufficientWords) {
		t.Fatalf("err = %v, want ErrInsufficientWords", err)
	}
}

func TestSelect_NonPositiveCount(t *testing.T) {
	pool := testPool(5)
	for _, count := range []int{0, -1} {
		_, err := Select(pool, Preset{Count: count})
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Count=%d: err = %v, want ErrInvalidCount", count, err)
		}
	}
}

func TestSelect_HardOnly(t *testing.T) {
	pool := testPool(20) // difficulties -10..9, 11 of them <= 0
	got, err := Select(pool, Preset{Count: 8, HardOnly: true})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	for _, w := range got {
		if w.Difficulty > HardThreshold {
			t.Errorf("word %s difficulty %d above hard threshold", w.ID, w.Difficulty)
		}
	}
}

func TestSelect_HardOnlyInsufficient(t *testing.T) {
	pool := testPool(20) // only 11 hard words
	_, err := Select(pool, Preset{Count: 15, HardOnly: true})
	if !errors.Is(err, ErrInsufficientWords) {
		t.Fatalf("err = %v, want ErrInsufficientWords", err)
	}
}

func TestSelect_DoesNotMutatePool(t *testing.T) {
	pool := testPool(20)
	first := pool[0].ID
	if _, err := Select(pool, Preset{Count: 20}); err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if pool[0].ID != first {
		t.Error("Select reordered the caller's pool")
	}
}
