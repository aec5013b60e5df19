package word

import (
	"errors"
	"math/rand/v2"
)

// ErrInsufficientWords is returned by Select when the filtered pool holds
// fewer words than the preset asks for. Surfaced to the user as a
// "not enough words" condition, never as a crash.
var ErrInsufficientWords = errors.New("not enough words for this session")

// ErrInvalidCount is returned by Select for presets asking for fewer than
// one word. Guards the engine against a zero-length working set.
var ErrInvalidCount = errors.New("session needs at least one word")

// Select picks the session's working set from pool: filter by the preset's
// hard-only flag, shuffle once, take the first Count. The returned slice is
// a fresh copy; callers may reshuffle it on restart without touching pool.
func Select(pool []Word, preset Preset) ([]Word, error) {
	if preset.Count < 1 {
		return nil, ErrInvalidCount
	}

	filtered := pool
	if preset.HardOnly {
		filtered = make([]Word, 0, len(pool))
		for _, w := range pool {
			if w.Difficulty <= HardThreshold {
				filtered = append(filtered, w)
			}
		}
	}

	if len(filtered) < preset.Count {
		return nil, ErrInsufficientWords
	}

	picked := make([]Word, len(filtered))
	copy(picked, filtered)
	Shuffle(picked)

	return picked[:preset.Count], nil
}

// Shuffle randomizes order in place.
func Shuffle(words []Word) {
	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
