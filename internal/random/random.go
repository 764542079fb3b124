package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Letters returns a cryptographically random string of n letters.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(allowedLetters))))
		if err != nil {
			return "", err
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}

// IntBetween returns a uniform random integer in the closed interval [low, high].
//
// The fallback engines draw their delta magnitudes from closed intervals, so the
// bounds are inclusive on both ends. Panics when low > high.
func IntBetween(low, high int) int {
	if low > high {
		panic("random: IntBetween called with low > high")
	}
	return low + mathrand.Intn(high-low+1)
}

// Sample returns k elements drawn uniformly at random without replacement.
//
// When k exceeds the length of items, all items are returned in random order.
// The input slice is not modified.
func Sample[T any](items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	mathrand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:k]
}
