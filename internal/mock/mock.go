package mock

import (
	"math/rand"
	"sync"
	"time"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

var rngMu sync.Mutex

func RandIntn(n int) int {
	if n <= 0 {
		return 0
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

func RandFloat64() float64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Float64()
}

const idSuffixLen = 12

// NewID returns an opaque resource ID: the kind prefix followed by a random
// lowercase alphanumeric suffix. Collisions are statistically negligible for a
// mock server's process lifetime and are not guarded against.
func NewID(prefix string) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, idSuffixLen)
	for i := range b {
		b[i] = letters[RandIntn(len(letters))]
	}
	return prefix + string(b)
}
