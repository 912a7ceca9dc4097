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

// PickErrorStatus maps an error mode to the HTTP status injected for it.
func PickErrorStatus(mode string) int {
	switch mode {
	case "429":
		return 429
	case "500":
		return 500
	default:
		// mixed
		if RandIntn(2) == 0 {
			return 429
		}
		return 500
	}
}

// Trim shortens s to at most n runes for log output.
func Trim(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n]) + "…"
}
