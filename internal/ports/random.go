package ports

import (
	"math/rand/v2"

	"github.com/bnema/flowers-cli/internal/domain"
)

// SystemRandom draws from the process-wide generator.
type SystemRandom struct{}

var _ domain.IndexPicker = SystemRandom{}

func (SystemRandom) IntN(n int) int {
	return rand.IntN(n)
}

// SeededRandom returns a deterministic generator for reproducible runs.
func SeededRandom(seed uint64) domain.IndexPicker {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
