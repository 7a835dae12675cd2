package challenge

import (
	"math/rand"
	"sync"
	"time"

	"github.com/unhappychoice/gittype/internal/chunk"
)

// StageRepository holds the generated Challenge set indexed by difficulty
// and supports uniform, optionally-seeded random selection for stage
// assignment. Shared via a read-write lock per spec §5 ("StageRepository
// and Stores... mutations are infrequent writes; reads dominate").
type StageRepository struct {
	mu      sync.RWMutex
	byLevel map[chunk.Difficulty][]Challenge
}

func NewStageRepository() *StageRepository {
	return &StageRepository{byLevel: make(map[chunk.Difficulty][]Challenge)}
}

// BuildDifficultyIndices populates the repository from a flat challenge
// list, grouping by DifficultyLevel. This is the operation the original
// implementation reached via a downcast to a concrete StageRepository type
// (spec §9 redesign flag); here it is simply an exported method on the
// concrete *StageRepository every caller already holds.
func (r *StageRepository) BuildDifficultyIndices(challenges []Challenge) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byLevel = make(map[chunk.Difficulty][]Challenge)
	for _, c := range challenges {
		r.byLevel[c.DifficultyLevel] = append(r.byLevel[c.DifficultyLevel], c)
	}
}

// ForDifficulty returns every challenge generated at the given difficulty.
func (r *StageRepository) ForDifficulty(d chunk.Difficulty) []Challenge {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Challenge, len(r.byLevel[d]))
	copy(out, r.byLevel[d])
	return out
}

// Count reports how many challenges exist at the given difficulty.
func (r *StageRepository) Count(d chunk.Difficulty) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byLevel[d])
}

// SelectStages picks n challenges at the given difficulty uniformly at
// random without replacement, seeded when seed != 0 so the same seed over
// an unchanged challenge set reproduces the same order.
func (r *StageRepository) SelectStages(d chunk.Difficulty, n int, seed int64) []Challenge {
	pool := r.ForDifficulty(d)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// Generate splits every chunk across every difficulty it qualifies for
// and returns the resulting Challenge set (spec §4.4's "for each kept chunk
// per difficulty, generate one Challenge").
func Generate(chunks []chunk.Chunk) []Challenge {
	var out []Challenge
	for _, c := range chunks {
		for _, d := range ApplicableDifficulties(c) {
			if ch, ok := Split(c, d); ok {
				out = append(out, ch)
			}
		}
	}
	return out
}
