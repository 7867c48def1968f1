package brackets

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/luismarketmedia/dash-fut/models"
)

// byeSlot pads an odd team count; pairings containing it are dropped.
const byeSlot = "_BYE_"

// RoundRobinGenerator schedules the classification stage: teams are
// split into pools of at most poolSize, each pool plays a circle-method
// round robin, and every team gets its pool letter ("A", "B", ...).
type RoundRobinGenerator struct {
	rnd      *rand.Rand
	poolSize int
}

func NewRoundRobinGenerator(rnd *rand.Rand, poolSize int) Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if poolSize < 2 {
		poolSize = 4
	}
	return &RoundRobinGenerator{rnd: rnd, poolSize: poolSize}
}

func (g *RoundRobinGenerator) Name() string {
	return "RoundRobin"
}

func (g *RoundRobinGenerator) Generate(params Params) (*Result, error) {
	if len(params.Teams) < 2 {
		return nil, fmt.Errorf("round robin: not enough teams (found %d, min 2 required)", len(params.Teams))
	}

	ids := make([]string, len(params.Teams))
	for i, t := range params.Teams {
		ids[i] = t.ID
	}
	g.rnd.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	pools := g.splitPools(ids)
	groups := make(map[string]string, len(ids))
	for p, pool := range pools {
		label := poolLabel(p)
		for _, id := range pool {
			groups[id] = label
		}
	}

	result := &Result{Groups: groups}

	// Unordered-pair guard. Regeneration clears the phase first, so the
	// guard only protects a single pass against duplicate pairings.
	seen := make(map[string]bool)
	for _, pool := range pools {
		for _, round := range g.circleRounds(pool) {
			for _, pair := range round {
				key := pairKey(pair[0], pair[1])
				if seen[key] {
					continue
				}
				seen[key] = true
				result.Matches = append(result.Matches,
					newMatch(params.CategoryID, models.PhaseGroup, pair[0], pair[1], params.PeriodMs))
			}
		}
	}
	return result, nil
}

// splitPools deals the shuffled ids round-robin into ceil(n/poolSize)
// pools, so pool sizes differ by at most one.
func (g *RoundRobinGenerator) splitPools(ids []string) [][]string {
	count := (len(ids) + g.poolSize - 1) / g.poolSize
	pools := make([][]string, count)
	for i, id := range ids {
		pools[i%count] = append(pools[i%count], id)
	}
	return pools
}

// circleRounds runs the standard circle method: pad to even with a bye,
// pair i with n-1-i for n-1 rounds, rotating everything but the first
// slot between rounds. Game order within a round is shuffled for
// display variety.
func (g *RoundRobinGenerator) circleRounds(pool []string) [][][2]string {
	arr := append([]string(nil), pool...)
	if len(arr)%2 != 0 {
		arr = append(arr, byeSlot)
	}
	n := len(arr)

	rounds := make([][][2]string, 0, n-1)
	for r := 0; r < n-1; r++ {
		var round [][2]string
		for i := 0; i < n/2; i++ {
			a, b := arr[i], arr[n-1-i]
			if a != byeSlot && b != byeSlot {
				round = append(round, [2]string{a, b})
			}
		}
		g.rnd.Shuffle(len(round), func(i, j int) { round[i], round[j] = round[j], round[i] })
		rounds = append(rounds, round)

		rest := append([]string(nil), arr[1:]...)
		last := rest[len(rest)-1]
		copy(rest[1:], rest[:len(rest)-1])
		rest[0] = last
		arr = append(arr[:1], rest...)
	}
	return rounds
}

// poolLabel turns 0 -> "A", 1 -> "B", 25 -> "Z", 26 -> "AA".
func poolLabel(i int) string {
	label := ""
	for {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			return label
		}
	}
}
