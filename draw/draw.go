package draw

import (
	"math/rand"
	"time"

	"github.com/luismarketmedia/dash-fut/models"
)

// reservedSlots: each team may carry up to two players beyond one per
// base position.
const reservedSlots = 2

// Engine partitions a player pool across teams. Randomness comes from
// the injected source so tests can seed it.
type Engine struct {
	rnd *rand.Rand
}

func NewEngine(rnd *rand.Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rnd: rnd}
}

type Options struct {
	PaidOnly bool
}

// Draw assigns players to the given teams honoring positional
// diversity, per-team targets and fairness:
//
//  1. one player per base position per team, processing positions in
//     canonical order and rotating the starting team per position so no
//     team is systematically favored;
//  2. non-goalkeeper leftovers filled round-robin across teams that
//     have not reached their target of min(capacity, positions+2);
//  3. a balancing pass that moves non-goalkeepers from the fullest to
//     the emptiest team until counts differ by at most 1 or no legal
//     move remains.
//
// The returned map holds a bucket for every team passed in, even when
// empty. Zero teams yields nil.
func (e *Engine) Draw(players []models.Player, teams []models.Team, opts Options) models.Assignments {
	if len(teams) == 0 {
		return nil
	}

	pool := players
	if opts.PaidOnly {
		pool = make([]models.Player, 0, len(players))
		for _, p := range players {
			if p.Paid {
				pool = append(pool, p)
			}
		}
	}

	result := make(models.Assignments, len(teams))
	for _, t := range teams {
		result[t.ID] = []string{}
	}
	used := make(map[string]bool, len(pool))

	byPos := make(map[models.Position][]models.Player)
	for _, p := range pool {
		byPos[p.Position] = append(byPos[p.Position], p)
	}
	for pos := range byPos {
		e.shufflePlayers(byPos[pos])
	}

	target := make(map[string]int, len(teams))
	for _, t := range teams {
		target[t.ID] = min(t.Capacity, len(models.BasePositions)+reservedSlots)
	}

	// Mandatory roles: one per position per team while the pool lasts.
	for posIndex, pos := range models.BasePositions {
		candidates := byPos[pos]
		i := 0
		for j := 0; j < len(teams); j++ {
			team := teams[(j+posIndex)%len(teams)]
			if len(result[team.ID]) >= target[team.ID] {
				continue
			}
			for i < len(candidates) && used[candidates[i].ID] {
				i++
			}
			if i >= len(candidates) {
				break
			}
			result[team.ID] = append(result[team.ID], candidates[i].ID)
			used[candidates[i].ID] = true
			i++
		}
	}

	// Reserves: non-goalkeepers only, dealt round-robin to teams still
	// under target.
	reserves := make([]models.Player, 0, len(pool))
	for _, p := range pool {
		if p.Position != models.PositionGoalkeeper && !used[p.ID] {
			reserves = append(reserves, p)
		}
	}
	e.shufflePlayers(reserves)

	ti := 0
	for _, p := range reserves {
		for attempts := 0; attempts < len(teams); attempts++ {
			team := teams[ti%len(teams)]
			ti++
			if len(result[team.ID]) < target[team.ID] {
				result[team.ID] = append(result[team.ID], p.ID)
				used[p.ID] = true
				break
			}
		}
	}

	e.rebalance(result, teams, target, positionIndex(pool), len(pool))
	return result
}

// rebalance moves one non-goalkeeper at a time from the fullest team
// holding a movable player to the emptiest team under its target, until
// the spread is at most 1 or no legal move exists. Each successful move
// strictly narrows the spread and no player needs to move twice, so one
// iteration per player bounds the pass; the bound only matters for
// pathological pools where every movable candidate is a goalkeeper.
func (e *Engine) rebalance(result models.Assignments, teams []models.Team, target map[string]int, posOf map[string]models.Position, playerCount int) {
	for iter := 0; iter <= playerCount; iter++ {
		recv := ""
		for _, t := range teams {
			if len(result[t.ID]) >= target[t.ID] {
				continue
			}
			if recv == "" || len(result[t.ID]) < len(result[recv]) {
				recv = t.ID
			}
		}
		if recv == "" {
			return
		}

		donor, donorAt := "", -1
		for _, t := range teams {
			if t.ID == recv {
				continue
			}
			at := lastMovable(result[t.ID], posOf)
			if at < 0 {
				continue
			}
			if donor == "" || len(result[t.ID]) > len(result[donor]) {
				donor, donorAt = t.ID, at
			}
		}
		if donor == "" || len(result[donor])-len(result[recv]) <= 1 {
			return
		}

		moved := result[donor][donorAt]
		result[donor] = append(result[donor][:donorAt], result[donor][donorAt+1:]...)
		result[recv] = append(result[recv], moved)
	}
}

// lastMovable returns the index of the last non-goalkeeper in the
// bucket, or -1. Goalkeepers stay where the draw put them.
func lastMovable(bucket []string, posOf map[string]models.Position) int {
	for i := len(bucket) - 1; i >= 0; i-- {
		if posOf[bucket[i]] != models.PositionGoalkeeper {
			return i
		}
	}
	return -1
}

func positionIndex(players []models.Player) map[string]models.Position {
	out := make(map[string]models.Position, len(players))
	for _, p := range players {
		out[p.ID] = p.Position
	}
	return out
}

// shufflePlayers is a Fisher–Yates shuffle on the engine's source.
func (e *Engine) shufflePlayers(players []models.Player) {
	e.rnd.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
