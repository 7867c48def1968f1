package brackets

import "fmt"

// EliminationGenerator pairs seeded teams for a knockout stage. Seeds
// come from the classification standings, best first.
//
// When the seed count is a positive multiple of 4 the teams are snake
// seeded into pods of 4 (row 1 ascending pod index, row 2 descending,
// row 3 ascending, row 4 descending) and each pod pairs 1v4 and 2v3,
// so pod 1 holds both the strongest and the weakest qualifier.
// Any other count falls back to sequential adjacent pairing.
type EliminationGenerator struct{}

func NewEliminationGenerator() Generator {
	return &EliminationGenerator{}
}

func (g *EliminationGenerator) Name() string {
	return "Elimination"
}

func (g *EliminationGenerator) Generate(params Params) (*Result, error) {
	if !params.Phase.Elimination() {
		return nil, fmt.Errorf("elimination: phase %q is not a knockout stage", params.Phase)
	}
	if len(params.Seeds) < 2 {
		return nil, fmt.Errorf("elimination: not enough qualifiers (found %d, min 2 required)", len(params.Seeds))
	}

	var pairs [][2]string
	if len(params.Seeds) >= 4 && len(params.Seeds)%4 == 0 {
		for _, pod := range SeedPods(params.Seeds) {
			pairs = append(pairs, [2]string{pod[0], pod[3]}, [2]string{pod[1], pod[2]})
		}
	} else {
		for i := 0; i+1 < len(params.Seeds); i += 2 {
			pairs = append(pairs, [2]string{params.Seeds[i], params.Seeds[i+1]})
		}
	}

	result := &Result{}
	for _, pair := range pairs {
		result.Matches = append(result.Matches,
			newMatch(params.CategoryID, params.Phase, pair[0], pair[1], params.PeriodMs))
	}
	return result, nil
}

// SeedPods distributes seeds into pods of 4 in snake order. len(seeds)
// must be a positive multiple of 4.
func SeedPods(seeds []string) [][]string {
	count := len(seeds) / 4
	pods := make([][]string, count)
	for row := 0; row < 4; row++ {
		for p := 0; p < count; p++ {
			target := p
			if row%2 == 1 {
				target = count - 1 - p
			}
			pods[target] = append(pods[target], seeds[row*count+p])
		}
	}
	return pods
}
