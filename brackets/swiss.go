package brackets

import (
	"context"
	"fmt"
	"sort"
)

// SwissGenerator pairs players into tables of up to four, grouping them by
// point total and avoiding players who already met.
//
// Within a point group every 4-subset of the unpaired members is scored, so
// each extraction costs C(n,4) for a group of n. That is fine for the table
// counts of a club tournament but does not scale to large open events.
type SwissGenerator struct{}

func NewSwissGenerator() TableGenerator {
	return &SwissGenerator{}
}

func (g *SwissGenerator) GetName() string {
	return "Swiss"
}

func (g *SwissGenerator) Generate(ctx context.Context, params GenerateParams) ([]TablePairing, error) {
	if params.RoundNumber <= 0 {
		return nil, fmt.Errorf("SwissGenerator: round number must be positive, got %d", params.RoundNumber)
	}
	return PairSwiss(params.Standings, params.History, params.RoundNumber), nil
}

// PairSwiss is the pairing algorithm itself. It has no side effects.
//
// Players sharing a point total are seated together, four at a time, picking
// the foursome with the fewest pairs that already met. A point group that
// ends with three or two players seats them as a short table; a single
// leftover is deferred. Deferred players are then seated across groups in
// standings order. A final lone player joins the last table as a fifth seat,
// or sits alone if no table exists.
func PairSwiss(standings []Standing, history OpponentHistory, roundNumber int) []TablePairing {
	if history == nil {
		history = noHistory{}
	}
	p := &pairer{
		history:     history,
		roundNumber: roundNumber,
		opponents:   make(map[int]map[int]struct{}),
	}

	groups := make(map[int][]int)
	pointValues := make([]int, 0)
	order := make([]int, 0, len(standings))
	seen := make(map[int]bool, len(standings))
	for _, s := range standings {
		if seen[s.ParticipantID] {
			continue
		}
		seen[s.ParticipantID] = true
		order = append(order, s.ParticipantID)
		if _, ok := groups[s.Points]; !ok {
			pointValues = append(pointValues, s.Points)
		}
		groups[s.Points] = append(groups[s.Points], s.ParticipantID)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pointValues)))

	tables := make([][]int, 0, len(order)/4+1)
	deferred := make(map[int]bool)

	for _, points := range pointValues {
		remaining := append([]int(nil), groups[points]...)
		for len(remaining) >= 4 {
			best := p.bestFour(remaining)
			table := make([]int, 0, 4)
			picked := make(map[int]bool, 4)
			for _, i := range best {
				table = append(table, remaining[i])
				picked[i] = true
			}
			tables = append(tables, table)

			rest := make([]int, 0, len(remaining)-4)
			for i, id := range remaining {
				if !picked[i] {
					rest = append(rest, id)
				}
			}
			remaining = rest
		}

		switch len(remaining) {
		case 2, 3:
			tables = append(tables, remaining)
		case 1:
			deferred[remaining[0]] = true
		}
	}

	leftovers := make([]int, 0, len(deferred))
	for _, id := range order {
		if deferred[id] {
			leftovers = append(leftovers, id)
		}
	}

	for len(leftovers) >= 4 {
		tables = append(tables, append([]int(nil), leftovers[:4]...))
		leftovers = leftovers[4:]
	}

	switch len(leftovers) {
	case 2, 3:
		tables = append(tables, append([]int(nil), leftovers...))
	case 1:
		if len(tables) > 0 {
			last := len(tables) - 1
			tables[last] = append(tables[last], leftovers[0])
		} else {
			tables = append(tables, []int{leftovers[0]})
		}
	}

	pairings := make([]TablePairing, len(tables))
	for i, t := range tables {
		pairings[i] = TablePairing{TableNumber: i + 1, PlayerIDs: t}
	}
	return pairings
}

type pairer struct {
	history     OpponentHistory
	roundNumber int
	opponents   map[int]map[int]struct{}
}

func (p *pairer) priorOpponents(playerID int) map[int]struct{} {
	if o, ok := p.opponents[playerID]; ok {
		return o
	}
	o := p.history.PriorOpponents(playerID, p.roundNumber)
	p.opponents[playerID] = o
	return o
}

func (p *pairer) met(a, b int) bool {
	_, ok := p.priorOpponents(a)[b]
	return ok
}

// collisions counts the pairs inside a candidate table that already met.
func (p *pairer) collisions(ids [4]int) int {
	count := 0
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if p.met(ids[i], ids[j]) {
				count++
			}
		}
	}
	return count
}

// bestFour returns the indices into group of the first foursome, in
// lexicographic index order, with the minimal collision count.
// len(group) must be at least 4.
func (p *pairer) bestFour(group []int) [4]int {
	n := len(group)
	best := [4]int{0, 1, 2, 3}
	bestCount := -1
	for a := 0; a < n-3; a++ {
		for b := a + 1; b < n-2; b++ {
			for c := b + 1; c < n-1; c++ {
				for d := c + 1; d < n; d++ {
					count := p.collisions([4]int{group[a], group[b], group[c], group[d]})
					if bestCount < 0 || count < bestCount {
						best = [4]int{a, b, c, d}
						bestCount = count
						if count == 0 {
							return best
						}
					}
				}
			}
		}
	}
	return best
}
