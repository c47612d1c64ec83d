package brackets

import "github.com/Dosada05/swiss-tables/models"

type pastTable struct {
	roundNumber int
	playerIDs   []int
}

// OpponentIndex is an in-memory OpponentHistory built from earlier seatings.
type OpponentIndex struct {
	byPlayer map[int][]pastTable
}

func NewOpponentIndex(history []models.SeatHistory) *OpponentIndex {
	idx := &OpponentIndex{byPlayer: make(map[int][]pastTable)}
	for _, h := range history {
		t := pastTable{roundNumber: h.RoundNumber, playerIDs: h.PlayerIDs}
		for _, pid := range h.PlayerIDs {
			idx.byPlayer[pid] = append(idx.byPlayer[pid], t)
		}
	}
	return idx
}

func (idx *OpponentIndex) PriorOpponents(playerID, roundNumber int) map[int]struct{} {
	opponents := make(map[int]struct{})
	for _, t := range idx.byPlayer[playerID] {
		if t.roundNumber >= roundNumber {
			continue
		}
		for _, pid := range t.playerIDs {
			if pid != playerID {
				opponents[pid] = struct{}{}
			}
		}
	}
	return opponents
}

type noHistory struct{}

func (noHistory) PriorOpponents(int, int) map[int]struct{} { return nil }
