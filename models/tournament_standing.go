package models

// Standing is a ranked row of the standings table. It is derived from
// Participant on read and never stored.
type Standing struct {
	Rank          int    `json:"rank"`
	ParticipantID int    `json:"id"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	Points        int    `json:"points"`
}

// StandingsFromParticipants ranks participants that are already ordered.
func StandingsFromParticipants(participants []*Participant) []Standing {
	standings := make([]Standing, 0, len(participants))
	for _, p := range participants {
		if p == nil {
			continue
		}
		standings = append(standings, Standing{
			Rank:          len(standings) + 1,
			ParticipantID: p.ID,
			Name:          p.Name,
			Wins:          p.WinCount,
			Losses:        p.LossCount,
			Draws:         p.DrawCount,
			Points:        p.Points,
		})
	}
	return standings
}
