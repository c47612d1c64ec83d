package models

// MatchResult is one player's outcome at one table.
type MatchResult struct {
	ID       int `json:"id" db:"id"`
	TableID  int `json:"table_id" db:"table_id"`
	PlayerID int `json:"player_id" db:"player_id"`
	Win      int `json:"win" db:"win"`
	Loss     int `json:"loss" db:"loss"`
	Draw     int `json:"draw" db:"draw"`
	Points   int `json:"points" db:"points"`
}
