package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tableOf(resultJSON *string, seats ...int) Table {
	return Table{ID: 1, RoundID: 1, TableNumber: 1, PlayerIDs: seats, ResultJSON: resultJSON}
}

func TestTable_StatusFromMarker(t *testing.T) {
	marker := `[]`

	assert.False(t, tableOf(nil, 1, 2).Completed())
	assert.Equal(t, StatusScheduled, tableOf(nil, 1, 2).Status())

	assert.True(t, tableOf(&marker, 1, 2).Completed())
	assert.Equal(t, MatchStatusCompleted, tableOf(&marker, 1, 2).Status())
}

func TestTable_HasPlayer(t *testing.T) {
	assert.True(t, tableOf(nil, 1, 2, 3, 4, 5).HasPlayer(5))
	assert.False(t, tableOf(nil, 1, 2).HasPlayer(3))
}
