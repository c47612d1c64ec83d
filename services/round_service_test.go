package services

import (
	"context"
	"sort"
	"testing"

	"github.com/Dosada05/swiss-tables/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatedIDs(t *testing.T, generated *GeneratedRound) []int {
	t.Helper()
	var ids []int
	for _, table := range generated.Tables {
		ids = append(ids, table.PlayerIDs...)
	}
	sort.Ints(ids)
	return ids
}

func TestGenerateNextRound_NumbersRoundsSequentially(t *testing.T) {
	f := newFixture()
	for _, name := range []string{"Ann", "Bob", "Cid", "Dee"} {
		f.store.addParticipant(name, 0, 0)
	}
	svc := f.roundService()
	ctx := context.Background()

	first, err := svc.GenerateNextRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Round.RoundNumber)

	second, err := svc.GenerateNextRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Round.RoundNumber)

	assert.Equal(t, 2, f.store.locks)
	assert.Equal(t, []string{realtime.MessageRoundGenerated, realtime.MessageRoundGenerated}, f.hub.types())
}

func TestGenerateNextRound_FivePlayersAllSeatedOnce(t *testing.T) {
	f := newFixture()
	var want []int
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		want = append(want, f.store.addParticipant(name, 0, 0).ID)
	}

	generated, err := f.roundService().GenerateNextRound(context.Background())
	require.NoError(t, err)

	require.Len(t, generated.Tables, 1)
	assert.Len(t, generated.Tables[0].PlayerIDs, 5)
	assert.Equal(t, want, seatedIDs(t, generated))

	stored := f.store.table(generated.Tables[0].ID)
	assert.Len(t, stored.PlayerIDs, 5, "the overflow seat must be persisted")
}

func TestGenerateNextRound_SeatsEveryPlayer(t *testing.T) {
	f := newFixture()
	var want []int
	points := []int{9, 9, 9, 6, 6, 6, 6, 3, 0, 0, 0}
	for i, p := range points {
		want = append(want, f.store.addParticipant(string(rune('a'+i)), p, 0).ID)
	}

	generated, err := f.roundService().GenerateNextRound(context.Background())
	require.NoError(t, err)

	assert.Equal(t, want, seatedIDs(t, generated))
	for i, table := range generated.Tables {
		assert.Equal(t, i+1, table.TableNumber)
		assert.Equal(t, generated.Round.ID, table.RoundID)
		assert.False(t, table.Completed())
	}
}

func TestGenerateNextRound_NoParticipants(t *testing.T) {
	f := newFixture()

	_, err := f.roundService().GenerateNextRound(context.Background())
	require.ErrorIs(t, err, ErrNoParticipants)

	rounds, err := f.rounds.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rounds)
	assert.Empty(t, f.hub.types())
}

func TestCreateRound(t *testing.T) {
	f := newFixture()
	svc := f.roundService()
	ctx := context.Background()

	created, err := svc.CreateRound(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, created.RoundNumber)

	again, err := svc.CreateRound(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	for _, n := range []int{0, -1} {
		_, err := svc.CreateRound(ctx, n)
		assert.ErrorIs(t, err, ErrValidationFailed)
	}
}

func TestGetCurrentRound(t *testing.T) {
	f := newFixture()
	svc := f.roundService()
	ctx := context.Background()

	empty, err := svc.GetCurrentRound(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty.Round)
	assert.Empty(t, empty.Tables)

	ann := f.store.addParticipant("Ann", 0, 0)
	bob := f.store.addParticipant("Bob", 0, 0)
	_, err = svc.GenerateNextRound(ctx)
	require.NoError(t, err)

	current, err := svc.GetCurrentRound(ctx)
	require.NoError(t, err)
	require.NotNil(t, current.Round)
	assert.Equal(t, 1, current.Round.RoundNumber)
	require.Len(t, current.Tables, 1)

	players := current.Tables[0].Players
	require.Len(t, players, 2)
	assert.Equal(t, ann.ID, *players[0].ID)
	assert.Equal(t, "Ann", players[0].Name)
	assert.Equal(t, bob.ID, *players[1].ID)
}

func TestGetRoundTables(t *testing.T) {
	f := newFixture()
	svc := f.roundService()
	ctx := context.Background()

	_, err := svc.GetRoundTables(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	round := f.store.addRound(1)
	f.store.addTable(round.ID, 2, 7)
	f.store.addTable(round.ID, 1, 8, 9)

	view, err := svc.GetRoundTables(ctx, round.ID)
	require.NoError(t, err)
	require.Len(t, view.Tables, 2)
	assert.Equal(t, 1, view.Tables[0].TableNumber)
	for _, player := range view.Tables[1].Players {
		assert.Nil(t, player.ID)
		assert.Equal(t, "TBD", player.Name)
	}
}

func TestListRounds(t *testing.T) {
	f := newFixture()
	f.store.addRound(1)
	f.store.addRound(2)

	rounds, err := f.roundService().ListRounds(context.Background())
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, 2, rounds[0].RoundNumber)
}
