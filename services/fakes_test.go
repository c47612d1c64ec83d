package services

import (
	"context"
	"sort"
	"sync"

	"github.com/Dosada05/swiss-tables/models"
	"github.com/Dosada05/swiss-tables/realtime"
	"github.com/Dosada05/swiss-tables/repositories"
)

// fakeTx runs the callback directly with a nil executor.
type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.calls++
	return fn(nil)
}

// memStore backs every fake repository. Reads hand out copies so services
// only see their writes after calling the repository.
type memStore struct {
	mu           sync.Mutex
	participants map[int]models.Participant
	rounds       map[int]models.Round
	tables       map[int]models.Table
	results      map[int]models.MatchResult
	nextID       int
	locks        int
}

func newMemStore() *memStore {
	return &memStore{
		participants: make(map[int]models.Participant),
		rounds:       make(map[int]models.Round),
		tables:       make(map[int]models.Table),
		results:      make(map[int]models.MatchResult),
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) addParticipant(name string, points, wins int) *models.Participant {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := models.Participant{ID: m.id(), Name: name, Points: points, WinCount: wins}
	m.participants[p.ID] = p
	return &p
}

func (m *memStore) addTable(roundID, number int, playerIDs ...int) *models.Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := models.Table{ID: m.id(), RoundID: roundID, TableNumber: number, PlayerIDs: append([]int(nil), playerIDs...)}
	m.tables[t.ID] = t
	return &t
}

func (m *memStore) addRound(number int) *models.Round {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := models.Round{ID: m.id(), RoundNumber: number}
	m.rounds[r.ID] = r
	return &r
}

func (m *memStore) participant(id int) models.Participant {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.participants[id]
}

func (m *memStore) table(id int) models.Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tables[id]
}

func (m *memStore) resultsFor(tableID int) []models.MatchResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.MatchResult
	for _, r := range m.results {
		if r.TableID == tableID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeParticipantRepo struct{ m *memStore }

func (r fakeParticipantRepo) Create(ctx context.Context, exec repositories.SQLExecutor, p *models.Participant) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p.ID = r.m.id()
	r.m.participants[p.ID] = *p
	return nil
}

func (r fakeParticipantRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Participant, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.participants[id]
	if !ok {
		return nil, repositories.ErrParticipantNotFound
	}
	return &p, nil
}

func (r fakeParticipantRepo) List(ctx context.Context, exec repositories.SQLExecutor) ([]*models.Participant, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*models.Participant, 0, len(r.m.participants))
	for _, p := range r.m.participants {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r fakeParticipantRepo) ListStandings(ctx context.Context, exec repositories.SQLExecutor) ([]*models.Participant, error) {
	out, _ := r.List(ctx, exec)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].WinCount != out[j].WinCount {
			return out[i].WinCount > out[j].WinCount
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r fakeParticipantRepo) UpdateStats(ctx context.Context, exec repositories.SQLExecutor, p *models.Participant) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.participants[p.ID]; !ok {
		return repositories.ErrParticipantNotFound
	}
	r.m.participants[p.ID] = *p
	return nil
}

func (r fakeParticipantRepo) Delete(ctx context.Context, exec repositories.SQLExecutor, id int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.participants[id]; !ok {
		return repositories.ErrParticipantNotFound
	}
	delete(r.m.participants, id)
	for rid, res := range r.m.results {
		if res.PlayerID == id {
			delete(r.m.results, rid)
		}
	}
	return nil
}

func (r fakeParticipantRepo) DeleteAll(ctx context.Context, exec repositories.SQLExecutor) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.participants = make(map[int]models.Participant)
	return nil
}

type fakeRoundRepo struct{ m *memStore }

func (r fakeRoundRepo) Create(ctx context.Context, exec repositories.SQLExecutor, round *models.Round) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if round.RoundNumber <= 0 {
		return repositories.ErrRoundNumberInvalid
	}
	for _, existing := range r.m.rounds {
		if existing.RoundNumber == round.RoundNumber {
			return repositories.ErrRoundNumberConflict
		}
	}
	round.ID = r.m.id()
	r.m.rounds[round.ID] = *round
	return nil
}

func (r fakeRoundRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Round, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	round, ok := r.m.rounds[id]
	if !ok {
		return nil, repositories.ErrRoundNotFound
	}
	return &round, nil
}

func (r fakeRoundRepo) GetByNumber(ctx context.Context, exec repositories.SQLExecutor, number int) (*models.Round, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, round := range r.m.rounds {
		if round.RoundNumber == number {
			round := round
			return &round, nil
		}
	}
	return nil, repositories.ErrRoundNotFound
}

func (r fakeRoundRepo) GetLatest(ctx context.Context, exec repositories.SQLExecutor) (*models.Round, error) {
	rounds, _ := r.List(ctx, exec)
	if len(rounds) == 0 {
		return nil, repositories.ErrRoundNotFound
	}
	return rounds[0], nil
}

func (r fakeRoundRepo) List(ctx context.Context, exec repositories.SQLExecutor) ([]*models.Round, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]*models.Round, 0, len(r.m.rounds))
	for _, round := range r.m.rounds {
		round := round
		out = append(out, &round)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoundNumber > out[j].RoundNumber })
	return out, nil
}

func (r fakeRoundRepo) LockGeneration(ctx context.Context, exec repositories.SQLExecutor) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.locks++
	return nil
}

func (r fakeRoundRepo) DeleteAll(ctx context.Context, exec repositories.SQLExecutor) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.rounds = make(map[int]models.Round)
	return nil
}

type fakeTableRepo struct{ m *memStore }

func (r fakeTableRepo) Create(ctx context.Context, exec repositories.SQLExecutor, table *models.Table) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.rounds[table.RoundID]; !ok {
		return repositories.ErrTableRoundInvalid
	}
	for _, existing := range r.m.tables {
		if existing.RoundID == table.RoundID && existing.TableNumber == table.TableNumber {
			return repositories.ErrTableNumberConflict
		}
	}
	table.ID = r.m.id()
	stored := *table
	stored.PlayerIDs = append([]int(nil), table.PlayerIDs...)
	r.m.tables[table.ID] = stored
	return nil
}

func (r fakeTableRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Table, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.tables[id]
	if !ok {
		return nil, repositories.ErrTableNotFound
	}
	t.PlayerIDs = append([]int(nil), t.PlayerIDs...)
	return &t, nil
}

func (r fakeTableRepo) GetByIDForUpdate(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Table, error) {
	return r.GetByID(ctx, exec, id)
}

func (r fakeTableRepo) ListByRound(ctx context.Context, exec repositories.SQLExecutor, roundID int) ([]*models.Table, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*models.Table
	for _, t := range r.m.tables {
		if t.RoundID == roundID {
			t := t
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TableNumber < out[j].TableNumber })
	return out, nil
}

func (r fakeTableRepo) ListHistoryBefore(ctx context.Context, exec repositories.SQLExecutor, roundNumber int) ([]models.SeatHistory, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.SeatHistory
	for _, t := range r.m.tables {
		round, ok := r.m.rounds[t.RoundID]
		if !ok || round.RoundNumber >= roundNumber {
			continue
		}
		out = append(out, models.SeatHistory{
			RoundNumber: round.RoundNumber,
			PlayerIDs:   append([]int(nil), t.PlayerIDs...),
		})
	}
	return out, nil
}

func (r fakeTableRepo) SetResultJSON(ctx context.Context, exec repositories.SQLExecutor, id int, resultJSON string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.tables[id]
	if !ok {
		return repositories.ErrTableNotFound
	}
	marker := resultJSON
	t.ResultJSON = &marker
	r.m.tables[id] = t
	return nil
}

func (r fakeTableRepo) RemovePlayer(ctx context.Context, exec repositories.SQLExecutor, playerID int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for id, t := range r.m.tables {
		kept := make([]int, 0, len(t.PlayerIDs))
		for _, pid := range t.PlayerIDs {
			if pid != playerID {
				kept = append(kept, pid)
			}
		}
		t.PlayerIDs = kept
		r.m.tables[id] = t
	}
	return nil
}

func (r fakeTableRepo) DeleteAll(ctx context.Context, exec repositories.SQLExecutor) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.tables = make(map[int]models.Table)
	return nil
}

type fakeResultRepo struct{ m *memStore }

func (r fakeResultRepo) Create(ctx context.Context, exec repositories.SQLExecutor, result *models.MatchResult) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.results {
		if existing.TableID == result.TableID && existing.PlayerID == result.PlayerID {
			return repositories.ErrResultConflict
		}
	}
	result.ID = r.m.id()
	r.m.results[result.ID] = *result
	return nil
}

func (r fakeResultRepo) ListByTable(ctx context.Context, exec repositories.SQLExecutor, tableID int) ([]*models.MatchResult, error) {
	rows := r.m.resultsFor(tableID)
	out := make([]*models.MatchResult, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r fakeResultRepo) DeleteByTable(ctx context.Context, exec repositories.SQLExecutor, tableID int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for id, res := range r.m.results {
		if res.TableID == tableID {
			delete(r.m.results, id)
		}
	}
	return nil
}

func (r fakeResultRepo) DeleteAll(ctx context.Context, exec repositories.SQLExecutor) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.results = make(map[int]models.MatchResult)
	return nil
}

type recordingHub struct {
	mu       sync.Mutex
	messages []realtime.Message
}

func (h *recordingHub) BroadcastToRoom(roomID string, message interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if msg, ok := message.(realtime.Message); ok {
		h.messages = append(h.messages, msg)
	}
}

func (h *recordingHub) types() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.messages))
	for _, m := range h.messages {
		out = append(out, m.Type)
	}
	return out
}

type fixture struct {
	store *memStore
	tx    *fakeTx
	hub   *recordingHub

	participants repositories.ParticipantRepository
	rounds       repositories.RoundRepository
	tables       repositories.TableRepository
	results      repositories.ResultRepository
}

func newFixture() *fixture {
	m := newMemStore()
	return &fixture{
		store:        m,
		tx:           &fakeTx{},
		hub:          &recordingHub{},
		participants: fakeParticipantRepo{m: m},
		rounds:       fakeRoundRepo{m: m},
		tables:       fakeTableRepo{m: m},
		results:      fakeResultRepo{m: m},
	}
}

func (f *fixture) roundService() RoundService {
	return NewRoundService(f.tx, f.participants, f.rounds, f.tables, nil, f.hub, nil)
}

func (f *fixture) resultService() ResultService {
	return NewResultService(f.tx, f.participants, f.tables, f.results, f.hub, nil)
}

func (f *fixture) participantService() ParticipantService {
	return NewParticipantService(f.tx, f.participants, f.rounds, f.tables, f.results, f.hub, nil)
}
