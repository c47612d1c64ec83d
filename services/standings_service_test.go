package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Dosada05/swiss-tables/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeUploader struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (u *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.key, u.contentType, u.body = key, contentType, body
	return &storage.UploadResult{Key: key, Location: "r2://" + key}, nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return storage.PublicURL("https://cdn.example.com", key)
}

func seedStandings(f *fixture) {
	f.store.addParticipant("Low", 0, 0)
	f.store.addParticipant("=HYPERLINK()", 6, 1)
	f.store.addParticipant("Top", 9, 3)
	f.store.addParticipant("TieMoreWins", 6, 2)
}

func TestGetStandings_Ordering(t *testing.T) {
	f := newFixture()
	seedStandings(f)

	standings, err := NewStandingsService(f.participants, f.rounds, nil, nil).GetStandings(context.Background())
	require.NoError(t, err)
	require.Len(t, standings, 4)

	var names []string
	for i, st := range standings {
		assert.Equal(t, i+1, st.Rank)
		names = append(names, st.Name)
	}
	assert.Equal(t, []string{"Top", "TieMoreWins", "=HYPERLINK()", "Low"}, names)
}

func TestExportStandingsXLSX(t *testing.T) {
	f := newFixture()
	seedStandings(f)

	var buf bytes.Buffer
	err := NewStandingsService(f.participants, f.rounds, nil, nil).ExportStandingsXLSX(context.Background(), &buf)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(standingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Rank", "Player", "Wins", "Losses", "Draws", "Points"}, rows[0])
	assert.Equal(t, "Top", rows[1][1])
	assert.Equal(t, "9", rows[1][5])
	assert.Equal(t, "'=HYPERLINK()", rows[3][1])
}

func TestArchiveStandings(t *testing.T) {
	f := newFixture()
	seedStandings(f)
	f.store.addRound(1)
	f.store.addRound(2)
	uploader := &fakeUploader{}
	svc := NewStandingsService(f.participants, f.rounds, uploader, nil)

	archived, err := svc.ArchiveStandings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, archived.RoundNumber)
	assert.True(t, strings.HasPrefix(archived.Key, "standings/round-2-"), archived.Key)
	assert.True(t, strings.HasSuffix(archived.Key, ".xlsx"), archived.Key)
	assert.Equal(t, "https://cdn.example.com/"+archived.Key, archived.URL)
	assert.Equal(t, xlsxContentType, uploader.contentType)
	assert.NotEmpty(t, uploader.body)
}

func TestArchiveStandings_Errors(t *testing.T) {
	f := newFixture()

	_, err := NewStandingsService(f.participants, f.rounds, nil, nil).ArchiveStandings(context.Background())
	assert.ErrorIs(t, err, ErrArchiveDisabled)

	uploadErr := errors.New("bucket unavailable")
	_, err = NewStandingsService(f.participants, f.rounds, &fakeUploader{err: uploadErr}, nil).ArchiveStandings(context.Background())
	assert.ErrorIs(t, err, uploadErr)
}

func TestSanitizeForExcel(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"Alice":   "Alice",
		"=1+1":    "'=1+1",
		"+7":      "'+7",
		"-x":      "'-x",
		"@cmd":    "'@cmd",
		"\tTab":   "'\tTab",
		"Bob=Bob": "Bob=Bob",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeForExcel(in), "input %q", in)
	}
}
