package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"imdb-top100/internal/config"
	"imdb-top100/internal/movie"
)

type fakeSession struct {
	movies      []movie.Record
	navigateErr error
	moviesErr   error

	navigated []string
	limit     int
	closed    int
}

func (f *fakeSession) Navigate(url string) error {
	f.navigated = append(f.navigated, url)
	return f.navigateErr
}

func (f *fakeSession) Movies(limit int) ([]movie.Record, error) {
	f.limit = limit
	return f.movies, f.moviesErr
}

func (f *fakeSession) Close() { f.closed++ }

func opener(s *fakeSession) Opener {
	return func(context.Context, *config.Config) (Session, error) { return s, nil }
}

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ExcelFile = filepath.Join(dir, "IMDb_Top_100.xlsx")
	cfg.JSONFile = filepath.Join(dir, "IMDb_Top_100.json")
	return cfg
}

var movies = []movie.Record{
	{Title: "The Shawshank Redemption", Year: "1994", Duration: "2h 22m", ContentRating: "R", AudienceRating: "9.3"},
	{Title: "The Godfather", Year: "1972", Duration: "2h 55m", ContentRating: "R", AudienceRating: "9.2"},
}

func TestRun_WritesOutputs(t *testing.T) {
	cfg := testConfig(t)
	s := &fakeSession{movies: movies}
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, opener(s), &out, zap.NewNop()))

	assert.Equal(t, []string{config.DefaultURL}, s.navigated)
	assert.Equal(t, 100, s.limit)
	assert.Equal(t, 1, s.closed)

	raw, err := os.ReadFile(cfg.JSONFile)
	require.NoError(t, err)
	var back []movie.Record
	require.NoError(t, json.Unmarshal(raw, &back))
	if diff := cmp.Diff(movies, back); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}

	f, err := excelize.OpenFile(cfg.ExcelFile)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Len(t, rows, len(movies)+1)

	assert.Contains(t, out.String(), "Title: The Godfather\n")
	assert.True(t, strings.HasSuffix(out.String(),
		"\nSaved movies to '"+cfg.ExcelFile+"' and '"+cfg.JSONFile+"'\n"))
}

func TestRun_NoMovies(t *testing.T) {
	cfg := testConfig(t)
	s := &fakeSession{}
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, opener(s), &out, zap.NewNop()))

	assert.Equal(t, "No movies extracted.\n", out.String())
	assert.NoFileExists(t, cfg.ExcelFile)
	assert.NoFileExists(t, cfg.JSONFile)
	assert.Equal(t, 1, s.closed)
}

func TestRun_ExtractErrorStillCloses(t *testing.T) {
	cfg := testConfig(t)
	s := &fakeSession{moviesErr: errors.New("target closed")}

	err := Run(context.Background(), cfg, opener(s), &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target closed")
	assert.Equal(t, 1, s.closed)
	assert.NoFileExists(t, cfg.JSONFile)
}

func TestRun_NavigateErrorStillCloses(t *testing.T) {
	cfg := testConfig(t)
	s := &fakeSession{navigateErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}

	err := Run(context.Background(), cfg, opener(s), &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	assert.Equal(t, 1, s.closed)
}

func TestRun_OpenError(t *testing.T) {
	cfg := testConfig(t)
	open := func(context.Context, *config.Config) (Session, error) {
		return nil, errors.New("executable file not found")
	}

	err := Run(context.Background(), cfg, open, &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open browser")
}

func TestRun_WriteErrorIsFatal(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExcelFile = filepath.Join(t.TempDir(), "missing", "top.xlsx")
	s := &fakeSession{movies: movies}
	var out bytes.Buffer

	err := Run(context.Background(), cfg, opener(s), &out, zap.NewNop())
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.NoFileExists(t, cfg.JSONFile)
	assert.Equal(t, 1, s.closed)
}
