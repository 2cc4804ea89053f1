package database

import (
	"bytes"
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/justsurfingit/scrapnalyze/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestOpenLogsFailedStatementsAsErrors(t *testing.T) {
	buf := captureLogs(t)

	db, err := Open(sqlite.Open(":memory:"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.Error(t, db.Exec("SELECT * FROM no_such_table").Error)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "no such table")
	assert.Contains(t, out, "SELECT * FROM no_such_table")
}

func TestOpenDoesNotLogMissingRowsOrPlainQueries(t *testing.T) {
	buf := captureLogs(t)

	store := setupTestStore(t, models.Job{Title: "Go Developer"})

	_, err := store.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, models.ErrJobNotFound)

	out := buf.String()
	assert.NotContains(t, out, `"level":"error"`)
	assert.NotContains(t, out, "myjob")
}
