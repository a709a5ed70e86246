package store_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/pythia/internal/store"
)

func TestMigrationsAreOrdered(t *testing.T) {
	names, err := store.Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	assert.Equal(t, "001_create_fantasy_teams.sql", names[0])
	assert.IsIncreasing(t, names)
}

func TestRunMigrationsAppliesOnlyPending(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := store.New(conn, nil)
	defer db.Close()

	names, err := store.Migrations()
	require.NoError(t, err)
	last := names[len(names)-1]

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	for _, name := range names[:len(names)-1] {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations")).
			WithArgs(name).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations")).
		WithArgs(last).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS backfill_jobs").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).WithArgs(last).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, db.RunMigrations(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchupScoresFor(t *testing.T) {
	m := store.Matchup{TeamA: "1", TeamB: "2", ScoreA: 410.5, ScoreB: 388}

	mine, theirs := m.ScoresFor("2")
	assert.Equal(t, 388.0, mine)
	assert.Equal(t, 410.5, theirs)

	mine, theirs = m.ScoresFor("1")
	assert.Equal(t, 410.5, mine)
	assert.Equal(t, 388.0, theirs)
}
