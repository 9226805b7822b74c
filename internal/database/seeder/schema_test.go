package seeder

import (
	"context"
	"testing"

	"yolearn/internal/database/sqldb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSchema_ReportsMissingColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT column_name FROM information_schema.columns").
		WithArgs("forum_answers").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))

	err = CheckSchema(context.Background(), sqldb.Wrap(db))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forum_answers.question_id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_AllTablesPresent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"forum_answers", "forum_questions", "matches", "notifications", "skills", "users"} {
		rows := sqlmock.NewRows([]string{"column_name"})
		for _, col := range requiredColumns[table] {
			rows.AddRow(col)
		}
		mock.ExpectQuery("SELECT column_name FROM information_schema.columns").WithArgs(table).WillReturnRows(rows)
	}

	require.NoError(t, CheckSchema(context.Background(), sqldb.Wrap(db)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
