package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormTaskRepository_ListByOwner_FiltersByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description", "due_date", "completed", "created_at", "updated_at"}).
		AddRow(1, 7, "Mine", "", nil, false, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tasks` WHERE user_id = ? ORDER BY id ASC LIMIT ?")).
		WithArgs(7, 100).
		WillReturnRows(rows)

	tasks, err := repo.ListByOwner(7, 0, 100)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, uint64(7), tasks[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tasks` WHERE `tasks`.`id` = ?")).
		WithArgs(999999, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "description", "due_date", "completed", "created_at", "updated_at"}))

	_, err := repo.FindByID(999999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE `tasks`.`id` = ?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(1))
	require.NoError(t, mock.ExpectationsWereMet())
}
