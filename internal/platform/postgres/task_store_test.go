package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/domain"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresTaskStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresTaskStore(db), mock
}

func TestNewPostgresTaskStore(t *testing.T) {
	var db *sql.DB

	taskStore := NewPostgresTaskStore(db)

	assert.NotNil(t, taskStore)
	// The concrete type must satisfy the store interface.
	var _ store.TaskStore = taskStore
}

func TestInsert(t *testing.T) {
	ctx := context.Background()
	insertPattern := `INSERT INTO tasks \(title, description, due_date\)\s+VALUES \(\$1, \$2, \$3\)\s+RETURNING id`

	t.Run("binds_fields_and_scans_id", func(t *testing.T) {
		taskStore, mock := newMockStore(t)
		dueDate := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(insertPattern).
			WithArgs("Grocery Run", "Buy milk", dueDate).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		task := &domain.Task{
			Title:       "Grocery Run",
			Description: "Buy milk",
			DueDate:     &dueDate,
			Status:      domain.TaskStatusPending,
		}

		err := taskStore.Insert(ctx, task)

		require.NoError(t, err)
		assert.Equal(t, int64(42), task.ID, "the store-assigned ID must be filled in")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil_due_date_binds_null", func(t *testing.T) {
		taskStore, mock := newMockStore(t)

		mock.ExpectQuery(insertPattern).
			WithArgs("Grocery Run", "Buy milk", nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		task := &domain.Task{
			Title:       "Grocery Run",
			Description: "Buy milk",
			Status:      domain.TaskStatusPending,
		}

		err := taskStore.Insert(ctx, task)

		require.NoError(t, err)
		assert.Equal(t, int64(7), task.ID)
		assert.NoError(t, mock.ExpectationsWereMet(),
			"an absent due date must reach the database as NULL, never a zero time")
	})

	t.Run("query_failure_propagates", func(t *testing.T) {
		taskStore, mock := newMockStore(t)

		mock.ExpectQuery(insertPattern).
			WillReturnError(errors.New("connection refused"))

		task := &domain.Task{
			Title:       "Grocery Run",
			Description: "Buy milk",
			Status:      domain.TaskStatusPending,
		}

		err := taskStore.Insert(ctx, task)

		require.Error(t, err)
		assert.Zero(t, task.ID)
	})
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	listPattern := `SELECT id, title, description, due_date, status\s+FROM tasks\s+ORDER BY id DESC`
	columns := []string{"id", "title", "description", "due_date", "status"}

	t.Run("returns_rows_in_query_order", func(t *testing.T) {
		taskStore, mock := newMockStore(t)
		dueDate := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(listPattern).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(3), "C", "c", dueDate, "Pendente").
				AddRow(int64(2), "B", "b", nil, "Pendente").
				AddRow(int64(1), "A", "a", nil, "Pendente"))

		tasks, err := taskStore.ListAll(ctx)

		require.NoError(t, err)
		require.Len(t, tasks, 3)
		// The ordering comes from the statement itself; the rows are not
		// re-sorted in Go.
		assert.Equal(t, int64(3), tasks[0].ID)
		assert.Equal(t, int64(2), tasks[1].ID)
		assert.Equal(t, int64(1), tasks[2].ID)

		require.NotNil(t, tasks[0].DueDate)
		assert.True(t, dueDate.Equal(*tasks[0].DueDate))
		assert.Equal(t, domain.TaskStatusPending, tasks[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("null_columns_scan_to_zero_values", func(t *testing.T) {
		taskStore, mock := newMockStore(t)

		mock.ExpectQuery(listPattern).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "A", "a", nil, nil))

		tasks, err := taskStore.ListAll(ctx)

		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Nil(t, tasks[0].DueDate, "NULL due_date must surface as a nil pointer")
		assert.Empty(t, tasks[0].Status)
	})

	t.Run("empty_result_returns_no_error", func(t *testing.T) {
		taskStore, mock := newMockStore(t)

		mock.ExpectQuery(listPattern).
			WillReturnRows(sqlmock.NewRows(columns))

		tasks, err := taskStore.ListAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("query_failure_propagates", func(t *testing.T) {
		taskStore, mock := newMockStore(t)

		mock.ExpectQuery(listPattern).
			WillReturnError(errors.New("connection refused"))

		tasks, err := taskStore.ListAll(ctx)

		require.Error(t, err)
		assert.Nil(t, tasks)
	})
}
