package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/domain"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/platform/logger"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface using PostgreSQL.
type PostgresTaskStore struct {
	db store.DBTX
}

// NewPostgresTaskStore creates a new PostgresTaskStore.
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	return &PostgresTaskStore{
		db: db,
	}
}

// Insert persists a task and fills in the store-assigned ID.
// The status column is not bound; the table default supplies it.
func (s *PostgresTaskStore) Insert(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO tasks (title, description, due_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	// A nil due date must reach the database as NULL, never a zero time.
	var dueDate sql.NullTime
	if task.DueDate != nil {
		dueDate = sql.NullTime{Time: *task.DueDate, Valid: true}
	}

	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		task.Description,
		dueDate,
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to insert task",
			"title", task.Title,
			"error", err)
		return fmt.Errorf("failed to insert task: %w", MapError(err))
	}

	return nil
}

// ListAll retrieves every task ordered by descending ID.
func (s *PostgresTaskStore) ListAll(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, description, due_date, status
		FROM tasks
		ORDER BY id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tasks", "error", err)
		return nil, fmt.Errorf("failed to query tasks: %w", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", "error", closeErr)
		}
	}()

	var tasks []domain.Task

	for rows.Next() {
		var task domain.Task
		var dueDate sql.NullTime
		var status sql.NullString

		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &dueDate, &status); err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}

		if dueDate.Valid {
			due := dueDate.Time
			task.DueDate = &due
		}
		task.Status = domain.TaskStatus(status.String)

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", "error", err)
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}
