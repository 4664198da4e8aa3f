package store

import (
	"context"

	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/domain"
)

// TaskStore defines the persistence operations for tasks.
type TaskStore interface {
	// Insert persists a new task as a single parameterized statement and
	// fills in the store-assigned ID. A nil DueDate is bound as SQL NULL.
	Insert(ctx context.Context, task *domain.Task) error

	// ListAll returns every task ordered by descending ID, most recently
	// created first. The result is materialized at call time.
	ListAll(ctx context.Context) ([]domain.Task, error)
}
