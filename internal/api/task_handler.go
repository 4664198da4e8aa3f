package api

import (
	"net/http"
	"time"

	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/api/shared"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/domain"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/service"
	"github.com/go-playground/validator/v10"
)

// Client-facing messages. The API speaks Portuguese to its callers; the
// strings are part of the contract and must not change.
const (
	msgDescriptionRequired = "A descrição da tarefa é obrigatória."
	msgInvalidRequestBody  = "Corpo da requisição inválido."
	msgCreateTaskFailed    = "Erro interno do servidor ao criar tarefa."
	msgListTasksFailed     = "Erro interno do servidor ao buscar tarefas."
)

// CreateTaskRequest represents the request body for creating a new task.
type CreateTaskRequest struct {
	Description string     `json:"description" validate:"required,min=1"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
}

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// CreateTask handles POST /tasks requests.
// A missing or empty description is rejected before any generation or
// store access happens.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgDescriptionRequired)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Description, req.DueDate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgCreateTaskFailed, err)
		return
	}

	response := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		// The due date echoes the caller's value verbatim, not the
		// null-coerced stored one.
		DueDate: req.DueDate,
		Status:  string(task.Status),
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// ListTasks handles GET /tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgListTasksFailed, err)
		return
	}

	// Always serialize an array, never null.
	if tasks == nil {
		tasks = []domain.Task{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}
