package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/saati/saati/internal/rest"
)

type TaskDTO struct {
	ID              string     `json:"id,omitempty"`
	Title           string     `json:"title"`
	DueDate         *time.Time `json:"dueDate"`
	ReminderMinutes int        `json:"reminderMinutes"`
	IsCompleted     bool       `json:"isCompleted"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAll godoc
// @Summary List all tasks of the current user
// @Tags Task
// @Produce json
// @Success 200 {array} TaskDTO
// @Router /api/task [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tasks, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, TaskToDTO(task))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Create godoc
// @Summary Create a new task
// @Tags Task
// @Accept json
// @Produce json
// @Param task body TaskDTO true "Task"
// @Success 201 {object} TaskDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid task"
// @Router /api/task [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.service.Add(r.Context(), DTOToTask(dto))
	if err != nil {
		if errors.Is(err, ErrInvalidTask) {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid task", Details: err.Error()}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TaskToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Update godoc
// @Summary Update an existing task
// @Tags Task
// @Accept json
// @Produce json
// @Param taskId path string true "Task ID"
// @Param task body TaskDTO true "Task"
// @Success 200 {object} TaskDTO
// @Failure 404 {string} string "Task not found"
// @Router /api/task/{taskId} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	taskId := vars["taskId"]

	var dto TaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	if dto.ID == "" {
		dto.ID = taskId
	}
	if dto.ID != taskId {
		http.Error(w, "Invalid task id in request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), DTOToTask(dto))
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrInvalidTask) {
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid task", Details: err.Error()}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TaskToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Delete godoc
// @Summary Delete a task
// @Tags Task
// @Param taskId path string true "Task ID"
// @Success 204 {string} string "Deleted"
// @Failure 404 {string} string "Task not found"
// @Router /api/task/{taskId} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	taskId := vars["taskId"]

	if err := h.service.Delete(r.Context(), taskId); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func TaskToDTO(task Task) TaskDTO {
	return TaskDTO{
		ID:              task.ID,
		Title:           task.Title,
		DueDate:         task.DueDate,
		ReminderMinutes: task.ReminderMinutes,
		IsCompleted:     task.IsCompleted,
	}
}

func DTOToTask(dto TaskDTO) Task {
	return Task{
		ID:              dto.ID,
		Title:           dto.Title,
		DueDate:         dto.DueDate,
		ReminderMinutes: dto.ReminderMinutes,
		IsCompleted:     dto.IsCompleted,
	}
}
