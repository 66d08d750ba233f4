package client

import (
	"context"
	"log"

	"tasktracker/dto"
	"tasktracker/model"
)

// FilterAll disables a filter dimension.
const FilterAll = "all"

// Filter holds the two local filter dimensions. They combine with AND;
// no server round trip is involved.
type Filter struct {
	Status   string
	Priority string
}

func NewFilter() Filter {
	return Filter{Status: FilterAll, Priority: FilterAll}
}

func (f Filter) Matches(t model.Task) bool {
	statusMatch := f.Status == FilterAll || t.Status == f.Status
	priorityMatch := f.Priority == FilterAll || t.Priority == f.Priority
	return statusMatch && priorityMatch
}

// TaskState is the owned client state: the fetched task list, the current
// selection and the active filter. Transitions are pure, old state in, new
// state out, so callers can hold onto snapshots safely.
type TaskState struct {
	Tasks    []model.Task
	Selected *model.Task
	Filter   Filter
}

func NewTaskState() TaskState {
	return TaskState{Filter: NewFilter()}
}

func (s TaskState) WithTasks(tasks []model.Task) TaskState {
	s.Tasks = tasks
	return s
}

// WithCreated prepends, matching the list order of the original UI.
func (s TaskState) WithCreated(t model.Task) TaskState {
	tasks := make([]model.Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, t)
	tasks = append(tasks, s.Tasks...)
	s.Tasks = tasks
	return s
}

func (s TaskState) WithUpdated(t model.Task) TaskState {
	tasks := make([]model.Task, len(s.Tasks))
	for i, existing := range s.Tasks {
		if existing.ID == t.ID {
			tasks[i] = t
		} else {
			tasks[i] = existing
		}
	}
	s.Tasks = tasks
	if s.Selected != nil && s.Selected.ID == t.ID {
		selected := t
		s.Selected = &selected
	}
	return s
}

// WithDeleted removes the task and clears any selection.
func (s TaskState) WithDeleted(id int) TaskState {
	tasks := make([]model.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	s.Tasks = tasks
	s.Selected = nil
	return s
}

func (s TaskState) WithSelected(t *model.Task) TaskState {
	s.Selected = t
	return s
}

func (s TaskState) WithFilter(f Filter) TaskState {
	s.Filter = f
	return s
}

// Filtered derives the visible list from the in-memory tasks.
func (s TaskState) Filtered() []model.Task {
	out := make([]model.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if s.Filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// App ties the API client to the task state the way the original UI does:
// fetch once, mutate through the server, fold responses back in. Failures
// are logged and leave the state untouched.
type App struct {
	api   *Client
	State TaskState
}

func NewApp(api *Client) *App {
	return &App{api: api, State: NewTaskState()}
}

func (a *App) LoadTasks(ctx context.Context) error {
	tasks, err := a.api.GetTasks(ctx)
	if err != nil {
		log.Printf("Failed to load tasks: %v", err)
		return err
	}
	a.State = a.State.WithTasks(tasks)
	return nil
}

func (a *App) CreateTask(ctx context.Context, req dto.CreateTaskRequest) error {
	task, err := a.api.CreateTask(ctx, req)
	if err != nil {
		log.Printf("Failed to create task: %v", err)
		return err
	}
	a.State = a.State.WithCreated(*task)
	return nil
}

// UpdateTask folds the server's copy of the task back into the list. When
// the server signals not-found the state is left as is, stale selection
// included.
func (a *App) UpdateTask(ctx context.Context, id int, req dto.UpdateTaskRequest) error {
	task, err := a.api.UpdateTask(ctx, id, req)
	if err != nil {
		log.Printf("Failed to update task: %v", err)
		return err
	}
	if task == nil {
		log.Printf("Task %d not found for update", id)
		return nil
	}
	a.State = a.State.WithUpdated(*task)
	return nil
}

// DeleteTask removes the task locally whenever the round trip succeeds,
// whether or not the server still had the row.
func (a *App) DeleteTask(ctx context.Context, id int) error {
	if _, err := a.api.DeleteTask(ctx, id); err != nil {
		log.Printf("Failed to delete task: %v", err)
		return err
	}
	a.State = a.State.WithDeleted(id)
	return nil
}

func (a *App) SelectTask(t *model.Task) {
	a.State = a.State.WithSelected(t)
}

func (a *App) SetFilter(f Filter) {
	a.State = a.State.WithFilter(f)
}

func (a *App) VisibleTasks() []model.Task {
	return a.State.Filtered()
}
