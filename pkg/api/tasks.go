package api

import (
	"context"
	"net/http"
	"sort"
)

func (c *APIClient) ListTasks(ctx context.Context, projectID ID) ([]Task, error) {
	return list[Task](ctx, c, resourcePath("/tasks", projectID))
}

func (c *APIClient) CreateTask(ctx context.Context, in CreateTaskIn) error {
	return c.do(ctx, http.MethodPost, "/tasks", in, nil)
}

func (c *APIClient) UpdateTaskStatus(ctx context.Context, id ID, status TaskStatus) error {
	return c.do(ctx, http.MethodPatch, resourcePath("/tasks", id), taskStatusIn{Status: status}, nil)
}

// AssignTask sets the assignee; an empty userID unassigns the task.
func (c *APIClient) AssignTask(ctx context.Context, id ID, userID ID) error {
	return c.do(ctx, http.MethodPatch, resourcePath("/tasks", id), taskAssignIn{AssignedTo: OptionalID(userID)}, nil)
}

// UpcomingReminders returns tasks with a pending reminder, earliest first.
// Tasks without a parseable reminder time sort first.
func (c *APIClient) UpcomingReminders(ctx context.Context) ([]Task, error) {
	tasks, err := list[Task](ctx, c, "/tasks/reminders/upcoming")
	if err != nil {
		return tasks, err
	}
	SortByReminder(tasks)
	return tasks, nil
}

func (c *APIClient) MarkReminderSent(ctx context.Context, taskID ID) error {
	return c.do(ctx, http.MethodPatch, resourcePath("/tasks", taskID)+"/reminder-sent", nil, nil)
}

func SortByReminder(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		left, _ := ParseTime(tasks[i].ReminderAt)
		right, _ := ParseTime(tasks[j].ReminderAt)
		return left.Before(right)
	})
}
