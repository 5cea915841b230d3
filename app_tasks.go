package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"reno/pkg/api"
	"reno/pkg/forms"
)

type TaskOptions struct {
	Title       string
	Description string
	Priority    string
	Deadline    string
	ReminderAt  string
	AssignTo    string
	Recurring   bool
	Cycle       string
}

func (a *App) ListTasks(ctx context.Context, flag string, recurring bool) error {
	empty := "No tasks created yet."
	if recurring {
		empty = "No recurring maintenance tasks yet."
	}

	id, err := a.project(flag)
	if err != nil {
		return err
	}

	tasks, err := a.client.ListTasks(ctx, id)
	if err != nil {
		return a.fetchFailed("task", "ListTasks", err, "Failed to fetch tasks", empty)
	}

	shown := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Recurring == recurring {
			shown = append(shown, t)
		}
	}

	return a.render(shown, func() {
		if len(shown) == 0 {
			a.printf("%s\n", empty)
			return
		}

		headers := []string{"ID", "Title", "Status", "Priority", "Deadline", "Assigned"}
		if recurring {
			headers = append(headers, "Cycle")
		}

		var rows [][]string
		for _, t := range shown {
			assigned := "-"
			if t.AssignedMember != nil {
				assigned = t.AssignedMember.Display()
			} else if t.AssignedTo != "" {
				assigned = t.AssignedTo.String()
			}
			row := []string{t.ID.String(), t.Title, string(t.EffectiveStatus()), t.EffectivePriority(), FormatDate(t.Deadline), assigned}
			if recurring {
				row = append(row, orText(t.RecurringCycle, "monthly"))
			}
			rows = append(rows, row)
		}
		PrintTable(a.out, headers, rows, nil)
	})
}

func (a *App) AddTask(ctx context.Context, flag string, opts TaskOptions) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	in := api.CreateTaskIn{
		ProjectID:   id,
		Title:       strings.TrimSpace(opts.Title),
		Description: api.Optional(strings.TrimSpace(opts.Description)),
		Priority:    orText(opts.Priority, "medium"),
		Deadline:    api.Optional(opts.Deadline),
		ReminderAt:  api.Optional(opts.ReminderAt),
		Recurring:   opts.Recurring,
	}
	if opts.Recurring {
		in.RecurringCycle = api.Optional(orText(opts.Cycle, "monthly"))
	}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if opts.AssignTo != "" {
		if err := a.checkAssignable(ctx, id, api.ID(opts.AssignTo)); err != nil {
			return err
		}
		in.AssignedTo = api.OptionalID(api.ID(opts.AssignTo))
	}

	if err := a.client.CreateTask(ctx, in); err != nil {
		return a.fail("task", "AddTask", err, "Failed to create task")
	}

	a.printf("Task created: %s\n", in.Title)
	return a.ListTasks(ctx, id.String(), opts.Recurring)
}

// checkAssignable fails unless userID belongs to an assignable member of
// the project.
func (a *App) checkAssignable(ctx context.Context, projectID, userID api.ID) error {
	members, err := a.client.ListMembers(ctx, projectID)
	if err != nil {
		return a.fail("task", "checkAssignable", err, "Failed to fetch members")
	}
	for _, m := range members {
		if m.UserID == userID && m.Assignable() {
			return nil
		}
	}
	return forms.Invalid(fmt.Sprintf("User %s is not an active member of this project", userID))
}

func (a *App) SetTaskStatus(ctx context.Context, taskID, status string) error {
	if status == "" {
		var err error
		status, err = a.picker.Pick("Task status", statusOptions(api.TaskStatuses))
		if err != nil {
			return err
		}
	}
	if !slices.Contains(api.TaskStatuses, status) {
		return forms.Invalid(fmt.Sprintf("status must be one of: %s", strings.Join(api.TaskStatuses, ", ")))
	}

	if err := a.client.UpdateTaskStatus(ctx, api.ID(taskID), api.TaskStatus(status)); err != nil {
		return a.fail("task", "SetTaskStatus", err, "Failed to update task")
	}

	a.printf("Task %s is now %s\n", taskID, strings.ReplaceAll(status, "_", " "))
	return nil
}

// AssignTask gives a task to a member; an empty userID unassigns it.
func (a *App) AssignTask(ctx context.Context, flag, taskID, userID string) error {
	if userID != "" {
		id, err := a.project(flag)
		if err != nil {
			return err
		}
		if err := a.checkAssignable(ctx, id, api.ID(userID)); err != nil {
			return err
		}
	}

	if err := a.client.AssignTask(ctx, api.ID(taskID), api.ID(userID)); err != nil {
		return a.fail("task", "AssignTask", err, "Failed to update task")
	}

	if userID == "" {
		a.printf("Task %s unassigned\n", taskID)
	} else {
		a.printf("Task %s assigned to %s\n", taskID, userID)
	}
	return nil
}

func (a *App) UpcomingReminders(ctx context.Context) error {
	tasks, err := a.client.UpcomingReminders(ctx)
	if err != nil {
		return a.fetchFailed("task", "UpcomingReminders", err, "Failed to fetch upcoming reminders", "No upcoming reminders.")
	}

	return a.render(tasks, func() {
		if len(tasks) == 0 {
			a.printf("No upcoming reminders.\n")
			return
		}
		var rows [][]string
		for _, t := range tasks {
			rows = append(rows, []string{t.ID.String(), t.Title, FormatDateTime(t.ReminderAt), t.EffectivePriority()})
		}
		PrintTable(a.out, []string{"ID", "Task", "Reminder", "Priority"}, rows, nil)
	})
}

func (a *App) MarkReminderSent(ctx context.Context, taskID string) error {
	if err := a.client.MarkReminderSent(ctx, api.ID(taskID)); err != nil {
		return a.fail("task", "MarkReminderSent", err, "Failed to update task")
	}
	a.printf("Reminder for task %s marked as sent\n", taskID)
	return nil
}

// +---------------------+
// |                     |
// |       Members       |
// |                     |
// +---------------------+

func (a *App) ListMembers(ctx context.Context, flag string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	const empty = "No members yet. Invite collaborators to assign tasks."
	members, err := a.client.ListMembers(ctx, id)
	if err != nil {
		return a.fetchFailed("member", "ListMembers", err, "Failed to fetch members", empty)
	}

	return a.render(members, func() {
		if len(members) == 0 {
			a.printf("%s\n", empty)
			return
		}
		var rows [][]string
		for _, m := range members {
			assignable := "no"
			if m.Assignable() {
				assignable = "yes"
			}
			rows = append(rows, []string{orText(m.UserID.String(), "-"), m.Display(), orText(m.Role, "member"), orText(m.Status, "accepted"), assignable})
		}
		PrintTable(a.out, []string{"User", "Name", "Role", "Status", "Assignable"}, rows, nil)
	})
}

func (a *App) InviteMember(ctx context.Context, flag, email, role string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return forms.Invalid("Invite email is required")
	}

	in := api.InviteMemberIn{ProjectID: id, InviteEmail: &email, Role: strings.TrimSpace(role)}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.InviteMember(ctx, in); err != nil {
		return a.fail("member", "InviteMember", err, "Failed to invite member")
	}

	a.printf("Invitation sent to %s\n", email)
	return a.ListMembers(ctx, id.String())
}
