package api

import (
	"context"
	"net/http"
	"time"
)

func (c *APIClient) ListReminders(ctx context.Context) ([]Reminder, error) {
	return list[Reminder](ctx, c, "/reminders")
}

func (c *APIClient) CreateReminder(ctx context.Context, in CreateReminderIn) error {
	return c.do(ctx, http.MethodPost, "/reminders", in, nil)
}

func (c *APIClient) CompleteReminder(ctx context.Context, id ID) error {
	return c.do(ctx, http.MethodPatch, resourcePath("/reminders", id)+"/complete", nil, nil)
}

// OpenReminders returns the reminders not yet completed.
func OpenReminders(reminders []Reminder) []Reminder {
	out := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		if !r.Completed {
			out = append(out, r)
		}
	}
	return out
}

// Due reports whether the reminder time has passed. Reminders without a
// readable date are never due.
func (r Reminder) Due(now time.Time) bool {
	t, ok := ParseTime(r.ReminderDate)
	return ok && !t.After(now)
}
