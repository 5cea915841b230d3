package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"reno/pkg/analytics"
	"reno/pkg/api"
	"reno/pkg/forms"
	"reno/pkg/media"
	"reno/pkg/schedule"
)

// +---------------------+
// |                     |
// |      Inventory      |
// |                     |
// +---------------------+

type InventoryOptions struct {
	Name     string
	Quantity string
	Unit     string
	Location string
}

func (a *App) ListInventory(ctx context.Context) error {
	const empty = "No inventory items yet."
	items, err := a.client.ListInventory(ctx)
	if err != nil {
		return a.fetchFailed("inventory", "ListInventory", err, "Failed to fetch inventory", empty)
	}

	return a.render(items, func() {
		if len(items) == 0 {
			a.printf("%s\n", empty)
			return
		}
		var rows [][]string
		for _, i := range items {
			rows = append(rows, []string{i.ID.String(), i.Name, quantity(i.Quantity, i.Unit), orText(i.Location, "-")})
		}
		PrintTable(a.out, []string{"ID", "Name", "Quantity", "Location"}, rows, nil)
	})
}

func quantity(q analytics.Money, unit string) string {
	if !q.Valid {
		return "-"
	}
	if unit == "" {
		return q.String()
	}
	return q.String() + " " + unit
}

func (a *App) AddInventoryItem(ctx context.Context, opts InventoryOptions) error {
	in := api.InventoryIn{
		Name:     strings.TrimSpace(opts.Name),
		Quantity: parseMoney(opts.Quantity),
		Unit:     strings.TrimSpace(opts.Unit),
		Location: strings.TrimSpace(opts.Location),
	}
	if strings.TrimSpace(opts.Quantity) == "" {
		in.Quantity = analytics.NewMoney(1)
	}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.CreateInventoryItem(ctx, in); err != nil {
		return a.fail("inventory", "AddInventoryItem", err, "Failed to add item")
	}

	a.printf("Item added: %s\n", in.Name)
	return a.ListInventory(ctx)
}

// EditInventoryItem replaces an item, keeping current values for the
// options left blank.
func (a *App) EditInventoryItem(ctx context.Context, itemID string, opts InventoryOptions) error {
	items, err := a.client.ListInventory(ctx)
	if err != nil {
		return a.fail("inventory", "EditInventoryItem", err, "Failed to fetch inventory")
	}

	for _, item := range items {
		if item.ID.String() != itemID {
			continue
		}

		in := api.InventoryIn{
			Name:     orText(strings.TrimSpace(opts.Name), item.Name),
			Quantity: item.Quantity,
			Unit:     orText(strings.TrimSpace(opts.Unit), item.Unit),
			Location: orText(strings.TrimSpace(opts.Location), item.Location),
		}
		if strings.TrimSpace(opts.Quantity) != "" {
			in.Quantity = parseMoney(opts.Quantity)
		}
		if err := a.forms.Struct(in); err != nil {
			return err
		}

		if err := a.client.UpdateInventoryItem(ctx, item.ID, in); err != nil {
			return a.fail("inventory", "EditInventoryItem", err, "Failed to update item")
		}
		a.printf("Item updated: %s\n", in.Name)
		return a.ListInventory(ctx)
	}
	return fmt.Errorf("inventory item %s not found", itemID)
}

func (a *App) DeleteInventoryItem(ctx context.Context, itemID string) error {
	if err := a.client.DeleteInventoryItem(ctx, api.ID(itemID)); err != nil {
		return a.fail("inventory", "DeleteInventoryItem", err, "Failed to delete item")
	}
	a.printf("Item %s deleted\n", itemID)
	return a.ListInventory(ctx)
}

// +---------------------+
// |                     |
// |       Photos        |
// |                     |
// +---------------------+

func (a *App) ListPhotos(ctx context.Context, flag string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	const empty = "No photos uploaded."
	photos, err := a.client.ListPhotos(ctx, id)
	if err != nil {
		return a.fetchFailed("photo", "ListPhotos", err, "Failed to fetch photos", empty)
	}

	return a.render(photos, func() {
		if len(photos) == 0 {
			a.printf("%s\n", empty)
			return
		}
		var rows [][]string
		for _, p := range photos {
			rows = append(rows, []string{p.ID.String(), a.describeImage(p.ImageURL)})
		}
		PrintTable(a.out, []string{"ID", "Image"}, rows, nil)
	})
}

// describeImage shortens inline images to their type and size.
func (a *App) describeImage(imageURL string) string {
	url := media.NormalizeImageURL(imageURL, a.client.BaseURL())
	if mime, data, err := media.DecodeDataURL(url); err == nil {
		return fmt.Sprintf("%s inline (%.1f KB)", mime, float64(len(data))/1024)
	}
	return Truncate(url, 80)
}

// AddPhoto uploads source, which is a file path, an http(s) URL, or a base64
// payload.
func (a *App) AddPhoto(ctx context.Context, flag, source string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	source = strings.TrimSpace(source)
	var imageURL string
	switch {
	case source == "":
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		imageURL = source
	default:
		if _, statErr := os.Stat(source); statErr == nil {
			imageURL, err = media.EncodeFile(source, a.cfg.PhotoMaxEdge)
			if err != nil {
				return a.fail("photo", "AddPhoto", err, "Failed to read photo")
			}
		} else {
			imageURL = media.NormalizeBase64Payload(source)
		}
	}

	in := api.CreatePhotoIn{ProjectID: id, ImageURL: imageURL}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.CreatePhoto(ctx, in); err != nil {
		return a.fail("photo", "AddPhoto", err, "Failed to upload photo")
	}

	a.printf("Photo uploaded\n")
	return a.ListPhotos(ctx, id.String())
}

func (a *App) DeletePhoto(ctx context.Context, flag, photoID string) error {
	if err := a.client.DeletePhoto(ctx, api.ID(photoID)); err != nil {
		return a.fail("photo", "DeletePhoto", err, "Failed to delete photo")
	}

	a.printf("Photo %s deleted\n", photoID)
	if _, err := a.project(flag); err != nil {
		return nil
	}
	return a.ListPhotos(ctx, flag)
}

// +---------------------+
// |                     |
// |      Reminders      |
// |                     |
// +---------------------+

func (a *App) ListReminders(ctx context.Context) error {
	const empty = "No upcoming reminders."
	reminders, err := a.client.ListReminders(ctx)
	if err != nil {
		return a.fetchFailed("reminder", "ListReminders", err, "Failed to load reminders", empty)
	}
	open := api.OpenReminders(reminders)

	return a.render(open, func() {
		if len(open) == 0 {
			a.printf("%s\n", empty)
			return
		}
		now := a.now()
		var rows [][]string
		for _, r := range open {
			state := "Scheduled"
			if r.Due(now) {
				state = "Due now"
			}
			rows = append(rows, []string{r.ID.String(), r.Title, orText(r.Description, "No description"), FormatDateTime(r.ReminderDate), state})
		}
		PrintTable(a.out, []string{"ID", "Title", "Description", "When", "State"}, rows, nil)
	})
}

func (a *App) AddReminder(ctx context.Context, title, description, date string) error {
	in := api.CreateReminderIn{
		Title:        strings.TrimSpace(title),
		Description:  api.Optional(strings.TrimSpace(description)),
		ReminderDate: strings.TrimSpace(date),
	}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.CreateReminder(ctx, in); err != nil {
		return a.fail("reminder", "AddReminder", err, "Failed to create reminder")
	}

	a.printf("Reminder created: %s\n", in.Title)
	return a.ListReminders(ctx)
}

func (a *App) CompleteReminder(ctx context.Context, reminderID string) error {
	if err := a.client.CompleteReminder(ctx, api.ID(reminderID)); err != nil {
		return a.fail("reminder", "CompleteReminder", err, "Failed to mark reminder as done")
	}

	a.printf("Reminder %s marked as done\n", reminderID)
	return a.ListReminders(ctx)
}

// WatchReminders prints the number of upcoming task reminders every
// interval until ctx is cancelled. A failed poll counts as zero.
func (a *App) WatchReminders(ctx context.Context) error {
	err := schedule.Every(ctx, a.cfg.PollInterval, func(ctx context.Context) error {
		tasks, err := a.client.UpcomingReminders(ctx)
		if err != nil {
			a.printf("%s  0 upcoming reminders\n", FormatTime(a.now()))
			return err
		}
		a.printf("%s  %d upcoming reminders\n", FormatTime(a.now()), len(tasks))
		return nil
	}, a.log)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// +---------------------+
// |                     |
// |     Inspiration     |
// |                     |
// +---------------------+

func (a *App) Inspiration(ctx context.Context, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return forms.Invalid("Describe the space you want ideas for")
	}

	text, err := a.client.Inspiration(ctx, prompt)
	if err != nil {
		return a.fail("inspiration", "Inspiration", err, "Failed to generate inspiration")
	}

	a.printf("%s\n", strings.TrimSpace(text))
	return nil
}
