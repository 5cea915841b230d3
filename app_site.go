package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"reno/pkg/api"
	"reno/pkg/forms"
	"reno/pkg/store"
)

// activity kinds kept in the local store
const (
	activityAdded     = "added"
	activityScheduled = "scheduled"
)

// +---------------------+
// |                     |
// |     Contractors     |
// |                     |
// +---------------------+

func (a *App) ListContractors(ctx context.Context, flag string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	const empty = "No contractors added yet."
	contractors, err := a.client.ListContractors(ctx, id)
	if err != nil {
		return a.fetchFailed("contractor", "ListContractors", err, "Failed to fetch contractors", empty)
	}

	activity, err := a.repo.ListActivity(id.String(), 0)
	if err != nil {
		return err
	}
	scheduled := 0
	for _, e := range activity {
		if e.Kind == activityScheduled {
			scheduled++
		}
	}

	return a.render(contractors, func() {
		a.printf("Active Contractors: %d   Scheduled Visits: %d   Recent Activities: %d\n\n", len(contractors), scheduled, len(activity))
		if len(contractors) == 0 {
			a.printf("%s\n", empty)
			return
		}
		var rows [][]string
		for _, c := range contractors {
			phone := "No phone"
			if c.Phone != "" {
				phone = forms.FormatPhone(c.Phone, a.cfg.PhoneRegion)
			}
			rows = append(rows, []string{c.ID.String(), c.Name, orText(c.Role, "-"), phone, orText(c.Email, "No email")})
		}
		PrintTable(a.out, []string{"ID", "Name", "Role", "Phone", "Email"}, rows, nil)
	})
}

func (a *App) AddContractor(ctx context.Context, flag, name, phone, email, role string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	in := api.CreateContractorIn{
		ProjectID: id,
		Name:      strings.TrimSpace(name),
		Phone:     api.Optional(strings.TrimSpace(phone)),
		Email:     api.Optional(strings.TrimSpace(email)),
		Role:      api.Optional(strings.TrimSpace(role)),
	}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.CreateContractor(ctx, in); err != nil {
		return a.fail("contractor", "AddContractor", err, "Failed to add contractor")
	}

	if err := a.repo.AddActivity(store.Activity{
		ProjectID: id.String(),
		Kind:      activityAdded,
		Label:     "Added " + in.Name,
		CreatedAt: a.now(),
	}); err != nil {
		return err
	}

	a.printf("Contractor added: %s\n", in.Name)
	return a.ListContractors(ctx, id.String())
}

func (a *App) ScheduleVisit(ctx context.Context, flag, contractorID, date, note string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	in := api.ScheduleVisitIn{
		ContractorID:  api.ID(strings.TrimSpace(contractorID)),
		ScheduledDate: strings.TrimSpace(date),
		Note:          api.Optional(strings.TrimSpace(note)),
	}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.ScheduleVisit(ctx, in); err != nil {
		return a.fail("contractor", "ScheduleVisit", err, "Failed to schedule contractor")
	}

	name := "contractor"
	if contractors, err := a.client.ListContractors(ctx, id); err == nil {
		for _, c := range contractors {
			if c.ID == in.ContractorID && c.Name != "" {
				name = c.Name
			}
		}
	}

	label := fmt.Sprintf("Scheduled %s on %s", name, FormatDateTime(in.ScheduledDate))
	if err := a.repo.AddActivity(store.Activity{
		ProjectID: id.String(),
		Kind:      activityScheduled,
		Label:     label,
		CreatedAt: a.now(),
	}); err != nil {
		return err
	}

	a.printf("%s\n", label)
	return nil
}

func (a *App) ContractorActivity(ctx context.Context, flag string, limit int) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	entries, err := a.repo.ListActivity(id.String(), limit)
	if err != nil {
		return err
	}

	return a.render(entries, func() {
		if len(entries) == 0 {
			a.printf("No contractor activity yet.\n")
			return
		}
		var rows [][]string
		for _, e := range entries {
			rows = append(rows, []string{FormatTime(e.CreatedAt), e.Kind, e.Label})
		}
		PrintTable(a.out, []string{"When", "Type", "Activity"}, rows, nil)
	})
}

// +---------------------+
// |                     |
// |       Permits       |
// |                     |
// +---------------------+

// ListPermits shows permits with the given status, or all of them for
// "all" or an empty filter.
func (a *App) ListPermits(ctx context.Context, flag, status string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}
	if status != "" && status != "all" && !slices.Contains(api.PermitStatuses, status) {
		return forms.Invalid(fmt.Sprintf("status must be all or one of: %s", strings.Join(api.PermitStatuses, ", ")))
	}

	const empty = "No permits found for this filter."
	permits, err := a.client.ListPermits(ctx, id)
	if err != nil {
		return a.fetchFailed("permit", "ListPermits", err, "Failed to fetch permits", empty)
	}
	shown := api.FilterPermits(permits, status)

	return a.render(shown, func() {
		if len(shown) == 0 {
			a.printf("%s\n", empty)
			return
		}
		var rows [][]string
		for _, p := range shown {
			rows = append(rows, []string{p.ID.String(), p.PermitName, string(p.EffectiveStatus()), FormatDate(p.ApprovalDate)})
		}
		PrintTable(a.out, []string{"ID", "Permit", "Status", "Approved"}, rows, nil)
	})
}

func (a *App) AddPermit(ctx context.Context, flag, name, status, approvalDate string) error {
	id, err := a.project(flag)
	if err != nil {
		return err
	}

	in := api.CreatePermitIn{
		ProjectID:    id,
		PermitName:   strings.TrimSpace(name),
		Status:       api.PermitStatus(orText(status, string(api.PermitPending))),
		ApprovalDate: api.Optional(strings.TrimSpace(approvalDate)),
	}
	if err := a.forms.Struct(in); err != nil {
		return err
	}

	if err := a.client.CreatePermit(ctx, in); err != nil {
		return a.fail("permit", "AddPermit", err, "Failed to add permit")
	}

	a.printf("Permit added: %s\n", in.PermitName)
	return a.ListPermits(ctx, id.String(), "all")
}

func (a *App) SetPermitStatus(ctx context.Context, permitID, status string) error {
	if status == "" {
		var err error
		status, err = a.picker.Pick("Permit status", statusOptions(api.PermitStatuses))
		if err != nil {
			return err
		}
	}
	if !slices.Contains(api.PermitStatuses, status) {
		return forms.Invalid(fmt.Sprintf("status must be one of: %s", strings.Join(api.PermitStatuses, ", ")))
	}

	if err := a.client.UpdatePermitStatus(ctx, api.ID(permitID), api.PermitStatus(status)); err != nil {
		return a.fail("permit", "SetPermitStatus", err, "Failed to update permit status")
	}

	a.printf("Permit %s is now %s\n", permitID, status)
	return nil
}
