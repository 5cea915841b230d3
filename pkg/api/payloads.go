package api

import (
	"reno/pkg/analytics"
)

// Request bodies. Optional text fields are pointers so that a blank form
// field is sent as null.

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateProjectIn struct {
	Name        string          `json:"name" validate:"required"`
	TotalBudget analytics.Money `json:"total_budget" validate:"positive_money"`
}

type CreateTaskIn struct {
	ProjectID      ID      `json:"project_id" validate:"required"`
	Title          string  `json:"title" validate:"required"`
	Description    *string `json:"description"`
	Priority       string  `json:"priority" validate:"oneof=low medium high"`
	Deadline       *string `json:"deadline"`
	ReminderAt     *string `json:"reminder_at"`
	AssignedTo     *ID     `json:"assigned_to"`
	Recurring      bool    `json:"recurring"`
	RecurringCycle *string `json:"recurring_cycle" validate:"omitempty,oneof=monthly yearly"`
}

type taskStatusIn struct {
	Status TaskStatus `json:"status"`
}

type taskAssignIn struct {
	AssignedTo *ID `json:"assigned_to"`
}

type InviteMemberIn struct {
	ProjectID   ID      `json:"project_id" validate:"required"`
	UserID      *ID     `json:"user_id"`
	InviteEmail *string `json:"invite_email" validate:"omitempty,email"`
	Role        string  `json:"role"`
}

type CreateExpenseIn struct {
	ProjectID ID              `json:"project_id" validate:"required"`
	Title     string          `json:"title" validate:"required"`
	Category  *string         `json:"category"`
	Amount    analytics.Money `json:"amount" validate:"nonnegative_money"`
}

type CreateMaterialIn struct {
	ProjectID     ID              `json:"project_id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	EstimatedCost analytics.Money `json:"estimated_cost" validate:"nonnegative_money"`
}

type materialPatchIn struct {
	Purchased bool `json:"purchased"`
}

type CreateShoppingIn struct {
	ProjectID     ID              `json:"project_id" validate:"required"`
	ItemName      string          `json:"item_name" validate:"required"`
	EstimatedCost analytics.Money `json:"estimated_cost"`
}

type shoppingPatchIn struct {
	Purchased  bool            `json:"purchased"`
	ActualCost analytics.Money `json:"actual_cost"`
}

type CreateContractorIn struct {
	ProjectID ID      `json:"project_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Phone     *string `json:"phone" validate:"omitempty,phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Role      *string `json:"role"`
}

type ScheduleVisitIn struct {
	ContractorID  ID      `json:"contractor_id" validate:"required"`
	ScheduledDate string  `json:"scheduled_date" validate:"required"`
	Note          *string `json:"note"`
}

type CreatePermitIn struct {
	ProjectID    ID           `json:"project_id" validate:"required"`
	PermitName   string       `json:"permit_name" validate:"required"`
	Status       PermitStatus `json:"status" validate:"oneof=pending approved rejected"`
	ApprovalDate *string      `json:"approval_date"`
}

type permitStatusIn struct {
	Status PermitStatus `json:"status"`
}

type InventoryIn struct {
	Name     string          `json:"name" validate:"required"`
	Quantity analytics.Money `json:"quantity" validate:"nonnegative_money"`
	Unit     string          `json:"unit,omitempty"`
	Location string          `json:"location,omitempty"`
}

type CreatePhotoIn struct {
	ProjectID ID     `json:"project_id" validate:"required"`
	ImageURL  string `json:"image_url" validate:"required"`
}

type CreateReminderIn struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	ReminderDate string  `json:"reminder_date" validate:"required"`
}

type inspirationIn struct {
	Prompt string `json:"prompt"`
}

// Optional returns nil for blank input so the field is sent as null.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func OptionalID(id ID) *ID {
	if id == "" {
		return nil
	}
	return &id
}
