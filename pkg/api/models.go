package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"reno/pkg/analytics"
)

// ID is an opaque record identifier. The API sends strings, older endpoints
// send numbers.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	*id = ID(b)
	return nil
}

func (id ID) String() string {
	return string(id)
}

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

type PermitStatus string

const (
	PermitPending  PermitStatus = "pending"
	PermitApproved PermitStatus = "approved"
	PermitRejected PermitStatus = "rejected"
)

var (
	ProjectStatuses = []string{string(ProjectPlanning), string(ProjectInProgress), string(ProjectCompleted), string(ProjectOnHold)}
	TaskStatuses    = []string{string(TaskPending), string(TaskInProgress), string(TaskCompleted)}
	TaskPriorities  = []string{"low", "medium", "high"}
	RecurringCycles = []string{"monthly", "yearly"}
	PermitStatuses  = []string{string(PermitPending), string(PermitApproved), string(PermitRejected)}
)

type (
	Project struct {
		ID          ID              `json:"id"`
		Name        string          `json:"name"`
		TotalBudget analytics.Money `json:"total_budget"`
		Status      ProjectStatus   `json:"status,omitempty"`
		StartDate   string          `json:"start_date,omitempty"`
		EndDate     string          `json:"end_date,omitempty"`
		CreatedAt   string          `json:"created_at,omitempty"`
	}

	Member struct {
		ID          ID     `json:"id"`
		ProjectID   ID     `json:"project_id,omitempty"`
		UserID      ID     `json:"user_id,omitempty"`
		InviteEmail string `json:"invite_email,omitempty"`
		Role        string `json:"role,omitempty"`
		Status      string `json:"status,omitempty"`
		Name        string `json:"name,omitempty"`
		Email       string `json:"email,omitempty"`
	}

	Task struct {
		ID             ID         `json:"id"`
		ProjectID      ID         `json:"project_id,omitempty"`
		Title          string     `json:"title"`
		Description    string     `json:"description,omitempty"`
		Status         TaskStatus `json:"status,omitempty"`
		Priority       string     `json:"priority,omitempty"`
		Deadline       string     `json:"deadline,omitempty"`
		ReminderAt     string     `json:"reminder_at,omitempty"`
		AssignedTo     ID         `json:"assigned_to,omitempty"`
		AssignedMember *Member    `json:"assigned_member,omitempty"`
		Recurring      bool       `json:"recurring"`
		RecurringCycle string     `json:"recurring_cycle,omitempty"`
	}

	Expense struct {
		ID        ID              `json:"id"`
		ProjectID ID              `json:"project_id,omitempty"`
		Title     string          `json:"title"`
		Category  string          `json:"category,omitempty"`
		Amount    analytics.Money `json:"amount"`
		CreatedAt string          `json:"created_at,omitempty"`
	}

	Material struct {
		ID            ID              `json:"id"`
		ProjectID     ID              `json:"project_id,omitempty"`
		Name          string          `json:"name"`
		EstimatedCost analytics.Money `json:"estimated_cost"`
		Purchased     bool            `json:"purchased"`
	}

	ShoppingItem struct {
		ID            ID              `json:"id"`
		ProjectID     ID              `json:"project_id,omitempty"`
		ItemName      string          `json:"item_name"`
		EstimatedCost analytics.Money `json:"estimated_cost"`
		ActualCost    analytics.Money `json:"actual_cost"`
		Purchased     bool            `json:"purchased"`
	}

	Contractor struct {
		ID        ID     `json:"id"`
		ProjectID ID     `json:"project_id,omitempty"`
		Name      string `json:"name"`
		Phone     string `json:"phone,omitempty"`
		Email     string `json:"email,omitempty"`
		Role      string `json:"role,omitempty"`
	}

	ContractorVisit struct {
		ContractorID  ID     `json:"contractor_id"`
		ScheduledDate string `json:"scheduled_date"`
		Note          string `json:"note,omitempty"`
	}

	Permit struct {
		ID           ID           `json:"id"`
		ProjectID    ID           `json:"project_id,omitempty"`
		PermitName   string       `json:"permit_name"`
		Status       PermitStatus `json:"status,omitempty"`
		ApprovalDate string       `json:"approval_date,omitempty"`
	}

	InventoryItem struct {
		ID       ID              `json:"id"`
		Name     string          `json:"name"`
		Quantity analytics.Money `json:"quantity"`
		Unit     string          `json:"unit,omitempty"`
		Location string          `json:"location,omitempty"`
	}

	Photo struct {
		ID        ID     `json:"id"`
		ProjectID ID     `json:"project_id,omitempty"`
		ImageURL  string `json:"image_url"`
	}

	Reminder struct {
		ID           ID     `json:"id"`
		Title        string `json:"title"`
		Description  string `json:"description,omitempty"`
		ReminderDate string `json:"reminder_date"`
		Completed    bool   `json:"completed"`
	}

	DashboardSummary struct {
		TotalProjects     int             `json:"totalProjects"`
		ActiveProjects    int             `json:"activeProjects"`
		CompletedProjects int             `json:"completedProjects"`
		OverdueTasks      int             `json:"overdueTasks"`
		TotalBudget       analytics.Money `json:"totalBudget"`
		TotalSpent        analytics.Money `json:"totalSpent"`
	}

	ProgressEstimation struct {
		ProjectID            ID              `json:"projectId,omitempty"`
		CompletionPercentage analytics.Money `json:"completionPercentage"`
		EstimatedCompletion  analytics.Money `json:"estimatedCompletion"`
		TaskCompletionRatio  string          `json:"taskCompletionRatio,omitempty"`
		CompletedTasks       int             `json:"completedTasks"`
		TotalTasks           int             `json:"totalTasks"`
		EstimatedEndDate     string          `json:"estimatedEndDate,omitempty"`
	}

	SeriesPoint struct {
		Label string          `json:"label"`
		Value analytics.Money `json:"value"`
	}

	StatusCount struct {
		Status string          `json:"status"`
		Count  analytics.Money `json:"count"`
	}

	CategoryAmount struct {
		Category string          `json:"category"`
		Amount   analytics.Money `json:"amount"`
	}

	ProjectAnalytics struct {
		ProjectID              ID               `json:"projectId,omitempty"`
		TotalBudget            analytics.Money  `json:"totalBudget"`
		TotalSpent             analytics.Money  `json:"totalSpent"`
		BudgetSeries           []SeriesPoint    `json:"budgetSeries"`
		TaskStatusDistribution []StatusCount    `json:"taskStatusDistribution"`
		ExpenseBreakdown       []CategoryAmount `json:"expenseBreakdown"`
	}
)

// UnmarshalJSON accepts "_id" as well as "id"; inventory records come from a
// document store.
func (i *InventoryItem) UnmarshalJSON(b []byte) error {
	type plain InventoryItem
	var aux struct {
		plain
		DocID ID `json:"_id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*i = InventoryItem(aux.plain)
	if i.ID == "" {
		i.ID = aux.DocID
	}
	return nil
}

func (s ShoppingItem) BudgetLine() analytics.Line {
	return analytics.Line{Estimated: s.EstimatedCost, Actual: s.ActualCost, Purchased: s.Purchased}
}

func (m Material) BudgetLine() analytics.Line {
	return analytics.Line{Estimated: m.EstimatedCost, Purchased: m.Purchased}
}

// ToggleCost is the actual cost sent when flipping an item's purchased flag:
// actual, else estimated, else zero.
func (s ShoppingItem) ToggleCost() analytics.Money {
	cost := s.ActualCost.Or(s.EstimatedCost)
	if !cost.Valid {
		return analytics.NewMoney(0)
	}
	return cost
}

func (t Task) EffectiveStatus() TaskStatus {
	if t.Status == "" {
		return TaskPending
	}
	return t.Status
}

func (t Task) EffectivePriority() string {
	if t.Priority == "" {
		return "medium"
	}
	return t.Priority
}

func (p Permit) EffectiveStatus() PermitStatus {
	if p.Status == "" {
		return PermitPending
	}
	return p.Status
}

// Assignable reports whether a member can be given tasks: it has a user
// account and its invite is accepted or has no status.
func (m Member) Assignable() bool {
	return m.UserID != "" && (m.Status == "" || m.Status == "accepted")
}

func (m Member) Display() string {
	switch {
	case m.Name != "":
		return m.Name
	case m.Email != "":
		return m.Email
	case m.InviteEmail != "":
		return m.InviteEmail
	}
	return m.UserID.String()
}

// Completion is the progress figure, preferring completionPercentage over
// estimatedCompletion.
func (p ProgressEstimation) Completion() analytics.Money {
	return p.CompletionPercentage.Or(p.EstimatedCompletion)
}

func (p ProgressEstimation) Ratio() string {
	if p.TaskCompletionRatio != "" {
		return p.TaskCompletionRatio
	}
	return strings.Join([]string{strconv.Itoa(p.CompletedTasks), strconv.Itoa(p.TotalTasks)}, "/")
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime reads the date formats the API and its forms use.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
