// Package forms validates request payloads before they are sent and turns
// field failures into the messages shown next to each form.
package forms

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"

	"reno/pkg/analytics"
)

// ValidationError is a local form failure. Nothing was sent to the server.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a ValidationError for checks that span several fields.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// messages are keyed by Struct.Field.
var messages = map[string]string{
	"Credentials.Email":              "Email and password are required",
	"Credentials.Password":           "Email and password are required",
	"CreateProjectIn.Name":           "Project name required",
	"CreateProjectIn.TotalBudget":    "Total budget required",
	"CreateTaskIn.Title":             "Task title is required",
	"CreateExpenseIn.Title":          "Expense title is required",
	"CreateExpenseIn.Amount":         "Valid amount is required",
	"CreateMaterialIn.Name":          "Item name is required",
	"CreateMaterialIn.EstimatedCost": "Valid amount is required",
	"CreateShoppingIn.ItemName":      "Item name is required",
	"InventoryIn.Name":               "Item name is required",
	"InventoryIn.Quantity":           "Valid quantity is required",
	"CreatePermitIn.PermitName":      "Permit name is required",
	"CreateContractorIn.Name":        "Contractor name is required",
	"ScheduleVisitIn.ContractorID":   "Select contractor and date",
	"ScheduleVisitIn.ScheduledDate":  "Select contractor and date",
	"CreateReminderIn.Title":         "Title and reminder date are required",
	"CreateReminderIn.ReminderDate":  "Title and reminder date are required",
	"InviteMemberIn.InviteEmail":     "Invite email is required",
	"CreatePhotoIn.ImageURL":         "Choose a photo to upload",
	"CreateTaskIn.RecurringCycle":    "Recurring cycle must be monthly or yearly",
	"CreateContractorIn.Phone":       "Invalid phone number",
	"CreateContractorIn.Email":       "Invalid email address",
}

type Validator struct {
	validate *validator.Validate
	region   string
}

// New returns a Validator. region is the default region for phone numbers
// written without a country code.
func New(region string) *Validator {
	v := validator.New()

	// Money validates as its amount. A missing or unparsable amount is NaN,
	// which fails every comparison, so zero stays a valid amount.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		m, ok := field.Interface().(analytics.Money)
		if !ok || !m.Valid {
			return math.NaN()
		}
		f, _ := m.Amount.Float64()
		return f
	}, analytics.Money{})

	v.RegisterAlias("positive_money", "gt=0")
	v.RegisterAlias("nonnegative_money", "gte=0")

	f := &Validator{validate: v, region: strings.ToUpper(region)}
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidatePhoneNumber(fl.Field().String(), f.region) == nil
	})
	return f
}

// Struct validates s and returns the first failure as a *ValidationError.
func (f *Validator) Struct(s any) error {
	err := f.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	return &ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructNamespace()]; ok {
		return msg
	}

	field := strings.ToLower(fe.Field())
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email address"
	case "phone":
		return "Invalid phone number"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt", "gte":
		return fmt.Sprintf("%s must be a valid amount", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}

func ValidatePhoneNumber(phoneNumber, countryCode string) error {
	p, err := libphonenumber.Parse(phoneNumber, countryCode)
	if err != nil {
		return err
	}

	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("phone number is not valid")
	}

	return nil
}

// FormatPhone returns the number in international format, or the input
// unchanged when it does not parse.
func FormatPhone(phoneNumber, countryCode string) string {
	p, err := libphonenumber.Parse(phoneNumber, countryCode)
	if err != nil {
		return phoneNumber
	}
	return libphonenumber.Format(p, libphonenumber.INTERNATIONAL)
}
