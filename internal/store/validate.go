package store

import (
	"errors"
	"regexp"

	"github.com/theirongolddev/ccb/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewBenefit holds the user-supplied fields for a benefit being added.
type NewBenefit struct {
	Name        string           `validate:"notblank"`
	Description string           `validate:"notblank"`
	Card        string           `validate:"notblank"`
	Interval    model.Interval   `validate:"interval"`
	Value       *decimal.Decimal `validate:"-"`
}

var (
	validate  = newValidator()
	nonSpace  = regexp.MustCompile(`\S`)
	fieldKeys = map[string]string{
		"Name":        "name",
		"Description": "description",
		"Card":        "card",
		"Interval":    "reset interval",
	}
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Not empty and not only whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonSpace.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("interval", func(fl validator.FieldLevel) bool {
		return model.Interval(fl.Field().String()).Valid()
	})

	return v
}

// Validate checks nb and returns a *ValidationError for the first bad field.
func (nb NewBenefit) Validate() error {
	err := validate.Struct(nb)
	if err == nil {
		if nb.Value != nil && nb.Value.IsNegative() {
			return &ValidationError{Field: "value", Reason: "must not be negative"}
		}
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Field: "benefit", Reason: err.Error(), Err: err}
	}

	fe := verrs[0]
	field := fieldKeys[fe.Field()]
	reason := ErrBlank.Error()
	cause := ErrBlank
	switch fe.Tag() {
	case "interval":
		reason = "must be one of Monthly, Yearly, 5 Years"
		cause = model.ErrUnknownInterval
	}
	return &ValidationError{Field: field, Reason: reason, Err: cause}
}
