package domain

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(campaignDates, Campaign{})
	})
	return validate
}

func campaignDates(sl validator.StructLevel) {
	c := sl.Current().Interface().(Campaign)
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate.Time) {
		sl.ReportError(c.EndDate, "EndDate", "endDate", "gtefield", "StartDate")
	}
}

// Validate checks the record's field constraints (non-negative amounts,
// counters bounded by their totals, known enumerations).
func Validate(v any) error {
	if err := validatorInstance().Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return nil
}
