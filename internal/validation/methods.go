package validation

import (
	"fmt"
	"time"

	apperrors "chargili/internal/errors"
)

// Checker accumulates field errors for hand written rules.
type Checker struct {
	Errors apperrors.ValidationErrors
}

func NewChecker() *Checker {
	return &Checker{Errors: apperrors.ValidationErrors{}}
}

// Valid checks if there are any validation errors
func (c *Checker) Valid() bool {
	return len(c.Errors) == 0
}

// Check adds an error if the condition is false. The first error of a field wins.
func (c *Checker) Check(ok bool, field, message string) {
	if !ok {
		c.Errors.Add(field, message)
	}
}

// DateRange rejects a start that falls after its end. Unparseable values are reported too.
func (c *Checker) DateRange(startField, start, endField, end string) {
	from, okFrom := c.date(startField, start)
	to, okTo := c.date(endField, end)
	if okFrom && okTo && !from.IsZero() && !to.IsZero() {
		c.Check(!from.After(to), startField, "La date de début doit précéder la date de fin")
	}
}

func (c *Checker) date(field, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{DateLayout, DateTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	c.Check(false, field, fmt.Sprintf("Date invalide : %s", value))
	return time.Time{}, false
}

// Err returns the accumulated errors or nil.
func (c *Checker) Err() error {
	return c.Errors.OrNil()
}
