package validation

import (
	stderrors "errors"
	"reflect"
	"regexp"
	"strings"

	apperrors "chargili/internal/errors"
	"chargili/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var isoCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Validator checks dialog forms against their struct tags and reports
// French messages keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return models.IsSupportedCurrency(fl.Field().String())
	})
	_ = v.RegisterValidation("isocode", func(fl validator.FieldLevel) bool {
		return isoCodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	v.RegisterStructValidation(commissionRules, models.CommissionForm{})

	return &Validator{validate: v}
}

// Struct validates s and returns apperrors.ValidationErrors on failure.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	out := apperrors.ValidationErrors{}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), messageFor(fe.Field(), fe.Tag()))
	}
	return out
}

// A percentage commission cannot exceed 100, a fixed one is unbounded.
func commissionRules(sl validator.StructLevel) {
	form := sl.Current().Interface().(models.CommissionForm)
	if form.TypeCommission == models.CommissionPercentage && form.Valeur != nil && *form.Valeur > MaxPercentage {
		sl.ReportError(form.Valeur, "valeur", "Valeur", "maxpercent", "")
	}
}
