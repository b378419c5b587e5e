package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/payledger/internal/auth"
	"github.com/dmitrijs2005/payledger/internal/common"
	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var maxUnitPrice = decimal.NewFromInt(1_000_000)

// NewPayment is the input of LedgerService.AddPayment.
type NewPayment struct {
	UserID      int64           `json:"user_id" validate:"gt=0"`
	CategoryID  int64           `json:"category_id" validate:"gt=0"`
	Description string          `json:"description" validate:"min=3,max=255"`
	Quantity    int             `json:"quantity" validate:"min=1,max=999"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"money"`
	Date        models.Date     `json:"date" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(models.Date); ok && !d.IsZero() {
			return d.String()
		}
		return ""
	}, models.Date{})

	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return d.IsPositive() && d.LessThanOrEqual(maxUnitPrice) && d.Equal(d.Round(2))
	})

	_ = v.RegisterValidation("pin", func(fl validator.FieldLevel) bool {
		_, err := auth.ParsePIN(fl.Field().String())
		return err == nil
	})

	return v
}

// validationError converts the first validator failure into a
// *common.ValidationError.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &common.ValidationError{Field: fe.Field(), Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be set"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "pin":
		return fmt.Sprintf("must be a number between %d and %d", auth.MinPIN, auth.MaxPIN)
	case "money":
		return "must be greater than 0 and at most 1000000 with up to 2 decimals"
	default:
		return "failed " + fe.Tag()
	}
}
