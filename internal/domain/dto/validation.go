package dto

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding rules to gin's validator. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(wireName)
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		if registerErr = v.RegisterValidation("decimal_gte0", decimalGTE0); registerErr != nil {
			return
		}
		registerErr = v.RegisterValidation("category_slug", categorySlug)
	})
	return registerErr
}

// wireName reports validation errors under the JSON or query name of the field.
func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// decimalValue lets field tags see a decimal as its string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// decimalGTE0 accepts a decimal.Decimal, or a string holding one, that is not negative.
func decimalGTE0(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return !v.IsNegative()
	case string:
		d, err := decimal.NewFromString(v)
		return err == nil && !d.IsNegative()
	default:
		return false
	}
}

func categorySlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}
