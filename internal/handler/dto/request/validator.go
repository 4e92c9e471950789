package request

import (
	"reflect"
	"strings"
	"sync"

	"aparthotel-booking/internal/domain/reservation"
	"aparthotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

var customTags = map[string]validator.Func{
	"contactmethod": func(fl validator.FieldLevel) bool {
		return reservation.ContactMethod(fl.Field().String()).IsValid()
	},
	"bookingstatus": func(fl validator.FieldLevel) bool {
		return reservation.Status(fl.Field().String()).IsValid()
	},
}

// RegisterValidators installs the booking enum tags on gin's validator and
// reports field names by their json/form tag. It is safe to call repeatedly;
// every call returns the outcome of the first.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errs.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = registerOn(v, customTags)
	})
	return registerErr
}

func registerOn(v *validator.Validate, tags map[string]validator.Func) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// DateTime is validated as the time it wraps, so required rejects a zero value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if dt, ok := field.Interface().(DateTime); ok {
			return dt.Time
		}
		return nil
	}, DateTime{})

	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrap(err, "register validation tag "+tag)
		}
	}
	return nil
}

// FieldErrors flattens binding errors into field -> failed rule.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
