package model

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// boxer is satisfied by every Optional instantiation.
type boxer interface{ boxed() any }

// validatorInstance builds the shared validator on first use.  Optional
// relations are unwrapped so present values are validated recursively and
// absent ones are skipped.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
			return Rating(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return CategoryName(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
			return LanguageName(fl.Field().String()).Valid()
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if b, ok := field.Interface().(boxer); ok {
				return b.boxed()
			}
			return nil
		},
			Optional[string]{},
			Optional[Timestamp]{},
			Optional[Address]{},
			Optional[Language]{},
			Optional[[]Category]{},
			Optional[Film]{},
			Optional[[]Film]{},
			Optional[Inventory]{},
			Optional[Customer]{},
			Optional[Staff]{},
			Optional[Rental]{},
			Optional[[]Rental]{},
			Optional[[]Payment]{},
		)
		validate = v
	})
	return validate
}

// Validate checks a decoded entity (or a pointer to one, or a Page of them)
// against the data contract: positive identifiers, closed enumerations and
// the same rules on every embedded relation that is present.
func Validate(v any) error {
	return validatorInstance().Struct(v)
}
