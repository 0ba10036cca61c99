package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/property-locator/internal/pkg/textnorm"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// В ошибках используем имена полей из json/query тегов
	validate.RegisterTagNameFunc(fieldName)
	_ = validate.RegisterValidation("location_query", validateLocationQuery)
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors - нарушенные правила по именам полей (поле -> тег правила).
// Для ошибок, не связанных с валидацией полей, возвращает nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

// validateLocationQuery - тег location_query: строка после нормализации
// должна быть длиной 2-50 символов и не содержать цифр
func validateLocationQuery(fl validator.FieldLevel) bool {
	return textnorm.ValidQuery(textnorm.Normalize(fl.Field().String()))
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
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
