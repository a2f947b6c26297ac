package directory

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"service_directory/internal/models"

	"github.com/go-playground/validator/v10"
)

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	// report JSON field names in rejection reasons
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("filtertag", func(fl validator.FieldLevel) bool {
		return IsFilterTag(fl.Field().String())
	})
	return v
}

// validateRecord returns a human-readable reason when r is malformed.
func validateRecord(r models.ServiceRecord) error {
	err := recordValidator.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			reasons = append(reasons, fmt.Sprintf("missing %s", fe.Field()))
		case "filtertag":
			reasons = append(reasons, fmt.Sprintf("unknown filter tag %q", fe.Value()))
		default:
			reasons = append(reasons, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(reasons, "; "))
}
