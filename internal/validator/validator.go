package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/culturelens/culturelens-backend/internal/response"
)

// trans is the singleton English translator for validation errors.
var trans ut.Translator

// Setup registers the validator with English translations on Gin's binding
// engine. Call once during application startup.
func Setup() {
	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		en_translations.RegisterDefaultTranslations(v, trans)
	}
}

// Details converts a binding or validation error into the API's path/message
// detail shape. Validation errors yield one detail per failed field; anything
// else (e.g. a JSON syntax or type error) collapses into a single detail with
// an empty path.
func Details(err error) []response.Detail {
	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		details := make([]response.Detail, 0, len(ve))
		for _, fe := range ve {
			msg := fe.Error()
			if trans != nil {
				msg = fe.Translate(trans)
			}
			details = append(details, response.Detail{
				Path:    []string{fe.Field()},
				Message: msg,
			})
		}
		return details
	}

	return []response.Detail{{Path: []string{}, Message: err.Error()}}
}
