package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator: validator.v10 yang melaporkan nama field sesuai tag json,
// supaya error "question_id" bukan "QuestionID".
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}
