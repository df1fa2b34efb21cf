package handler

import (
	"reflect"
	"sync"

	"github.com/Tibebua/NationalPark/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validationsOnce sync.Once

// registerValidations добавляет в валидатор gin правило difficulty и имена полей из тегов json.
func registerValidations() {
	validationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := jsonFieldName(f.Tag.Get("json"))
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
			d, ok := fl.Field().Interface().(model.Difficulty)
			return ok && d.Valid()
		})
	})
}
