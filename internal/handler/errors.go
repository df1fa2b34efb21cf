package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Tibebua/NationalPark/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ModelErrors — тело ответа с ошибками: ключ (имя поля или пустая строка) → сообщения.
// Ошибки, не относящиеся к полю, пишутся под пустым ключом: {"": ["National Park Exists!"]}.
type ModelErrors map[string][]string

// NewModelErrors создает контейнер с одной ошибкой без привязки к полю.
func NewModelErrors(format string, args ...any) ModelErrors {
	errs := ModelErrors{}
	errs.Add("", fmt.Sprintf(format, args...))
	return errs
}

// Add добавляет сообщение под ключом key.
func (e ModelErrors) Add(key, message string) {
	e[key] = append(e[key], message)
}

// bindingErrors переводит ошибку разбора тела запроса в ModelErrors.
func bindingErrors(err error) ModelErrors {
	errs := ModelErrors{}

	var verrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			errs.Add(fe.Field(), fieldMessage(fe))
		}
	case errors.Is(err, dto.ErrInvalidDate):
		errs.Add("", "The date is not valid, expected YYYY-MM-DD or RFC 3339.")
	case errors.Is(err, io.EOF):
		errs.Add("", "A non-empty request body is required.")
	case errors.As(err, &syntaxErr):
		errs.Add("", fmt.Sprintf("The request body is not valid JSON (offset %d).", syntaxErr.Offset))
	case errors.As(err, &typeErr):
		errs.Add(typeErr.Field, fmt.Sprintf("The %s field has an invalid value.", typeErr.Field))
	default:
		errs.Add("", err.Error())
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "difficulty":
		return fmt.Sprintf("The %s field must be one of easy, moderate, difficult, expert.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}

// pathID разбирает числовой параметр пути; при ошибке отвечает 400 и возвращает false.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewModelErrors("The value '%s' is not valid.", c.Param(name)))
		return 0, false
	}
	return id, true
}

// jsonFieldName возвращает имя поля из тега json, чтобы ошибки совпадали с телом запроса.
func jsonFieldName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}
