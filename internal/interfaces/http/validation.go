package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
)

var validate = newValidator()

// newValidator usa los nombres json/query en los errores de campo.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// bindBody parsea el cuerpo JSON y valida las etiquetas validate.
func bindBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.NewValidationError("", "cuerpo inválido")
	}
	return validate.Struct(dst)
}

// bindQuery parsea la query string y valida las etiquetas validate.
func bindQuery(c *fiber.Ctx, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return domain.NewValidationError("", "parámetros de consulta inválidos")
	}
	return validate.Struct(dst)
}

// idParam devuelve el parámetro de ruta :id si es un UUID válido.
func idParam(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.NewValidationError("id", "debe ser un UUID")
	}
	return id, nil
}

func fieldDetails(errs validator.ValidationErrors) []dto.FieldErrorDTO {
	out := make([]dto.FieldErrorDTO, 0, len(errs))
	for _, e := range errs {
		out = append(out, dto.FieldErrorDTO{Field: e.Field(), Message: validationMessage(e)})
	}
	return out
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "email inválido"
	case "uuid":
		return "debe ser un UUID"
	case "oneof":
		return "debe ser uno de: " + e.Param()
	case "min":
		if e.Type().Kind() == reflect.String {
			return "debe tener al menos " + e.Param() + " caracteres"
		}
		return "debe ser al menos " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "debe tener como máximo " + e.Param() + " caracteres"
		}
		return "debe ser como máximo " + e.Param()
	}
	return "valor inválido"
}
