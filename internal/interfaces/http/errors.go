package http

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	appledger "github.com/jhoicas/Temizlik-api/internal/application/ledger"
	"github.com/jhoicas/Temizlik-api/internal/application/dto"
	"github.com/jhoicas/Temizlik-api/internal/domain"
	"github.com/jhoicas/Temizlik-api/pkg/logger"
)

// ErrorHandler traduce los errores que devuelven los handlers a dto.ErrorResponse.
// Se registra en fiber.Config; los 5xx se loguean con método y ruta.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		status, body := mapError(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).
				Str("code", body.Code).Msg("error en petición")
		}
		return c.Status(status).JSON(body)
	}
}

func mapError(err error) (int, dto.ErrorResponse) {
	var (
		fiberErr   *fiber.Error
		validation *domain.ValidationError
		fieldErrs  validator.ValidationErrors
		stepErr    *appledger.PayrollStepError
	)
	switch {
	case errors.As(err, &fieldErrs):
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code: "VALIDATION", Message: "la petición no pasó la validación", Details: fieldDetails(fieldErrs),
		}
	case errors.As(err, &validation):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: validation.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	case errors.Is(err, domain.ErrStoreUnavailable):
		body := dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "almacén de datos no disponible, intente más tarde"}
		if errors.As(err, &stepErr) {
			body.Step = stepErr.Step
		}
		return fiber.StatusServiceUnavailable, body
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, dto.ErrorResponse{Code: "TIMEOUT", Message: "tiempo de espera agotado"}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, dto.ErrorResponse{Code: "HTTP_" + httpCodeName(fiberErr.Code), Message: fiberErr.Message}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
}

func httpCodeName(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	}
	return "ERROR"
}
