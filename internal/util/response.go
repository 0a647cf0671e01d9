package util

import (
	"errors"
	"runtime/debug"

	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/fadilmartias/feedback-service/internal/config"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code    int
	Message string
	Data    any
	Meta    any
}

type OrderedSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Meta    any    `json:"meta,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// SuccessResponse sends the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	response := OrderedSuccessResponse{
		Success: true,
		Message: params.Message,
		Data:    params.Data,
		Meta:    params.Meta,
	}
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(response)
}

// ErrorResponse sends the standard error envelope. Outside production the
// underlying error and a stack trace are included for debugging.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
	}
	if params.Details != nil {
		response.Details = params.Details
	}
	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			response.DevMessage = errs[0].Error()
			response.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			response.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			response.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if errorCode == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(response)
}

// DomainErrorResponse maps the typed domain error kinds onto HTTP statuses
// and sends the error envelope. Unknown errors become a 500.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	var (
		validationErr *apperror.ValidationError
		notFoundErr   *apperror.NotFoundError
		conflictErr   *apperror.ConflictError
		cursorErr     *apperror.InvalidCursorError
	)
	switch {
	case errors.As(err, &validationErr):
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: validationErr.Error()})
	case errors.As(err, &cursorErr):
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusBadRequest, Message: cursorErr.Error()})
	case errors.As(err, &notFoundErr):
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusNotFound, Message: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusConflict, Message: conflictErr.Error()})
	default:
		return ErrorResponse(c, ErrorResponseFormat{Message: "internal server error"}, err)
	}
}
