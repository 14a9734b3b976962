package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrNilDependency is returned by Init when a required dependency is missing.
var ErrNilDependency = errors.New(ErrNilACDFatalLogMsg)

// MessageResponse is the {"message": ...} body most routes answer with.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of failed requests.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Failed []string `json:"failed,omitempty"`
}

// Message writes a 200 {"message": msg} response.
func Message(c *fiber.Ctx, msg string) error {
	return c.JSON(MessageResponse{Message: msg})
}

// Error writes an {"error": msg} response with the given status.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}

// InvalidBody answers a request whose body could not be decoded.
func InvalidBody(c *fiber.Ctx) error {
	return Error(c, fiber.StatusBadRequest, ErrMsgInvalidBody)
}

// Unauthorized answers a failed credential check.
func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{Message: MsgInvalid})
}

// ParseID reads the :id route parameter as a positive integer.
func ParseID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(IDParam), 10, 64)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}

	return id, nil
}

// ErrorHandler renders errors that reach the fiber app as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := ErrMsgGeneric

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	return Error(c, code, msg)
}
