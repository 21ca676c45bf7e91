package handlers

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/hye2gold/Salendar/app/dto"
	businessflow "github.com/hye2gold/Salendar/business_flow"
	"github.com/hye2gold/Salendar/utils"
)

// CalendarHandlerInterface defines the contract for the public calendar feed
type CalendarHandlerInterface interface {
	MonthEvents(c fiber.Ctx) error
}

// CalendarHandler serves the public month-window event feed
type CalendarHandler struct {
	calendarFlow businessflow.CalendarFlow
	validator    *validator.Validate
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarFlow businessflow.CalendarFlow) *CalendarHandler {
	return &CalendarHandler{
		calendarFlow: calendarFlow,
		validator:    validator.New(),
	}
}

func (h *CalendarHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

// MonthEvents handles GET /api/events?year&month. The response body is the
// feed itself rather than the APIResponse envelope: the calendar frontend
// consumes {events, brandLogos, sources} directly.
func (h *CalendarHandler) MonthEvents(c fiber.Ctx) error {
	var req dto.EventsRequest
	if err := c.Bind().Query(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Year and month are required", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.calendarFlow.MonthEvents(h.createRequestContext(c, "/api/events"), req.Year, req.Month)
	if err != nil {
		if be, ok := err.(*businessflow.BusinessError); ok && be.Code == "VALIDATION_ERROR" {
			return h.ErrorResponse(c, fiber.StatusBadRequest, be.Message, be.Code, nil)
		}

		log.Println("Month events fetch failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch events", "FETCH_EVENTS_FAILED", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CalendarHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
