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

// AdminEventHandlerInterface defines the contract for admin event handlers
type AdminEventHandlerInterface interface {
	ListEvents(c fiber.Ctx) error
	CreateEvent(c fiber.Ctx) error
	UpdateEvent(c fiber.Ctx) error
	DeleteEvent(c fiber.Ctx) error
	ExportEvents(c fiber.Ctx) error
}

// AdminEventHandler handles the dashboard's event management requests
type AdminEventHandler struct {
	eventFlow businessflow.AdminEventFlow
	validator *validator.Validate
}

// NewAdminEventHandler creates a new admin event handler
func NewAdminEventHandler(eventFlow businessflow.AdminEventFlow) *AdminEventHandler {
	return &AdminEventHandler{
		eventFlow: eventFlow,
		validator: validator.New(),
	}
}

func (h *AdminEventHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AdminEventHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListEvents handles GET /api/admin/events
func (h *AdminEventHandler) ListEvents(c fiber.Ctx) error {
	result, err := h.eventFlow.ListEvents(h.createRequestContext(c, "/api/admin/events"))
	if err != nil {
		log.Println("Admin event list fetch failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch events", "FETCH_EVENTS_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Events retrieved successfully", result)
}

// CreateEvent handles POST /api/admin/events
func (h *AdminEventHandler) CreateEvent(c fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.eventFlow.CreateEvent(h.createRequestContext(c, "/api/admin/events"), &req)
	if err != nil {
		if businessflow.IsBrandNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Brand not found", "BRAND_NOT_FOUND", nil)
		}
		if be, ok := err.(*businessflow.BusinessError); ok && be.Code == "VALIDATION_ERROR" {
			return h.ErrorResponse(c, fiber.StatusBadRequest, be.Message, be.Code, nil)
		}

		log.Println("Event creation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Event creation failed", "CREATE_EVENT_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Event created successfully", result)
}

// UpdateEvent handles PATCH /api/admin/events/:uuid
func (h *AdminEventHandler) UpdateEvent(c fiber.Ctx) error {
	eventUUID := c.Params("uuid")
	if eventUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Event UUID is required", "MISSING_EVENT_UUID", nil)
	}

	var req dto.UpdateEventRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.eventFlow.UpdateEvent(h.createRequestContext(c, "/api/admin/events/"+eventUUID), eventUUID, &req)
	if err != nil {
		if businessflow.IsEventNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Event not found", "EVENT_NOT_FOUND", nil)
		}
		if businessflow.IsBrandNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Brand not found", "BRAND_NOT_FOUND", nil)
		}
		if be, ok := err.(*businessflow.BusinessError); ok && be.Code == "VALIDATION_ERROR" {
			return h.ErrorResponse(c, fiber.StatusBadRequest, be.Message, be.Code, nil)
		}

		log.Println("Event update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Event update failed", "UPDATE_EVENT_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Event updated successfully", result)
}

// DeleteEvent handles DELETE /api/admin/events/:uuid
func (h *AdminEventHandler) DeleteEvent(c fiber.Ctx) error {
	eventUUID := c.Params("uuid")
	if eventUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Event UUID is required", "MISSING_EVENT_UUID", nil)
	}

	err := h.eventFlow.DeleteEvent(h.createRequestContext(c, "/api/admin/events/"+eventUUID), eventUUID)
	if err != nil {
		if businessflow.IsEventNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Event not found", "EVENT_NOT_FOUND", nil)
		}

		log.Println("Event deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Event deletion failed", "DELETE_EVENT_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Event deleted successfully", nil)
}

// ExportEvents handles GET /api/admin/events/export, streaming an xlsx workbook
func (h *AdminEventHandler) ExportEvents(c fiber.Ctx) error {
	filename, data, err := h.eventFlow.ExportEventsExcel(h.createRequestContext(c, "/api/admin/events/export"))
	if err != nil {
		log.Println("Event export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Event export failed", "EXPORT_EVENTS_FAILED", err.Error())
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(data)
}

func (h *AdminEventHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
