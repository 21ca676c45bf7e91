package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/hye2gold/Salendar/app/dto"
	businessflow "github.com/hye2gold/Salendar/business_flow"
	"github.com/hye2gold/Salendar/utils"
)

// BrandHandlerInterface defines the contract for the public brand directory
type BrandHandlerInterface interface {
	ListBrands(c fiber.Ctx) error
}

// BrandHandler serves the public brand directory
type BrandHandler struct {
	brandFlow businessflow.BrandFlow
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brandFlow businessflow.BrandFlow) *BrandHandler {
	return &BrandHandler{brandFlow: brandFlow}
}

func (h *BrandHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *BrandHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListBrands handles GET /api/brands
func (h *BrandHandler) ListBrands(c fiber.Ctx) error {
	result, err := h.brandFlow.ListActiveBrands(h.createRequestContext(c, "/api/brands"))
	if err != nil {
		log.Println("Brand list fetch failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch brands", "FETCH_BRANDS_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Brands retrieved successfully", result)
}

func (h *BrandHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
