package handlers

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/hye2gold/Salendar/app/dto"
	businessflow "github.com/hye2gold/Salendar/business_flow"
	"github.com/hye2gold/Salendar/utils"
)

// AdminBrandHandlerInterface defines the contract for admin brand handlers
type AdminBrandHandlerInterface interface {
	ListBrands(c fiber.Ctx) error
	BrandDetail(c fiber.Ctx) error
	CreateBrand(c fiber.Ctx) error
	UpdateBrand(c fiber.Ctx) error
	DeleteBrand(c fiber.Ctx) error
}

// AdminBrandHandler handles the dashboard's brand management requests
type AdminBrandHandler struct {
	brandFlow businessflow.AdminBrandFlow
	validator *validator.Validate
}

// NewAdminBrandHandler creates a new admin brand handler
func NewAdminBrandHandler(brandFlow businessflow.AdminBrandFlow) *AdminBrandHandler {
	return &AdminBrandHandler{
		brandFlow: brandFlow,
		validator: validator.New(),
	}
}

func (h *AdminBrandHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AdminBrandHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListBrands handles GET /api/admin/brands
func (h *AdminBrandHandler) ListBrands(c fiber.Ctx) error {
	result, err := h.brandFlow.ListBrands(h.createRequestContext(c, "/api/admin/brands"))
	if err != nil {
		log.Println("Admin brand list fetch failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch brands", "FETCH_BRANDS_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Brands retrieved successfully", result)
}

// BrandDetail handles GET /api/admin/brands/:uuid
func (h *AdminBrandHandler) BrandDetail(c fiber.Ctx) error {
	brandUUID := c.Params("uuid")
	if brandUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Brand UUID is required", "MISSING_BRAND_UUID", nil)
	}

	result, err := h.brandFlow.BrandDetail(h.createRequestContext(c, "/api/admin/brands/"+brandUUID), brandUUID)
	if err != nil {
		if businessflow.IsBrandNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Brand not found", "BRAND_NOT_FOUND", nil)
		}

		log.Println("Admin brand detail fetch failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch brand", "FETCH_BRANDS_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Brand retrieved successfully", result)
}

// CreateBrand handles POST /api/admin/brands. The body is either JSON or a
// multipart form carrying a logo_file part alongside the fields.
func (h *AdminBrandHandler) CreateBrand(c fiber.Ctx) error {
	var req dto.CreateBrandRequest
	var logo *businessflow.LogoUpload

	if isMultipart(c) {
		if err := c.Bind().Form(&req); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data", "INVALID_REQUEST", err.Error())
		}
		upload, err := h.readLogoFile(c)
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid logo file", "INVALID_FILE", err.Error())
		}
		logo = upload
	} else {
		if err := c.Bind().JSON(&req); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
		}
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.brandFlow.CreateBrand(h.createRequestContext(c, "/api/admin/brands"), &req, logo)
	if err != nil {
		if businessflow.IsBrandNameTaken(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Brand name already exists", "BRAND_NAME_TAKEN", nil)
		}
		if be, ok := err.(*businessflow.BusinessError); ok {
			switch be.Code {
			case "VALIDATION_ERROR":
				return h.ErrorResponse(c, fiber.StatusBadRequest, be.Message, be.Code, nil)
			case "STORAGE_NOT_CONFIGURED":
				return h.ErrorResponse(c, fiber.StatusServiceUnavailable, "Object storage is not configured", be.Code, nil)
			}
		}

		log.Println("Brand creation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Brand creation failed", "CREATE_BRAND_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Brand created successfully", result)
}

// UpdateBrand handles PATCH /api/admin/brands/:uuid. Multipart form; the
// logo is replaced only when a new logo_file part is sent.
func (h *AdminBrandHandler) UpdateBrand(c fiber.Ctx) error {
	brandUUID := c.Params("uuid")
	if brandUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Brand UUID is required", "MISSING_BRAND_UUID", nil)
	}

	var req dto.UpdateBrandRequest
	var logo *businessflow.LogoUpload

	if isMultipart(c) {
		if err := c.Bind().Form(&req); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data", "INVALID_REQUEST", err.Error())
		}
		upload, err := h.readLogoFile(c)
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid logo file", "INVALID_FILE", err.Error())
		}
		logo = upload
	} else {
		if err := c.Bind().JSON(&req); err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
		}
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.brandFlow.UpdateBrand(h.createRequestContext(c, "/api/admin/brands/"+brandUUID), brandUUID, &req, logo)
	if err != nil {
		if businessflow.IsBrandNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Brand not found", "BRAND_NOT_FOUND", nil)
		}
		if businessflow.IsBrandNameTaken(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Brand name already exists", "BRAND_NAME_TAKEN", nil)
		}
		if be, ok := err.(*businessflow.BusinessError); ok && be.Code == "VALIDATION_ERROR" {
			return h.ErrorResponse(c, fiber.StatusBadRequest, be.Message, be.Code, nil)
		}

		log.Println("Brand update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Brand update failed", "UPDATE_BRAND_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Brand updated successfully", result)
}

// DeleteBrand handles DELETE /api/admin/brands/:uuid
func (h *AdminBrandHandler) DeleteBrand(c fiber.Ctx) error {
	brandUUID := c.Params("uuid")
	if brandUUID == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Brand UUID is required", "MISSING_BRAND_UUID", nil)
	}

	err := h.brandFlow.DeleteBrand(h.createRequestContext(c, "/api/admin/brands/"+brandUUID), brandUUID)
	if err != nil {
		if businessflow.IsBrandNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Brand not found", "BRAND_NOT_FOUND", nil)
		}

		log.Println("Brand deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Brand deletion failed", "DELETE_BRAND_FAILED", err.Error())
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Brand deleted successfully", nil)
}

// readLogoFile lifts the optional logo_file part out of a multipart form.
// A missing part is not an error; the flow treats a nil upload as "keep".
func (h *AdminBrandHandler) readLogoFile(c fiber.Ctx) (*businessflow.LogoUpload, error) {
	fileHeader, err := c.FormFile("logo_file")
	if err != nil || fileHeader == nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &businessflow.LogoUpload{
		Filename:    fileHeader.Filename,
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

func isMultipart(c fiber.Ctx) bool {
	return strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data")
}

func (h *AdminBrandHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
