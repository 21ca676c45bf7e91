// Package businessflow contains the core business logic and use cases for calendar workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Brand-related errors
	ErrBrandNotFound        = errors.New("brand not found")
	ErrBrandNameTaken       = errors.New("brand name already exists")
	ErrBrandNameRequired    = errors.New("brand name is required")
	ErrBrandCategoryInvalid = errors.New("brand category is invalid")
	ErrBrandUpdateRequired  = errors.New("at least one field must be provided for update")
	ErrBrandUUIDRequired    = errors.New("brand UUID is required")
	ErrLogoFileEmpty        = errors.New("logo file is empty")
	ErrLogoFileTooLarge     = errors.New("logo file is too large")
	ErrLogoNotAnImage       = errors.New("logo file is not a valid image")
	ErrStorageNotConfigured = errors.New("object storage is not configured")

	// Event-related errors
	ErrEventNotFound      = errors.New("event not found")
	ErrEventTitleRequired = errors.New("event title is required")
	ErrEventDateInvalid   = errors.New("event date is invalid")
	ErrEventUUIDRequired  = errors.New("event UUID is required")

	// Calendar window errors
	ErrYearOutOfRange  = errors.New("year is out of range")
	ErrMonthOutOfRange = errors.New("month must be between 1 and 12")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsBrandNotFound(err error) bool {
	return errors.Is(err, ErrBrandNotFound)
}

func IsBrandNameTaken(err error) bool {
	return errors.Is(err, ErrBrandNameTaken)
}

func IsBrandCategoryInvalid(err error) bool {
	return errors.Is(err, ErrBrandCategoryInvalid)
}

func IsEventNotFound(err error) bool {
	return errors.Is(err, ErrEventNotFound)
}

func IsEventDateInvalid(err error) bool {
	return errors.Is(err, ErrEventDateInvalid)
}

func IsLogoNotAnImage(err error) bool {
	return errors.Is(err, ErrLogoNotAnImage)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
