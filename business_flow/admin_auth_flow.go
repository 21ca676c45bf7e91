package businessflow

import (
	"context"

	"github.com/hye2gold/Salendar/app/dto"
	"github.com/hye2gold/Salendar/app/services"
	"github.com/hye2gold/Salendar/utils"
)

// AdminAuthFlow authenticates the shared admin account
type AdminAuthFlow interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest) (string, *dto.AdminLoginResponse, error)
	ValidateSession(token string) bool
}

type AdminAuthFlowImpl struct {
	sessions services.SessionService
}

func NewAdminAuthFlow(sessions services.SessionService) AdminAuthFlow {
	return &AdminAuthFlowImpl{sessions: sessions}
}

// Login verifies the submitted credentials and returns the session token to
// set as the admin cookie. Verification is constant-time inside the service.
func (f *AdminAuthFlowImpl) Login(ctx context.Context, req *dto.AdminLoginRequest) (string, *dto.AdminLoginResponse, error) {
	if !f.sessions.VerifyCredentials(req.Username, req.Password) {
		return "", nil, NewBusinessError("INVALID_CREDENTIALS", "invalid credentials", ErrInvalidCredentials)
	}

	return f.sessions.Token(), &dto.AdminLoginResponse{
		Username:  req.Username,
		ExpiresIn: int(utils.AdminSessionTTL.Seconds()),
	}, nil
}

func (f *AdminAuthFlowImpl) ValidateSession(token string) bool {
	return f.sessions.ValidateSession(token) == nil
}
