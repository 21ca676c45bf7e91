package dto

// AdminLoginRequest carries the shared admin credentials
type AdminLoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=1,max=128"`
	Password string `json:"password" form:"password" validate:"required,min=1,max=128"`
}

// AdminLoginResponse reports a successful login; the session itself
// travels in an HTTP-only cookie, not in the body
type AdminLoginResponse struct {
	Username  string `json:"username"`
	ExpiresIn int    `json:"expires_in"`
}
