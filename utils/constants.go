package utils

import (
	"time"
)

// Cache constants
const (
	// EventsCacheKeyPrefix prefixes the month-window event cache keys
	// (full key: events:<year>-<month>)
	EventsCacheKeyPrefix = "events:"

	// EventsCacheTTL bounds staleness of the cached month window
	EventsCacheTTL = 60 * time.Second
)

// ContextKey is the type for request-scoped context values
type ContextKey string

// Request context keys
const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	CancelFuncKey ContextKey = "cancel_func"
)

// Session constants
const (
	// AdminSessionCookie is the HTTP-only cookie carrying the admin session token
	AdminSessionCookie = "admin_session"

	// AdminSessionTTL is the lifetime of the admin session cookie
	AdminSessionTTL = 24 * time.Hour
)
