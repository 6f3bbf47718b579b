package domain

// ContextKey is the typed key for request-scoped identity values.
type ContextKey string

const (
	KeyUserID    ContextKey = "UserID"
	KeyUserRole  ContextKey = "UserRole"
	KeyUserEmail ContextKey = "UserEmail"
)
