package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken is returned when registering with a username that already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInvalidToken is returned when a bearer token is missing, malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrUserNotFound is returned when a token subject cannot be resolved.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserInactive is returned when the resolved subject is deactivated.
	ErrUserInactive = errors.New("user account is inactive")
	// ErrAdminRequired is returned when a non-admin hits an admin-only route.
	ErrAdminRequired = errors.New("admin privileges required")
	// ErrCategoryNotFound is returned for a missing or soft-deleted category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned for a missing or soft-deleted product.
	ErrProductNotFound = errors.New("product not found")
	// ErrCartItemNotFound is returned when a cart row is missing or owned by another user.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrInvalidPrice is returned when a product price is negative.
	ErrInvalidPrice = errors.New("price must not be negative")
	// ErrInvalidStock is returned when a stock quantity is negative.
	ErrInvalidStock = errors.New("stock quantity must not be negative")
	// ErrInvalidQuantity is returned when a cart quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500 so store-level detail never leaks to the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNKNOWN_SUBJECT")
	case errors.Is(err, ErrUserInactive):
		return NewHTTPError(http.StatusForbidden, err.Error(), "USER_INACTIVE")
	case errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrCartItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CART_ITEM_NOT_FOUND")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case errors.Is(err, ErrInvalidStock):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STOCK")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
