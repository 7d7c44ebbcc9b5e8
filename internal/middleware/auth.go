package middleware

import (
	"github.com/labstack/echo/v4"

	"marketplace/internal/auth"
	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// ContextUserKey is where the resolved subject is stored on the echo context.
const ContextUserKey = "currentUser"

// CurrentUser re-resolves the token subject on every request: blacklist
// check, lookup by email claim, active check. Runs after echo-jwt has
// already verified signature and expiry. No session state is kept.
func CurrentUser(users repository.UserRepository, tokens auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return httpError(apperrors.ErrInvalidToken)
			}

			ctx := c.Request().Context()
			if claims.ID != "" {
				if revoked, _ := tokens.IsTokenBlacklisted(ctx, claims.ID); revoked {
					return httpError(apperrors.ErrInvalidToken)
				}
			}

			user, err := users.FindByEmail(ctx, claims.Email)
			if err != nil {
				return httpError(apperrors.ErrUserNotFound)
			}
			if !user.IsActive {
				return httpError(apperrors.ErrUserInactive)
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// AdminOnly gates admin routes. Must run after CurrentUser.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := UserFromContext(c)
		if user == nil {
			return httpError(apperrors.ErrInvalidToken)
		}
		if !user.IsAdmin {
			return httpError(apperrors.ErrAdminRequired)
		}
		return next(c)
	}
}

// UserFromContext returns the subject resolved by CurrentUser, or nil.
func UserFromContext(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}

func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
