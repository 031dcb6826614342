package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hivebudget/backend/internal/config"
	"github.com/hivebudget/backend/pkg/httperrors"
	"github.com/hivebudget/backend/pkg/models"
)

const userKey = "hivebudget-user"

// Middleware authenticates the request with the bearer token in the
// Authorization header and stores the user in the context.
//
// Users are created on their first request.
func Middleware(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, models.ErrUnauthorized)
			return
		}

		claims, err := v.Verify(token)
		if err != nil {
			abort(c, err)
			return
		}

		user, err := models.UserForSubject(models.DB, claims.Subject, claims.Email, claims.Name)
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireSuperAdmin rejects users that are neither flagged as super
// admin nor listed in the configured super admin emails.
func RequireSuperAdmin(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !user.SuperAdmin && !cfg.IsSuperAdminEmail(user.Email) {
			abort(c, models.ErrForbidden)
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user of the request.
func CurrentUser(c *gin.Context) models.User {
	user, _ := c.MustGet(userKey).(models.User)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, err error) {
	status := httperrors.Status(err)

	// Authentication problems are never validation errors
	if status == http.StatusBadRequest {
		status = http.StatusUnauthorized
	}

	c.AbortWithStatusJSON(status, httperrors.HTTPError{
		Error: httperrors.Message(c, err),
	})
}
