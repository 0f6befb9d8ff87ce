package middleware

import (
	"errors"
	"net/http"
	"strings"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase"
	"efectivio/internal/usecase/interfaces"
	"efectivio/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	currentUserKey  = "current_user"
	portalClaimsKey = "portal_claims"
)

var (
	errMissingToken   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidSession = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Invalid or expired session", http.StatusUnauthorized)
	errUserInactive   = pkg.NewDomainErrorSimple("USER_INACTIVE", "User is inactive", http.StatusForbidden)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authenticate resolves the bearer session to a local user (created or
// refreshed on the way) and stores it on the context.
func Authenticate(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			appErr := mapAuthError(err)
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				log.WithError(err).Errorf("[auth][middleware] authenticate failed path=%s", c.FullPath())
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

// PortalAuthenticate guards client portal routes with a portal session token.
func PortalAuthenticate(portal usecase.IClientPortalUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := portal.Authenticate(c.Request.Context(), token)
		if err != nil {
			appErr := mapAuthError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(portalClaimsKey, claims)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}

// SetCurrentUser is used by tests and by routes that authenticate differently.
func SetCurrentUser(c *gin.Context, user entities.User) {
	c.Set(currentUserKey, user)
}

// ActorFrom builds the audit actor of the request.
func ActorFrom(c *gin.Context) entities.Actor {
	user, _ := CurrentUser(c)
	return entities.Actor{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func PortalClaims(c *gin.Context) (entities.PortalClaims, bool) {
	v, ok := c.Get(portalClaimsKey)
	if !ok {
		return entities.PortalClaims{}, false
	}
	claims, ok := v.(entities.PortalClaims)
	return claims, ok
}

func SetPortalClaims(c *gin.Context, claims entities.PortalClaims) {
	c.Set(portalClaimsKey, claims)
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrInvalidToken), errors.Is(err, interfaces.ErrInvalidCredentials):
		return errInvalidSession
	case errors.Is(err, usecase.ErrUserInactive):
		return errUserInactive
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
