package middleware

import (
	"net/http"
	"strings"

	"surveyhub/internal/domain/entities"
	"surveyhub/pkg"

	"github.com/gin-gonic/gin"
)

// Authentication is delegated to the upstream identity provider; by the
// time a request reaches this service the gateway has verified the JWT and
// attached the caller's identity as headers. The middleware turns those
// headers into a request-scoped Identity in the gin context — there is no
// process-wide cache of roles or tokens.

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSurveyor Role = "surveyor"
	RoleClient   Role = "client"
)

const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"

	identityKey = "caller_identity"
)

type Identity struct {
	UserID string
	Role   Role
}

// ProjectFilter scopes project visibility to the caller: admins see
// everything, surveyors and clients only projects whose authorization
// lists name them.
func (id Identity) ProjectFilter() entities.ProjectFilter {
	switch id.Role {
	case RoleSurveyor:
		return entities.ProjectFilter{SurveyorID: id.UserID}
	case RoleClient:
		return entities.ProjectFilter{ClientUserID: id.UserID}
	default:
		return entities.ProjectFilter{}
	}
}

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid caller identity", http.StatusUnauthorized)

func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		role := Role(strings.TrimSpace(c.GetHeader(HeaderUserRole)))
		if userID == "" || !validRole(role) {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		c.Set(identityKey, Identity{UserID: userID, Role: role})
		c.Next()
	}
}

func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CallerFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		for _, r := range roles {
			if id.Role == r {
				c.Next()
				return
			}
		}
		forbidden := pkg.NewDomainErrorSimple("FORBIDDEN", "Caller role not permitted", http.StatusForbidden)
		c.AbortWithStatusJSON(forbidden.HTTPStatus, forbidden.ToHTTPError())
	}
}

func CallerFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

func validRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSurveyor, RoleClient:
		return true
	}
	return false
}
