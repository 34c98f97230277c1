package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeerp/internal/app/auth"
	"github.com/yigit/collegeerp/internal/app/models"
)

const identityContextKey = "identity"

// DefaultCredentialHeader carries the user id of the caller
const DefaultCredentialHeader = "x-auth-token"

// AccessMiddleware guards routes with an AccessPolicy
type AccessMiddleware struct {
	policy auth.AccessPolicy
	header string
}

// NewAccessMiddleware creates a new AccessMiddleware reading the credential from header
func NewAccessMiddleware(policy auth.AccessPolicy, header string) *AccessMiddleware {
	if header == "" {
		header = DefaultCredentialHeader
	}
	return &AccessMiddleware{
		policy: policy,
		header: header,
	}
}

// RequireRoles admits callers whose identity holds one of roles. With no roles
// any registered identity is admitted.
func (m *AccessMiddleware) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.policy.Authorize(c.Request.Context(), c.GetHeader(m.header), roles...)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by RequireRoles
func CurrentIdentity(c *gin.Context) (*models.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*models.Identity)
	return identity, ok
}
