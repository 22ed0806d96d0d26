package middleware

import (
	"net/http"
	"os"

	"delivery-backend/internal/model"
	"delivery-backend/internal/rbac"
	"delivery-backend/internal/session"
	"delivery-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "session"

// SessionMaxAge is the client-side lifetime bound: 7 days.
// Verification itself enforces no expiry.
const SessionMaxAge = 3600 * 24 * 7

// ContextUserKey is where RequireAuth/RequirePermission store the resolved user
const ContextUserKey = "currentUser"

// authDB and codec are set once via Init before the router starts serving
var (
	authDB *gorm.DB
	codec  *session.Codec
)

// Init wires the database handle and session codec into the auth middleware
func Init(db *gorm.DB, c *session.Codec) {
	authDB = db
	codec = c
}

func secureCookies() bool {
	return os.Getenv("GIN_MODE") == "release"
}

// SetSessionCookie issues the session cookie: HttpOnly, SameSite=Lax, path /,
// Secure in release mode
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, SessionMaxAge, "/", "", secureCookies(), true)
}

// ClearSessionCookie removes the session cookie. Logout is purely client-side:
// a previously issued token stays cryptographically valid.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secureCookies(), true)
}

// CurrentUser resolves the authenticated user from the session cookie,
// preloading the role. Returns nil for missing/invalid sessions or unknown
// users — callers treat nil as "unauthenticated", never as an error.
func CurrentUser(c *gin.Context) *model.User {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return nil
	}
	return UserFromToken(c, raw)
}

// UserFromToken resolves a user from a raw session token. Used by CurrentUser
// and by the websocket endpoint, where browsers cannot attach cookies to the
// upgrade request and pass the token as a query parameter instead.
func UserFromToken(c *gin.Context, raw string) *model.User {
	payload, ok := codec.Verify(raw)
	if !ok {
		return nil
	}
	uid, _ := payload["uid"].(string)
	if uid == "" {
		return nil
	}

	var user model.User
	if err := authDB.WithContext(c.Request.Context()).Preload("Role").First(&user, "id = ?", uid).Error; err != nil {
		return nil
	}
	return &user
}

// RequireAuth aborts with 401 unless the request carries a valid session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireRole aborts unless the authenticated user's role name is in the list
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
			return
		}

		roleAllowed := false
		for _, role := range allowedRoles {
			if user.Role.Name == role {
				roleAllowed = true
				break
			}
		}
		if !roleAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Forbidden"))
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequirePermission authenticates the request and checks the user's role for
// the permission. 401 when there is no valid session, 403 naming the missing
// permission otherwise. The admin role always passes.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
			return
		}

		if !rbac.Allowed(user.Role.Name, user.Role.Permissions, permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Forbidden: Missing permission "+permission))
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the user stored by the auth middleware, or nil
func UserFromContext(c *gin.Context) *model.User {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
