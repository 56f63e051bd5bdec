package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spacial-to-fxa/any-outlet/models"
	"github.com/spacial-to-fxa/any-outlet/store"
)

// Session keys. Only a stable identifier lives in the cookie; the user
// record itself is re-fetched per request so a role change takes effect
// without re-login.
const (
	SessionUserKey      = "userID"
	SessionTempEmailKey = "tempEmail"
)

// CurrentUser loads the logged-in user (if any) from the session and puts
// the authoritative record into the request context for handlers and
// templates. A stale session pointing at a deleted user is treated as
// logged out.
func CurrentUser(users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		hex, ok := session.Get(SessionUserKey).(string)
		if !ok || hex == "" {
			c.Next()
			return
		}

		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByID(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			// the account is gone; the session is stale
			c.Next()
			return
		}
		if err != nil {
			// a lookup outage must not demote a logged-in user to anonymous
			log.Printf("session user lookup failed: %v", err)
			c.String(http.StatusInternalServerError, "Something went wrong")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireLogin passes through only when CurrentUser resolved a user;
// everyone else is sent to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user"); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin passes through only for admin users. Runs after
// RequireLogin; if it somehow did not, a missing user still means denied.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIf, exists := c.Get("user")
		if !exists {
			c.String(http.StatusForbidden, "Access Denied")
			c.Abort()
			return
		}
		user, ok := userIf.(models.User)
		if !ok || !user.IsAdmin() {
			c.String(http.StatusForbidden, "Access Denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserFrom returns the user CurrentUser resolved for this request.
func UserFrom(c *gin.Context) (models.User, bool) {
	userIf, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userIf.(models.User)
	return user, ok
}
