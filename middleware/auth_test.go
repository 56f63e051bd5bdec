package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/spacial-to-fxa/any-outlet/models"
	"github.com/spacial-to-fxa/any-outlet/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	router := gin.New()
	router.GET("/checkout/1", RequireLogin(), func(c *gin.Context) {
		c.String(http.StatusOK, "form")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireLoginPassesLoggedIn(t *testing.T) {
	router := gin.New()
	router.GET("/checkout/1",
		func(c *gin.Context) { c.Set("user", models.User{Name: "Al", Role: models.RoleMember}) },
		RequireLogin(),
		func(c *gin.Context) { c.String(http.StatusOK, "form") },
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "form", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		setUser    *models.User
		wantStatus int
	}{
		{"no user at all", nil, http.StatusForbidden},
		{"member", &models.User{Role: models.RoleMember}, http.StatusForbidden},
		{"admin", &models.User{Role: models.RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/admin",
				func(c *gin.Context) {
					if tt.setUser != nil {
						c.Set("user", *tt.setUser)
					}
				},
				RequireAdmin(),
				func(c *gin.Context) { c.String(http.StatusOK, "dashboard") },
			)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, "Access Denied", w.Body.String())
			}
		})
	}
}

// guardedRouter seeds the session with a user id the way login does,
// then runs the normal middleware chain up to a guarded handler.
func guardedRouter(users *store.Users, userHex string) *gin.Engine {
	router := gin.New()
	router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))
	router.GET("/checkout/1",
		func(c *gin.Context) {
			sessions.Default(c).Set(SessionUserKey, userHex)
		},
		CurrentUser(users),
		RequireLogin(),
		func(c *gin.Context) { c.String(http.StatusOK, "form") },
	)
	return router
}

func TestCurrentUserStoreOutage(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lookup outage is a 500, not an anonymous redirect", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "interrupted at shutdown",
		}))

		router := guardedRouter(store.NewUsers(mt.DB), primitive.NewObjectID().Hex())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout/1", nil))

		assert.Equal(mt, http.StatusInternalServerError, w.Code)
		assert.Empty(mt, w.Header().Get("Location"))
	})

	mt.Run("deleted account means stale session, logged out", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.users", mtest.FirstBatch))

		router := guardedRouter(store.NewUsers(mt.DB), primitive.NewObjectID().Hex())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout/1", nil))

		assert.Equal(mt, http.StatusFound, w.Code)
		assert.Equal(mt, "/login", w.Header().Get("Location"))
	})
}

func TestCurrentUserWithoutSession(t *testing.T) {
	router := gin.New()
	router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))
	// nil store is never touched: an empty session short-circuits first
	router.Use(CurrentUser(nil))
	router.GET("/", func(c *gin.Context) {
		_, exists := c.Get("user")
		assert.False(t, exists)
		c.String(http.StatusOK, "home")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
