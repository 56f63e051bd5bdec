package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacial-to-fxa/any-outlet/middleware"
)

// viewData decorates page data with the site config and the current user
// so every template can render the header and nav state.
func viewData(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Config"] = middleware.ConfigFrom(c)
	if user, ok := middleware.UserFrom(c); ok {
		data["User"] = user
	} else {
		data["User"] = nil
	}
	return data
}

// serverError logs an infrastructure failure and renders a generic 500.
// Single attempt everywhere; nothing in this app retries.
func serverError(c *gin.Context, err error) {
	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Something went wrong")
	c.Abort()
}
