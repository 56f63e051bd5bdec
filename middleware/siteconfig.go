package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/spacial-to-fxa/any-outlet/models"
	"github.com/spacial-to-fxa/any-outlet/store"
)

// SiteConfig makes the shop settings singleton available to every
// request, so each view can render the shop name and contact details.
// The document is created at startup (store.SiteConfigs.Ensure); a read
// failure here falls back to defaults rather than failing the page.
func SiteConfig(configs *store.SiteConfigs) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := configs.Get(c.Request.Context())
		if err != nil {
			log.Printf("site config load failed: %v", err)
			cfg = models.SiteConfig{ShopName: models.DefaultShopName}
		}
		c.Set("config", cfg)
		c.Next()
	}
}

// ConfigFrom returns the site config loaded for this request.
func ConfigFrom(c *gin.Context) models.SiteConfig {
	cfgIf, exists := c.Get("config")
	if !exists {
		return models.SiteConfig{ShopName: models.DefaultShopName}
	}
	cfg, ok := cfgIf.(models.SiteConfig)
	if !ok {
		return models.SiteConfig{ShopName: models.DefaultShopName}
	}
	return cfg
}
