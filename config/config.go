package config

import "os"

// App holds the environment configuration for the storefront.
// SMTP credentials are read by the mailer itself (see utils.SendMail).
type App struct {
	Port          string
	MongoURI      string
	MongoDB       string
	SessionSecret string
	UploadDir     string
}

// Load reads the app configuration from the environment. Only the
// values with sensible defaults are defaulted here; MONGO_URI,
// MONGO_DB and SESSION_SECRET are validated at startup by the caller.
func Load() App {
	return App{
		Port:          getenv("PORT", "8080"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       os.Getenv("MONGO_DB"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		UploadDir:     getenv("UPLOAD_DIR", "./public/uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
