package config

import "os"

type Config struct {
	Port      string
	DBPath    string
	UploadDir string
	WebDir    string
}

func Load() Config {
	return Config{
		Port:      getenv("PORT", "3000"),
		DBPath:    getenv("DB_PATH", "data/evaltrack.db"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),
		WebDir:    getenv("WEB_DIR", "web"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
