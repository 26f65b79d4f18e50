package dto

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DatabaseURL string
	RabbitMQURL string

	// SessionSecret signs the voter and admin session cookies.
	SessionSecret string

	// FaceExtractor selects the embedding strategy: "dlib" runs the real
	// model from FaceModelDir, "stub" always passes and is meant for
	// hosts without the dlib models installed.
	FaceExtractor string
	FaceModelDir  string

	ExtractionTimeout time.Duration
	CandidatePhotoDir string
}

func LoadConfig() Config {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Infof("No .env file loaded: %v", err)
	}

	cfg := Config{
		Port:              envOr("PORT", "5000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RabbitMQURL:       os.Getenv("RABBITMQ_URL"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		FaceExtractor:     envOr("FACE_EXTRACTOR", "dlib"),
		FaceModelDir:      envOr("FACE_MODEL_DIR", "models"),
		ExtractionTimeout: 10 * time.Second,
		CandidatePhotoDir: envOr("CANDIDATE_PHOTO_DIR", "static/candidates"),
	}

	if timeout := os.Getenv("EXTRACTION_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			logrus.Panicf("Invalid EXTRACTION_TIMEOUT %q: %v", timeout, err)
		}
		cfg.ExtractionTimeout = parsed
	}

	if cfg.DatabaseURL == "" {
		logrus.Panic("DATABASE_URL is not set")
	}
	if cfg.SessionSecret == "" {
		logrus.Panic("SESSION_SECRET is not set")
	}

	return cfg
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
