package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	URL              string
	DatabaseName     string
	BaseURL          string
	Port             string
	InferenceURL     string
	InferenceAPIKey  string
	InferenceTimeout time.Duration
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, _ := setLogger(os.Getenv("APP_ENV"))
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:              os.Getenv("DB_URI"),
		DatabaseName:     os.Getenv("DB_NAME"),
		BaseURL:          os.Getenv("BASE_URL"),
		Port:             os.Getenv("PORT"),
		InferenceURL:     os.Getenv("INFERENCE_URL"),
		InferenceAPIKey:  os.Getenv("INFERENCE_API_KEY"),
		InferenceTimeout: inferenceTimeout(),
	}
}

func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

// inferenceTimeout reads INFERENCE_TIMEOUT_SECONDS, defaulting to 10s. The
// analyze path must fall back to the local matcher within this bound.
func inferenceTimeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("INFERENCE_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(secs) * time.Second
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
	return
}
