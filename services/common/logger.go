package common

import (
	"os"

	"go.uber.org/zap"
)

// Log is the process-wide logger. InitLogger must run before anything else
// touches it; a no-op logger is installed as a fallback for tests.
var Log = zap.NewNop().Sugar()

func InitLogger() {
	var logger *zap.Logger
	var err error

	if os.Getenv("ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	Log = logger.Sugar()
}
