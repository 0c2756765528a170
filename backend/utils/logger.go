package utils

import (
	"log"
	"os"
)

// LoggerConfig controls how InitLogger builds the logger.
type LoggerConfig struct {
	Output *os.File
}

// InitLogger builds the shared application logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	return log.New(cfg.Output, "[QuizDeck] ", log.LstdFlags|log.LUTC)
}
