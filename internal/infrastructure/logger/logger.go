package logger

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger.
func Setup(level, format string) {
	log.SetOutput(os.Stdout)

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("[logger] unknown level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
