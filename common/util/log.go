package util

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/helioshare/helioshare/common"
)

func init() {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
}

// GetLoggerForModule returns a logger instance for the specified module. Log
// levels are read from the "log.levels" config, e.g. "*:info,rewards:debug".
func GetLoggerForModule(module string) *log.Entry {
	levels := viper.GetString(common.CfgLogLevels)
	logger := log.NewEntry(newLoggerWithLevel(levelForModule(levels, module)))
	return logger.WithFields(log.Fields{"prefix": module})
}

func newLoggerWithLevel(level log.Level) *log.Logger {
	logger := log.New()
	logger.Formatter = log.StandardLogger().Formatter
	logger.Level = level
	return logger
}

func levelForModule(levels string, module string) log.Level {
	defaultLevel := log.InfoLevel
	for _, setting := range strings.Split(levels, ",") {
		parts := strings.Split(setting, ":")
		if len(parts) != 2 {
			continue
		}
		level, err := log.ParseLevel(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if name == module {
			return level
		}
		if name == "*" {
			defaultLevel = level
		}
	}
	return defaultLevel
}
