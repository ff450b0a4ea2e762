package logging

import (
	"fmt"
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

type gormWriter struct{}

// Printf receives gorm's pre-formatted lines (slow queries, errors).
func (gormWriter) Printf(format string, args ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, args...))
	l := Logger()
	l.Warn().Str("component", "gorm").Msg(msg)
}

// GormLogger returns a gorm logger that writes through zerolog.
func GormLogger(slowThreshold time.Duration) gormlogger.Interface {
	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
