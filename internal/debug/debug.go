// Package debug provides opt-in diagnostic logging. Output goes to a
// rotating file under the user cache directory so it never pollutes
// stdout, which must stay machine-readable for --json consumers.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once   sync.Once
	logger *log.Logger
)

// Enabled reports whether debug logging is active. Controlled by the
// REMIND_DEBUG environment variable.
func Enabled() bool {
	return os.Getenv("REMIND_DEBUG") != ""
}

// Logf writes a formatted line to the debug log. It is a no-op unless
// debug logging is enabled.
func Logf(format string, args ...any) {
	if !Enabled() {
		return
	}
	once.Do(initLogger)
	_ = logger.Output(2, fmt.Sprintf(format, args...))
}

func initLogger() {
	path := "remind-debug.log"
	if dir, err := os.UserCacheDir(); err == nil {
		path = filepath.Join(dir, "remind", "debug.log")
	}
	logger = log.New(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}, "", log.LstdFlags|log.Lmicroseconds)
}
