// Package logging owns the process logger. Output is discarded unless debug
// logging is enabled, since the terminal viewer owns stdout and stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	logDir      = "logs"
	logFileName = "snakeboard.log"
)

// maxLogSize triggers rotation of the existing log file on setup
const maxLogSize = 10 * 1024 * 1024

// Log is the shared logger, silent until Setup(true)
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return l
}

// Setup routes Log to logs/snakeboard.log when debug is set
// Returns the open file for the caller to close, or nil when logging stays disabled
func Setup(debug bool) *os.File {
	if !debug {
		Log.SetOutput(io.Discard)
		Log.SetLevel(logrus.InfoLevel)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		Log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		stem := strings.TrimSuffix(logFileName, filepath.Ext(logFileName))
		rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", stem, time.Now().Format("20060102-150405")))
		// Rotation failure only means the file keeps growing
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Log.SetOutput(io.Discard)
		return nil
	}

	Log.SetOutput(f)
	Log.SetLevel(logrus.DebugLevel)
	Log.WithField("pid", os.Getpid()).Info("debug logging enabled")
	return f
}
