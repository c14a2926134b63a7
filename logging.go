package rabin

import (
	"fmt"
	"math/big"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// LoggerHelper builds log entries tagged with the rabin package and the
// calling function.
type LoggerHelper struct {
	function string
	entry    *logrus.Entry
}

// NewLogger creates a logger for function.
func NewLogger(function string) *LoggerHelper {
	return &LoggerHelper{
		function: function,
		entry: logrus.WithFields(logrus.Fields{
			"function": function,
			"package":  "rabin",
		}),
	}
}

// WithCaller records the file, line and function that called WithCaller.
func (l *LoggerHelper) WithCaller() *LoggerHelper {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return l
	}
	fields := logrus.Fields{"caller": fmt.Sprintf("%s:%d", filepath.Base(file), line)}
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		fields["caller_func"] = name[strings.LastIndex(name, "/")+1:]
	}
	l.entry = l.entry.WithFields(fields)
	return l
}

// WithField adds one field.
func (l *LoggerHelper) WithField(key string, value interface{}) *LoggerHelper {
	l.entry = l.entry.WithField(key, value)
	return l
}

// WithFields adds several fields.
func (l *LoggerHelper) WithFields(fields logrus.Fields) *LoggerHelper {
	l.entry = l.entry.WithFields(fields)
	return l
}

// WithError attaches err and classifies the failed step.
func (l *LoggerHelper) WithError(err error, errorType, operation string) *LoggerHelper {
	l.entry = l.entry.WithError(err).WithFields(logrus.Fields{
		"error_type": errorType,
		"operation":  operation,
	})
	return l
}

func (l *LoggerHelper) Entry(message string) {
	l.entry.Debugf("Function entry: %s", message)
}

func (l *LoggerHelper) Exit() {
	l.entry.Debugf("Function exit: %s", l.function)
}

func (l *LoggerHelper) Debug(message string) { l.entry.Debug(message) }
func (l *LoggerHelper) Info(message string)  { l.entry.Info(message) }
func (l *LoggerHelper) Warn(message string)  { l.entry.Warn(message) }
func (l *LoggerHelper) Error(message string) { l.entry.Error(message) }

// modulusFields describes a public modulus by its size and a short hex prefix.
// Private primes must never be passed here.
func modulusFields(n *big.Int) logrus.Fields {
	const previewBytes = 8

	encoded := EncodeInt(n)
	preview := fmt.Sprintf("%x", encoded[:min(len(encoded), previewBytes)])
	if len(encoded) > previewBytes {
		preview += "..."
	}
	return logrus.Fields{
		"modulus_bits":    n.BitLen(),
		"modulus_preview": preview,
	}
}
