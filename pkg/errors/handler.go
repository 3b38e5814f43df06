package errors

import (
	"log"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// ReportBuildError sends a build error to the global handler.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleBuildError(err)
	}
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover("operation.name")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}

// LogHandler writes reported errors to the standard logger.
type LogHandler struct {
	// Verbose includes stack traces in output.
	Verbose bool
}

func (h *LogHandler) HandleError(err *Error) {
	h.logf("q: %v", err)
	if h.Verbose && err.StackTrace != "" {
		h.logf("%s", err.StackTrace)
	}
}

func (h *LogHandler) HandlePanic(err *PanicError) {
	h.logf("q: %v", err)
	if h.Verbose && err.StackTrace != "" {
		h.logf("%s", err.StackTrace)
	}
}

func (h *LogHandler) HandleBuildError(err *BuildError) {
	h.logf("q: %v", err)
	if h.Verbose && err.StackTrace != "" {
		h.logf("%s", err.StackTrace)
	}
}

func (h *LogHandler) logf(format string, args ...any) {
	log.Printf(format, args...)
}

// CollectHandler records reported errors for inspection in tests.
type CollectHandler struct {
	mu     sync.Mutex
	errors []error
}

func (h *CollectHandler) HandleError(err *Error) { h.append(err) }

func (h *CollectHandler) HandlePanic(err *PanicError) { h.append(err) }

func (h *CollectHandler) HandleBuildError(err *BuildError) { h.append(err) }

// Errors returns a copy of all recorded errors.
func (h *CollectHandler) Errors() []error {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]error, len(h.errors))
	copy(out, h.errors)
	return out
}

func (h *CollectHandler) append(err error) {
	h.mu.Lock()
	h.errors = append(h.errors, err)
	h.mu.Unlock()
}
