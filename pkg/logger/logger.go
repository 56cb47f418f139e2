package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		// Use text handler for development (more readable)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Use JSON handler for production (structured)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogHTTPError logs an HTTP error
func (l *Logger) LogHTTPError(c *gin.Context, err error, statusCode int) {
	l.Logger.ErrorContext(c.Request.Context(),
		"HTTP Error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
		slog.String("ip", c.ClientIP()),
	)
}

// Business logic logging methods

// LogReservationCreated logs when a draft commit produces a reservation
func (l *Logger) LogReservationCreated(ctx context.Context, reservationID, venueID string, total int64) {
	l.Logger.InfoContext(ctx,
		"Reservation Created",
		slog.String("reservation_id", reservationID),
		slog.String("venue_id", venueID),
		slog.Int64("total_cost", total),
	)
}

// LogReservationCancelled logs when a reservation is cancelled
func (l *Logger) LogReservationCancelled(ctx context.Context, reservationID, venueID string) {
	l.Logger.InfoContext(ctx,
		"Reservation Cancelled",
		slog.String("reservation_id", reservationID),
		slog.String("venue_id", venueID),
	)
}

// LogSlotConflict logs a lost race for a venue interval
func (l *Logger) LogSlotConflict(ctx context.Context, venueID, interval string) {
	l.Logger.WarnContext(ctx,
		"Slot Conflict",
		slog.String("venue_id", venueID),
		slog.String("interval", interval),
	)
}

// LogDraftRejected logs a draft that failed validation during commit
func (l *Logger) LogDraftRejected(ctx context.Context, draftID, field, reason string) {
	l.Logger.WarnContext(ctx,
		"Draft Rejected",
		slog.String("draft_id", draftID),
		slog.String("field", field),
		slog.String("reason", reason),
	)
}

// LogStoreFailure logs a reservation store write failure
func (l *Logger) LogStoreFailure(ctx context.Context, op string, err error) {
	l.Logger.ErrorContext(ctx,
		"Store Failure",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
