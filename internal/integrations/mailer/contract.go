package mailer

// Logger interface for logging.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
