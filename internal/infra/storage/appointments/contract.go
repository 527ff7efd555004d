package appointments

// KV is the durable key/value storage the collection is persisted in.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Logger interface for logging absorbed read failures.
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
