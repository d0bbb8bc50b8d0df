package lock

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
