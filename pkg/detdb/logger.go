package detdb

// Logger is the logging hook the surrounding application injects;
// queries report through it according to the configured verbosity.
type Logger interface {
	Info(message string, module string)
	Error(string)
}

type nopLogger struct{}

func (nopLogger) Info(string, string) {}
func (nopLogger) Error(string)        {}

var logger Logger = nopLogger{}

// SetLogger installs the logger used by this package.
func SetLogger(l Logger) {
	logger = l
}

var verbosity int

// SetVerbosity sets how chatty the query helpers are: 0 silent,
// 1 reports what is read, 3 and above also reports the queries.
func SetVerbosity(v int) {
	verbosity = v
}
