package ports

import "time"

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Clock supplies the wall-clock time used to filter past hourly entries
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now returns the current time reported by f
func (f ClockFunc) Now() time.Time {
	return f()
}

// TransportMetrics defines the contract for recording forecast fetch outcomes
type TransportMetrics interface {
	RecordFetch(mode, outcome string, duration time.Duration)
}
