package constants

import "time"

const (
	ServerDefaultHost = "localhost"
	ServerDefaultPort = 7070

	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	// DateLayout is the wire format for calendar dates (no time component).
	DateLayout = "2006-01-02"

	RequestIDLength = 7
)
