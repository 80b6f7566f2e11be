package tui

import (
	"io"
	"log"
	"os"
)

// DebugLogFile is where --debug writes.
const DebugLogFile = "debug.log"

// OpenDebugLog returns a logger writing to DebugLogFile and a function
// closing it. When disabled, the logger discards everything.
func OpenDebugLog(enabled bool) (*log.Logger, func() error, error) {
	if !enabled {
		return log.New(io.Discard, "", 0), func() error { return nil }, nil
	}
	f, err := os.OpenFile(DebugLogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "TABSTRIP: ", log.Ltime|log.Lshortfile), f.Close, nil
}
