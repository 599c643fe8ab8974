package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// AppLogger provides extended diagnostics beyond the stdlib log lines.
// All toggles default to off; with no output dir it is a no-op shell.
type AppLogger struct {
	outputDir      string
	logWS          bool
	logStore       bool
	debug          bool
	wsLog          *os.File
	storeLog       *os.File
	mu             sync.Mutex
	wsMessageCount int
}

// LogConfig holds logging configuration
type LogConfig struct {
	OutputDir string
	LogWS     bool
	LogStore  bool
	Debug     bool
}

// NewAppLogger creates a new application logger
func NewAppLogger(config LogConfig) (*AppLogger, error) {
	al := &AppLogger{
		outputDir: config.OutputDir,
		logWS:     config.LogWS,
		logStore:  config.LogStore,
		debug:     config.Debug,
	}

	if al.outputDir == "" {
		return al, nil // No file logging, just debug lines
	}

	var err error
	if al.logWS {
		path := fmt.Sprintf("%s/websocket.log", al.outputDir)
		al.wsLog, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open WebSocket log: %w", err)
		}
	}
	if al.logStore {
		path := fmt.Sprintf("%s/store.log", al.outputDir)
		al.storeLog, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open store log: %w", err)
		}
	}

	return al, nil
}

// Close closes all open log files
func (al *AppLogger) Close() {
	if al.wsLog != nil {
		al.wsLog.Close()
	}
	if al.storeLog != nil {
		al.storeLog.Close()
	}
}

// LogWS logs a WebSocket message
func (al *AppLogger) LogWS(direction, connID, message string) {
	if al == nil || !al.logWS || al.wsLog == nil {
		return
	}

	al.mu.Lock()
	defer al.mu.Unlock()

	al.wsMessageCount++
	timestamp := time.Now().Format("15:04:05.000")

	fmt.Fprintf(al.wsLog, "[%s] #%d %s [%s]: %s\n",
		timestamp, al.wsMessageCount, direction, connID, message)
}

// LogStore logs a game store operation
func (al *AppLogger) LogStore(op, lobbyID, detail string) {
	if al == nil || !al.logStore || al.storeLog == nil {
		return
	}

	al.mu.Lock()
	defer al.mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	if detail != "" {
		fmt.Fprintf(al.storeLog, "[%s] %s %s: %s\n", timestamp, op, lobbyID, detail)
	} else {
		fmt.Fprintf(al.storeLog, "[%s] %s %s\n", timestamp, op, lobbyID)
	}
}

// Debug logs a debug message if debug mode is enabled
func (al *AppLogger) Debug(context, format string, args ...any) {
	if al == nil || !al.debug {
		return
	}
	log.Printf("[DEBUG] "+context+": "+format, args...)
}
