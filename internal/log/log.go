package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// EnvPath overrides the log directory when no flag is given.
const EnvPath = "HOTCOLD_LOG_PATH"

const fileName = "hotcold.log"

var (
	logger  = zerolog.Nop()
	logFile *os.File
	logMu   sync.Mutex
	dir     string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absolute(flagPath)
	}

	// Priority 2: HOTCOLD_LOG_PATH environment variable
	if envPath := os.Getenv(EnvPath); envPath != "" {
		return absolute(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absolute(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

// Init opens the log file in the configured directory. Until it succeeds
// the process logger discards everything.
func Init(level zerolog.Level) error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f

	consoleWriter := zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	logger = zerolog.New(consoleWriter).Level(level).With().Timestamp().Int("pid", os.Getpid()).Logger()
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = zerolog.Nop()
}

// Logger returns the process logger. Components keep the returned value.
func Logger() zerolog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	return logger
}

// Path returns the active log file path, or "" before Init.
func Path() string {
	logMu.Lock()
	defer logMu.Unlock()
	if logFile == nil {
		return ""
	}
	return logFile.Name()
}
