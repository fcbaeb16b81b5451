package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUI_DEBUG"

var (
	mu       sync.Mutex
	logFile  *os.File
	logger   = zerolog.Nop()
	resolved bool
)

// Init directs debug logging to the file at path, creating parent
// directories as needed. Entries are appended.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	setWriterLocked(f)
	return nil
}

// SetOutput directs debug logging to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if w == nil {
		logger = zerolog.Nop()
		resolved = true
		return
	}
	setWriterLocked(w)
}

func setWriterLocked(w io.Writer) {
	logger = zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	resolved = true
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLocked()
	logger = zerolog.Nop()
	resolved = false
	return err
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the debug logger. On first use it consults TUI_DEBUG;
// if that is unset or the file cannot be opened, a disabled logger is
// returned.
func Logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if !resolved {
		resolved = true
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "tcss: %v\n", err)
			}
		}
	}
	return logger
}

// Enabled returns true if debug entries are being written somewhere.
func Enabled() bool {
	l := Logger()
	return l.GetLevel() != zerolog.Disabled
}

// Log writes a formatted debug entry.
func Log(format string, args ...any) {
	l := Logger()
	l.Debug().Msgf(format, args...)
}
