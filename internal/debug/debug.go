package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "ALTERNATOR_DEBUG"

var (
	logFile    *os.File
	envChecked bool
	mu         sync.Mutex
)

var dumper = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Init opens the debug log at path, replacing any log already open.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	envChecked = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
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

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// enabledLocked opens the log named by EnvVar on first use. Caller must hold mu.
func enabledLocked() bool {
	if !envChecked {
		envChecked = true
		if path := os.Getenv(EnvVar); path != "" {
			// Logging stays off if the file cannot be opened.
			_ = initLocked(path)
		}
	}
	return logFile != nil
}

// Enabled reports whether debug messages are being written.
// Callers use it to skip building expensive log arguments.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabledLocked()
}

// Close closes the debug log file. Logging is off until Init is called again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabledLocked() {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

// Dump formats v for the debug log. Map keys are sorted so output is stable.
func Dump(v any) string {
	return dumper.Sprint(v)
}
