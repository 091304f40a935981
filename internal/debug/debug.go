// Package debug provides a process-wide debug tracer for the CLI.
// Output goes to stderr and is disabled unless --debug is set.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	enabled   bool
	enabledMu sync.RWMutex

	tagColor  = color.New(color.FgCyan)
	timeColor = color.New(color.FgHiBlack)
)

// SetDebug enables or disables debug tracing.
func SetDebug(enable bool) {
	enabledMu.Lock()
	defer enabledMu.Unlock()
	enabled = enable
}

// SetNoColor disables colored debug output. The CLI layer calls this
// once at startup so debug traces stay consistent with user output.
func SetNoColor(disable bool) {
	color.NoColor = disable
}

// IsEnabled reports whether debug tracing is enabled.
func IsEnabled() bool {
	enabledMu.RLock()
	defer enabledMu.RUnlock()
	return enabled
}

// Debug prints a timestamped debug message.
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s %s\n",
		tagColor.Sprint("[DEBUG]"),
		timeColor.Sprint(time.Now().Format("15:04:05.000")),
		fmt.Sprintf(format, args...))
}

// Debugf is an alias for Debug.
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// Section prints a section header for debug output.
func Section(section string) {
	if !IsEnabled() {
		return
	}
	Debug("%s", tagColor.Sprintf("=== %s ===", section))
}

// Value prints key=value style debug info.
func Value(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	Debug("%s = %v", tagColor.Sprint(key), value)
}

// JSON prints structured data as indented JSON.
func JSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("failed to marshal %s to JSON: %v", key, err)
		return
	}
	Debug("%s:\n%s", tagColor.Sprint(key), string(data))
}
