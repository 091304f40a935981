package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successMark = color.New(color.FgGreen).SprintFunc()
	warnMark    = color.New(color.FgYellow).SprintFunc()
	errorMark   = color.New(color.FgRed).SprintFunc()
	arrowMark   = color.New(color.FgBlue).SprintFunc()
	dimText     = color.New(color.FgHiBlack).SprintFunc()
	headerText  = color.New(color.FgMagenta).SprintFunc()
)

// Output formatting helpers

// printInfo prints an informational message
func printInfo(format string, args ...interface{}) {
	if globalQuiet {
		return
	}
	fmt.Printf(format+"\n", args...)
}

// printSuccess prints a success message
func printSuccess(format string, args ...interface{}) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", successMark("✓"), fmt.Sprintf(format, args...))
}

// printWarning prints a warning message
func printWarning(format string, args ...interface{}) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", warnMark("⚠"), fmt.Sprintf(format, args...))
}

// printErrorMsg prints an error message to stderr
func printErrorMsg(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorMark("✗"), fmt.Sprintf(format, args...))
}

// printProgress prints a progress indicator
func printProgress(format string, args ...interface{}) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", arrowMark("→"), fmt.Sprintf(format, args...))
}

// printDim prints secondary detail text
func printDim(format string, args ...interface{}) {
	if globalQuiet {
		return
	}
	fmt.Println(dimText(fmt.Sprintf(format, args...)))
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Printf("\n%s\n", headerText("=== "+title+" ==="))
}
