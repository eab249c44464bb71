package silog

import (
	"fmt"
	"log"
	"os"
)

var (
	debugEnabled = false

	debugLog = log.New(os.Stderr, "DEBUG ", log.LstdFlags)
	infoLog  = log.New(os.Stdout, "INFO ", log.LstdFlags)
	warnLog  = log.New(os.Stderr, "WARN ", log.LstdFlags)
	errorLog = log.New(os.Stderr, "ERROR ", log.LstdFlags)
)

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

func Debug(e ...interface{}) {
	if debugEnabled {
		debugLog.Print(e...)
	}
}

func Info(e ...interface{}) {
	infoLog.Print(e...)
}

func Warn(e ...interface{}) {
	warnLog.Print(e...)
}

func Error(e ...interface{}) {
	errorLog.Print(e...)
}

// ComponentDebug prints a debug message tagged with the originating
// component.
func ComponentDebug(component string, e ...interface{}) {
	if debugEnabled {
		debugLog.Print(fmt.Sprintf("[%s] ", component), fmt.Sprintln(e...))
	}
}

// ComponentError prints an error message tagged with the originating
// component.
func ComponentError(component string, e ...interface{}) {
	errorLog.Print(fmt.Sprintf("[%s] ", component), fmt.Sprintln(e...))
}
