//go:build !js
// +build !js

package common

import (
	"fmt"
	"log"
)

var EnableDebug = true

// Debug logs a message through the standard logger if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		log.Print(fmt.Sprintln(args...))
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		log.Printf(format, args...)
	}
}

// DebugWarn logs a warning if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		log.Print("warn: " + fmt.Sprintln(args...))
	}
}

// DebugError logs an error if debug mode is enabled.
func DebugError(args ...interface{}) {
	if EnableDebug {
		log.Print("error: " + fmt.Sprintln(args...))
	}
}
