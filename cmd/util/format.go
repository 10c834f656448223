// Package cmdutil provides utilities for formatting CLI output.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Stdout represents Stdout
var Stdout io.Writer = os.Stdout

// ColoredStderr represents a color supporting writer for Stderr
var ColoredStderr io.Writer = color.Error

// ErrPrintf formats and prints the provided format string and args on stderr and
// colors the output red.
func ErrPrintf(msg string, a ...interface{}) {
	_, err := fmt.Fprintf(ColoredStderr, color.RedString(msg), a...)
	if err != nil {
		panic(err)
	}
}

// Printf is a wrapper to fmt.Printf that prints to cmdutil.Stdout
func Printf(msg string, a ...interface{}) {
	_, err := fmt.Fprintf(Stdout, msg, a...)
	if err != nil {
		panic(err)
	}
}

// Println is a wrapper to fmt.Println that prints to cmdutil.Stdout
func Println(a ...interface{}) {
	_, err := fmt.Fprintln(Stdout, a...)
	if err != nil {
		panic(err)
	}
}

// Print is a wrapper to fmt.Print that prints to cmdutil.Stdout
func Print(a ...interface{}) {
	_, err := fmt.Fprint(Stdout, a...)
	if err != nil {
		panic(err)
	}
}

// FormatCell formats a table cell for display. Numbers are printed without
// trailing zeros and midnight times as bare dates.
func FormatCell(v interface{}) string {
	switch t := v.(type) {
	case float64:
		return humanize.Ftoa(t)
	case float32:
		return humanize.Ftoa(float64(t))
	case decimal.Decimal:
		return t.String()
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
