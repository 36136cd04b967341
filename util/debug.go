package util

import (
	"fmt"
	"io"
	"log"
	"os"
)

var debug bool = false

// Logger carries the per-iteration progress lines.
var Logger *log.Logger = log.New(os.Stdout, "", 0)

// InitLogger points Logger at w and turns Debug output on or off.
func InitLogger(w io.Writer, verbose bool) {
	Logger = log.New(w, "", 0)
	debug = verbose
}

func Debug[T any](s T) {
	if debug {
		Logger.Println(fmt.Sprint("debug: ", s))
	}
}
