package util

import (
	"fmt"
	"io"
	"log"
	"os"
)

// PlotLogger receives one "iter loss exp" line per iteration. It discards
// everything until InitPlotLogger is called.
var PlotLogger *log.Logger = log.New(io.Discard, "", 0)

// InitPlotLogger creates fname and sends plot lines to it, prefixed with
// tag. The caller closes the returned file when training ends.
func InitPlotLogger(fname string, tag string) (io.Closer, error) {
	file, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("creating plot log: %w", err)
	}
	prefix := ""
	if tag != "" {
		prefix = tag + ": "
	}
	PlotLogger = log.New(file, prefix, 0)
	return plotFile{file}, nil
}

type plotFile struct{ *os.File }

// Close detaches PlotLogger before closing the file.
func (f plotFile) Close() error {
	PlotLogger = log.New(io.Discard, "", 0)
	return f.File.Close()
}

// Plot writes one history line.
func Plot(iter int, loss, exp float64) {
	PlotLogger.Printf("%d %v %v", iter, loss, exp)
}
