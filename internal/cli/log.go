package cli

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the shared CLI logger. It stays at InfoLevel unless --verbose
// raises it to DebugLevel; manifest library packages never log, so every log
// line originates here.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Level:           log.InfoLevel,
})
