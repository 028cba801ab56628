package logging

import (
	"io"
	"os"

	"slot-bank/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var output io.Writer = os.Stdout

// Init configures the global zerolog logger. When cfg.File is set, log lines
// go to a size-capped file instead of stdout; Writer exposes the same sink for
// the HTTP request logger.
func Init(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	output = os.Stdout
	if cfg.File != "" {
		if w, err := newCappedFileWriter(cfg.File, cfg.MaxMB); err == nil {
			output = w
		}
	}
	sink := output
	if cfg.Pretty {
		sink = zerolog.ConsoleWriter{Out: output}
	}

	logger := zerolog.New(sink).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
}

// Writer returns the raw log sink configured by Init.
func Writer() io.Writer {
	return output
}
