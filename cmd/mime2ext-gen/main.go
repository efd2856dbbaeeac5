package main

import (
	"fmt"
	"os"

	"github.com/mkideal/cli"
	"go.uber.org/zap"
)

type opts struct {
	cli.Helper
	*zap.Logger

	Debug       bool              `cli:"d, debug" usage:"Debug Output"`
	Input       string            `cli:"i, input" name:"path" usage:"mime-db JSON database" dft:"mime-db/db.json"`
	GoOutput    string            `cli:"go" name:"path" usage:"Write Go source to path, '-' for STDOUT"`
	Package     string            `cli:"pkg" name:"name" usage:"Package name of the generated Go source" dft:"table"`
	BinOutput   string            `cli:"bin" name:"path" usage:"Write a binary table artifact to path"`
	Compression string            `cli:"compression" name:"type" usage:"Artifact data compression [none|zstd|s2|lz4]" dft:"none"`
	BigEndian   bool              `cli:"big-endian" usage:"Write the artifact in big-endian byte order"`
	Types       []string          `cli:"t, type" name:"type" usage:"Only keep the given top-level types, repeatable"`
	Overrides   map[string]string `cli:"O, override" name:"mimetype=ext" usage:"Pin the canonical extension of a mime type, repeatable"`
}

func (opts *opts) configureLogging() (err error) {
	if opts.Debug {
		opts.Logger, err = zap.NewDevelopment()
	} else {
		opts.Logger, err = zap.NewProduction()
	}

	return
}

func main() {
	os.Exit(cli.Run(new(opts), func(cmdline *cli.Context) (err error) {
		opts := cmdline.Argv().(*opts)

		if err = opts.configureLogging(); err != nil {
			return
		}

		logger := opts.Logger

		defer func() { _ = logger.Sync() }()

		if err = opts.run(); err != nil {
			logger.Error("generation failed", zap.Error(err))
			return fmt.Errorf("mime2ext-gen: %w", err)
		}

		return
	}, "Generate the packed mime type to extension table from mime-db"))
}
