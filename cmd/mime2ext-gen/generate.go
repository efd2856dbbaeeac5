package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arloliu/mime2ext/builder"
	"github.com/arloliu/mime2ext/format"
	"github.com/arloliu/mime2ext/table"
)

var errNoOutput = errors.New("no output requested, use --go and/or --bin")

func (opts *opts) run() error {
	if opts.GoOutput == "" && opts.BinOutput == "" {
		return errNoOutput
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	logger := opts.Logger

	src, err := builder.ParseSourceFile(opts.Input)
	if err != nil {
		return err
	}
	logger.Debug("parsed mime database", zap.String("filename", opts.Input), zap.Int("types", len(src)))

	buildOpts := []builder.Option{builder.WithLogger(logger)}
	if len(opts.Types) > 0 {
		buildOpts = append(buildOpts, builder.WithTypes(opts.Types...))
	}
	if len(opts.Overrides) > 0 {
		buildOpts = append(buildOpts, builder.WithOverrides(opts.Overrides))
	}

	t, err := builder.Build(src, buildOpts...)
	if err != nil {
		return err
	}

	if opts.GoOutput != "" {
		if err := opts.writeGoSource(t); err != nil {
			return err
		}
	}

	if opts.BinOutput != "" {
		if err := opts.writeArtifact(t); err != nil {
			return err
		}
	}

	return nil
}

func (opts *opts) writeGoSource(t *table.Table) error {
	var buf bytes.Buffer
	if err := builder.WriteGoSource(&buf, t, opts.Package, filepath.Base(opts.Input)); err != nil {
		return err
	}

	if opts.GoOutput == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(opts.GoOutput, buf.Bytes(), 0o644); err != nil { //nolint:gosec
		return err
	}
	opts.Logger.Info("wrote go source", zap.String("filename", opts.GoOutput), zap.Int("bytes", buf.Len()))

	return nil
}

func (opts *opts) writeArtifact(t *table.Table) error {
	comp, err := format.ParseCompressionType(opts.Compression)
	if err != nil {
		return err
	}

	encOpts := []builder.EncoderOption{builder.WithCompression(comp)}
	if opts.BigEndian {
		encOpts = append(encOpts, builder.WithBigEndian())
	}

	artifact, err := builder.Encode(t, encOpts...)
	if err != nil {
		return fmt.Errorf("failed to encode artifact: %w", err)
	}

	if err := os.WriteFile(opts.BinOutput, artifact, 0o644); err != nil { //nolint:gosec
		return err
	}
	opts.Logger.Info("wrote table artifact",
		zap.String("filename", opts.BinOutput),
		zap.Stringer("compression", comp),
		zap.Int("bytes", len(artifact)),
	)

	return nil
}
