// Copyright 2026 Arne Drobrowski.
// Licensed under MIT license.  See "license" file in this source tree.

// Command paletter prints a quantized color palette for one or more
// image files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/sinks"

	"github.com/edobrowo/paletter"
	"github.com/edobrowo/paletter/ingest"
	"github.com/edobrowo/paletter/render"
)

type args struct {
	paletteSize int
	method      paletter.Method
	alphaThresh uint8
	opts        render.Options
	debug       bool
	files       []string
}

// errInvalidArgument marks a fatal argument-parsing failure.
var errInvalidArgument = fmt.Errorf("invalid argument")

func parseArgs(argv []string) (args, error) {
	fs := flag.NewFlagSet("paletter", flag.ContinueOnError)
	paletteSize := fs.Int("n", 0, "number of colors in the output palette (required)")
	fs.IntVar(paletteSize, "palette-size", 0, "alias for -n")
	method := fs.String("method", "median", "quantization method: median or octree")
	alphaThresh := fs.Int("alpha-thresh", 0, "pixels with alpha below this are dropped (0-255)")
	hex := fs.Bool("hex", false, "print colors as #RRGGBB")
	rgb := fs.Bool("rgb", false, "print colors as decimal r g b")
	uncolored := fs.Bool("uncolored", false, "suppress ANSI truecolor swatch styling")
	sortFlag := fs.Bool("sort", false, "sort the palette by HSV before printing")
	debug := fs.Bool("debug", false, "enable debug logging")

	if err := fs.Parse(argv); err != nil {
		return args{}, fmt.Errorf("%w: %v", errInvalidArgument, err)
	}

	if *paletteSize <= 0 {
		return args{}, fmt.Errorf("%w: -n/-palette-size must be a positive integer", errInvalidArgument)
	}
	if *alphaThresh < 0 || *alphaThresh > 255 {
		return args{}, fmt.Errorf("%w: -alpha-thresh must be in [0,255]", errInvalidArgument)
	}

	var m paletter.Method
	switch *method {
	case "median", "":
		m = paletter.MethodMedianCut
	case "octree":
		m = paletter.MethodOctree
	default:
		return args{}, fmt.Errorf("%w: -method must be \"median\" or \"octree\", got %q", errInvalidArgument, *method)
	}

	files := fs.Args()
	if len(files) == 0 {
		return args{}, fmt.Errorf("%w: at least one image file is required", errInvalidArgument)
	}

	return args{
		paletteSize: *paletteSize,
		method:      m,
		alphaThresh: uint8(*alphaThresh),
		opts: render.Options{
			Hex:       *hex,
			RGB:       *rgb,
			Uncolored: *uncolored,
			Sort:      *sortFlag,
		},
		debug: *debug,
		files: files,
	}, nil
}

func main() {
	a, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: paletter -n COUNT [-method median|octree] [-alpha-thresh N] [-hex] [-rgb] [-uncolored] [-sort] FILE...")
		os.Exit(2)
	}

	logger := createLogger(a.debug)
	os.Exit(run(context.Background(), a, logger, os.Stdout))
}

func run(ctx context.Context, a args, logger core.Logger, stdout io.Writer) int {
	for i, path := range a.files {
		requestID := uuid.New().String()[:8]
		fileCtx := mtlog.PushProperty(ctx, "RequestID", requestID)
		fileCtx = mtlog.PushProperty(fileCtx, "Path", path)
		fileLogger := logger.WithContext(fileCtx)

		start := time.Now()
		colors, err := ingest.Colors(path, a.alphaThresh)
		if err != nil {
			fileLogger.Error("failed to decode {Path}: {Error}", path, err)
			continue
		}

		palette := paletter.Solve(a.method, colors, a.paletteSize)
		fileLogger.Debug("quantized {Path} to {Count} colors in {Duration}", path, len(palette), time.Since(start))

		if err := render.Header(stdout, i+1, path, a.opts); err != nil {
			fileLogger.Error("failed writing output for {Path}: {Error}", path, err)
			return 1
		}
		if err := render.Write(stdout, palette, a.opts); err != nil {
			fileLogger.Error("failed writing output for {Path}: {Error}", path, err)
			return 1
		}
	}
	return 0
}

// createLogger builds the process-wide structured logger.
func createLogger(debug bool) core.Logger {
	opts := []mtlog.Option{mtlog.WithSink(sinks.NewConsoleSink())}
	if debug {
		opts = append(opts, mtlog.WithMinimumLevel(core.DebugLevel))
	} else {
		opts = append(opts, mtlog.WithMinimumLevel(core.InformationLevel))
	}
	return mtlog.New(opts...)
}
