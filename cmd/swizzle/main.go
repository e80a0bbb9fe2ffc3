// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// swizzle converts images between packed 8-bit pixel layouts.
//
// Usage:
//
//	swizzle -input frame.rgb -from rgb -width 640 -height 480 -to bgra -output frame.bgra
//	swizzle -input frame.rgba -from rgba -width 640 -height 480 -stride 2816 -to rgb
//	swizzle -info
//
// Input and output are raw pixels. Input rows may be padded with -stride;
// output rows are always tightly packed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ajroetker/go-swizzle/hwy"
	"github.com/ajroetker/go-swizzle/hwy/contrib/image"
)

var (
	inputFile  = flag.String("input", "", "Input file of raw pixels (required unless -info)")
	outputFile = flag.String("output", "-", "Output file for raw pixels, - for stdout")
	fromFormat = flag.String("from", "", "Input format ("+formatNames()+") (required)")
	toFormat   = flag.String("to", "bgra", "Output format ("+formatNames()+")")
	width      = flag.Int("width", 0, "Image width in pixels (required)")
	height     = flag.Int("height", 0, "Image height in pixels (required)")
	stride     = flag.Int("stride", 0, "Bytes between input row starts (default: packed rows)")
	workers    = flag.Int("workers", 1, "Number of goroutines converting row bands")
	tier       = flag.String("tier", "", "Cap the kernel tier (for example swar or scalar)")
	info       = flag.Bool("info", false, "Print the detected tiers and exit")
	verbose    = flag.Bool("v", false, "Log dispatch decisions to stderr")
)

type config struct {
	input, output string
	from, to      string
	width, height int
	stride        int
	workers       int
	tier          string
}

func main() {
	flag.Parse()

	if *verbose {
		hwy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *info {
		printInfo(os.Stdout)
		return
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config{
		input:   *inputFile,
		output:  *outputFile,
		from:    *fromFormat,
		to:      *toFormat,
		width:   *width,
		height:  *height,
		stride:  *stride,
		workers: *workers,
		tier:    *tier,
	}
	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func formatNames() string {
	var names []string
	for _, f := range image.Formats() {
		names = append(names, strings.ToLower(f.String()))
	}
	return strings.Join(names, ",")
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "tier: %s (%d-byte chunks)\n", hwy.CurrentName(), hwy.CurrentWidth())
	var names []string
	for _, t := range hwy.Supported() {
		names = append(names, t.String())
	}
	fmt.Fprintf(w, "supported: %s\n", strings.Join(names, ", "))
}

// parseTier returns the tier of this architecture's chain named s.
func parseTier(s string) (hwy.Tier, error) {
	for _, t := range hwy.Chain() {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	var names []string
	for _, t := range hwy.Chain() {
		names = append(names, t.String())
	}
	return 0, fmt.Errorf("unknown tier %q (have %s)", s, strings.Join(names, ", "))
}

func run(cfg config, stdout io.Writer) error {
	if cfg.tier != "" {
		t, err := parseTier(cfg.tier)
		if err != nil {
			return err
		}
		restore := hwy.Override(t)
		defer restore()
	}

	to, err := image.ParseFormat(cfg.to)
	if err != nil {
		return err
	}

	src, err := load(cfg)
	if err != nil {
		return err
	}

	rowBytes := src.Width() * to.BytesPerPixel()
	dst, err := image.FromBytes(make([]byte, rowBytes*src.Height()), src.Width(), src.Height(), rowBytes, to)
	if err != nil {
		return err
	}
	if err := image.Convert(dst, src, &image.Options{Workers: cfg.workers}); err != nil {
		return err
	}

	if cfg.output == "-" {
		_, err = stdout.Write(dst.Bytes())
		return err
	}
	return os.WriteFile(cfg.output, dst.Bytes(), 0o644)
}

// load wraps the raw input file as an image.
func load(cfg config) (*image.Image, error) {
	if cfg.from == "" {
		return nil, errors.New("-from is required")
	}
	f, err := image.ParseFormat(cfg.from)
	if err != nil {
		return nil, err
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, errors.New("-width and -height must be positive")
	}
	data, err := os.ReadFile(cfg.input)
	if err != nil {
		return nil, err
	}
	stride := cfg.stride
	if stride == 0 {
		stride = cfg.width * f.BytesPerPixel()
	}
	img, err := image.FromBytes(data, cfg.width, cfg.height, stride, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.input, err)
	}
	hwy.Logger().Debug("swizzle: loaded input", "file", cfg.input, "format", f.String(),
		"width", cfg.width, "height", cfg.height, "stride", stride)
	return img, nil
}
