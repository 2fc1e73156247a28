// SPDX-License-Identifier: MIT

// Command stridetool rearranges images through strided views: mirroring,
// transposing, rotating and cropping are view operations, and only the final
// row-major copy touches pixel memory.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/strided/containers"
	"github.com/katalvlaran/strided/texels"
)

func main() {
	var (
		input   = flag.String("in", "", "input image (PNG, JPEG or GIF)")
		output  = flag.String("out", "out.png", "output PNG file")
		op      = flag.String("op", "flipx", "operation: flipx, flipy, transpose, rot90, crop")
		crop    = flag.String("crop", ":,:", "columns,rows for -op crop, each in start:stop:step form")
		verbose = flag.Bool("v", false, "log view diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		containers.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *input == "" {
		log.Fatal("missing -in")
	}

	src, err := load(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	_, v, err := texels.FromImage(src)
	if err != nil {
		log.Fatalf("Failed to view %s: %v", *input, err)
	}

	r, err := apply(v.View(), *op, *crop)
	if err != nil {
		log.Fatalf("Failed to apply %s: %v", *op, err)
	}
	dst, err := texels.ToRGBA(r)
	if err != nil {
		log.Fatalf("Failed to materialise: %v", err)
	}

	if err := save(*output, dst); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s: %v saved to %s (%dx%d)\n", *op, r, *output, dst.Bounds().Dx(), dst.Bounds().Dy())
}

// apply runs op on a rows × columns × channels view.
func apply(v containers.View3D[uint8], op, crop string) (containers.View3D[uint8], error) {
	switch op {
	case "flipx":
		return v.Flip(1)
	case "flipy":
		return v.Flip(0)
	case "transpose":
		return v.Transpose(0, 1)
	case "rot90":
		// Clockwise: transpose, then mirror horizontally.
		t, err := v.Transpose(0, 1)
		if err != nil {
			return t, err
		}
		return t.Flip(1)
	case "crop":
		cols, rows, err := parseCrop(crop)
		if err != nil {
			return containers.View3D[uint8]{}, err
		}
		return v.SliceAll(rows, cols, containers.All())
	default:
		return containers.View3D[uint8]{}, fmt.Errorf("unknown operation %q", op)
	}
}

// parseCrop splits "columns,rows" into two slice descriptors.
func parseCrop(text string) (cols, rows containers.Slice, err error) {
	x, y, ok := strings.Cut(text, ",")
	if !ok {
		return cols, rows, fmt.Errorf("crop %q: want columns,rows", text)
	}
	if cols, err = containers.ParseSlice(x); err != nil {
		return cols, rows, err
	}
	if rows, err = containers.ParseSlice(y); err != nil {
		return cols, rows, err
	}

	return cols, rows, nil
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

func save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
