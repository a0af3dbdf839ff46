// Command ggxtables computes the GGX albedo tables and writes them as Go
// source.
//
//	go run ./cmd/ggxtables -output shading/ggx/albedo_data.go
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pbr"
	"github.com/gogpu/pbr/shading/ggx/table"
)

func main() {
	def := table.DefaultConfig()
	var (
		dimensions = flag.String("dimensions", joinInts(def.Dimensions), "comma-separated space dimensions")
		samples    = flag.Int("samples", def.SampleCount, "samples per table cell")
		size       = flag.Int("size", def.Size, "grid points per axis")
		workers    = flag.Int("workers", 0, "worker count (0 uses GOMAXPROCS)")
		seed       = flag.Uint64("seed", def.Seed, "random seed")
		pkg        = flag.String("package", "ggx", "package name of the generated file")
		output     = flag.String("output", "albedo_data.go", "output file, - for stdout")
		verbose    = flag.Bool("v", false, "log every table cell")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pbr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	dims, err := parseInts(*dimensions)
	if err != nil {
		log.Fatalf("Invalid -dimensions: %v", err)
	}

	cfg := table.Config{
		Dimensions:  dims,
		Size:        *size,
		SampleCount: *samples,
		Workers:     *workers,
		Seed:        *seed,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	tables, err := table.Compute(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to compute tables: %v", err)
	}

	var buf bytes.Buffer
	if err := table.Write(&buf, *pkg, tables); err != nil {
		log.Fatalf("Failed to write tables: %v", err)
	}
	if *output == "-" {
		_, err = os.Stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(*output, buf.Bytes(), 0o644)
	}
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	total := int64(len(dims)) * int64(cfg.Size) * int64(cfg.Size) * int64(cfg.SampleCount)
	p := message.NewPrinter(language.English)
	log.Print(p.Sprintf("Computed %d tables, %d samples in %v, saved to %s",
		len(tables), total, time.Since(start).Round(time.Second), *output))
}

func parseInts(s string) ([]int, error) {
	var res []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		res = append(res, v)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return res, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
