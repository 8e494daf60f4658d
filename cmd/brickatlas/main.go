// brickatlas turns brick scenes into 2D map vertex buffers and previews.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/brickatlas/internal/config"
	"github.com/Faultbox/brickatlas/internal/logger"
	"github.com/Faultbox/brickatlas/internal/preview"
	"github.com/Faultbox/brickatlas/internal/scene"
	"github.com/Faultbox/brickatlas/internal/silhouette"
	"github.com/Faultbox/brickatlas/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "build", "b":
		cmdBuild(args)
	case "preview", "p":
		cmdPreview(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`brickatlas - 2D map builder for brick scenes

Usage:
  brickatlas <command> [options] <file>

Commands:
  info <scene.yaml>                  Show scene statistics
  build [-o out.bin] <scene.yaml>    Build a vertex buffer file
  preview [-o out.png] <input>       Render a scene or buffer file to PNG
  config [-o path]                   Write the effective config

Common options:
  -config <file>     Config file (default ./brickatlas.yaml)
  -debug             Enable debug logging
  -no-fills          Skip brick fills
  -no-outlines       Skip brick outlines
  -heightmap         Shade bricks by height
  -buckets <n>       Height index buckets (default 500)
  -colorspace <cs>   srgb or linear

Examples:
  brickatlas info harbor.yaml
  brickatlas build -o harbor.bin harbor.yaml
  brickatlas preview -max-bucket 250 -o lower.png harbor.bin`)
}

// setup parses a subcommand's flags, loads the config and starts logging.
func setup(name string, args []string, extra func(fs *flag.FlagSet)) (*flag.FlagSet, *config.Config) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.BindFlags(fs)
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)
	flags.MarkSet(fs)

	cfg, err := config.Load(flags)
	if err != nil {
		fail(err)
	}
	if err := logger.InitWithOptions(cfg.Logging.LoggerOptions(os.Stderr)); err != nil {
		fail(err)
	}
	return fs, cfg
}

func fail(err error) {
	errs := multierr.Errors(err)
	if len(errs) > 1 {
		fmt.Fprintf(os.Stderr, "Error: %d problems\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  - %v\n", e)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	logger.Sync()
	os.Exit(1)
}

func loadScene(path string) *scene.Scene {
	save, err := formats.LoadScene(path)
	if err != nil {
		fail(err)
	}
	sc, err := scene.Prepare(save)
	if err != nil {
		fail(err)
	}
	return sc
}

func buildBuffer(sc *scene.Scene, cfg *config.Config) *scene.Buffer {
	start := time.Now()
	var buf *scene.Buffer
	if cfg.Render.Heightmap {
		buf = scene.BuildHeightmap(sc, cfg.Render.Buckets)
	} else {
		conv, err := cfg.Render.Converter()
		if err != nil {
			fail(err)
		}
		buf = scene.Build(sc, cfg.Render.SceneOptions(), conv)
	}
	logger.Info("built vertex buffer",
		zap.Int("bricks", buf.Stats.Bricks),
		zap.Int("triangles", buf.Stats.Triangles),
		zap.Duration("elapsed", time.Since(start)),
	)
	return buf
}

func cmdInfo(args []string) {
	fs, _ := setup("info", args, nil)
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: brickatlas info <scene.yaml>")
		os.Exit(1)
	}

	sc := loadScene(fs.Arg(0))
	ext := sc.Extent()

	fmt.Printf("Scene:     %s\n", fs.Arg(0))
	if sc.Description != "" {
		fmt.Printf("About:     %s\n", sc.Description)
	}
	fmt.Printf("Declared:  %d bricks\n", sc.Declared)
	fmt.Printf("Loaded:    %d visible, %d hidden\n", len(sc.Bricks), sc.Hidden)
	fmt.Printf("Drawn:     %d (%d duplicates discarded)\n", sc.VisibleCount(), sc.Discarded)
	fmt.Printf("Heights:   %d .. %d\n", sc.MinHeight, sc.MaxHeight)
	fmt.Printf("Bounds:    %s\n", ext.Bounds())
	if c, ok := ext.Centroid(); ok {
		fmt.Printf("Centroid:  (%.1f, %.1f)\n", c.X(), c.Y())
		fmt.Printf("Relative:  %s\n", ext.Bounds().Relative(c))
	}

	var counts [len(silhouette.Families)]int
	for i, p := range sc.Bricks {
		if sc.Visible.Has(i) {
			counts[p.Family]++
		}
	}
	fmt.Println()
	fmt.Println("Bricks by shape:")
	for _, f := range silhouette.Families {
		if counts[f] > 0 {
			fmt.Printf("  %-22s %d\n", f, counts[f])
		}
	}
}

func cmdBuild(args []string) {
	var output *string
	fs, cfg := setup("build", args, func(fs *flag.FlagSet) {
		output = fs.String("o", "", "Output file (default <scene>.bin)")
	})
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: brickatlas build [-o out.bin] <scene.yaml>")
		os.Exit(1)
	}

	input := fs.Arg(0)
	out := *output
	if out == "" {
		out = strings.TrimSuffix(input, ".yaml") + ".bin"
	}

	buf := buildBuffer(loadScene(input), cfg)
	if err := formats.SaveVertexBuffer(out, buf.Export()); err != nil {
		fail(err)
	}

	fmt.Printf("Wrote %s: %d vertices, %d buckets\n", out, buf.VertexCount(), buf.Index.Len())
}

func cmdPreview(args []string) {
	var output *string
	fs, cfg := setup("preview", args, func(fs *flag.FlagSet) {
		output = fs.String("o", "", "Output PNG (default <input>.png)")
	})
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: brickatlas preview [-o out.png] <scene.yaml|buffer.bin>")
		os.Exit(1)
	}

	input := fs.Arg(0)
	var vb *formats.VertexBuffer
	if strings.HasSuffix(input, ".bin") {
		var err error
		if vb, err = formats.LoadVertexBuffer(input); err != nil {
			fail(err)
		}
	} else {
		vb = buildBuffer(loadScene(input), cfg).Export()
	}

	out := *output
	if out == "" {
		out = strings.TrimSuffix(strings.TrimSuffix(input, ".bin"), ".yaml") + ".png"
	}

	bg, err := cfg.Preview.BackgroundColor()
	if err != nil {
		fail(err)
	}

	center := mgl32.Vec2{float32(vb.Centroid[0]), float32(vb.Centroid[1])}
	bounds := scene.Bounds{X1: vb.Bounds[0], Y1: vb.Bounds[1], X2: vb.Bounds[2], Y2: vb.Bounds[3]}
	scale := cfg.Preview.Scale
	if scale == 0 {
		scale = preview.Fit(bounds, center, cfg.Preview.Width, cfg.Preview.Height, cfg.Preview.Margin)
	}

	lo, hi := cfg.Preview.Window(vb.Buckets())
	img, err := preview.Render(vb.Clip(lo, hi), preview.Options{
		View: preview.View{
			Width:    cfg.Preview.Width,
			Height:   cfg.Preview.Height,
			Center:   center,
			Scale:    scale,
			Rotation: cfg.Preview.Rotation,
		},
		Background:  bg,
		Supersample: cfg.Preview.Supersample,
	})
	if err != nil {
		fail(err)
	}
	if err := preview.WritePNG(out, img); err != nil {
		fail(err)
	}

	logger.Debug("preview rendered",
		zap.Int("minBucket", lo),
		zap.Int("maxBucket", hi),
		zap.Float32("scale", scale),
	)
	fmt.Printf("Wrote %s (%dx%d)\n", out, cfg.Preview.Width, cfg.Preview.Height)
}

func cmdConfig(args []string) {
	var output *string
	_, cfg := setup("config", args, func(fs *flag.FlagSet) {
		output = fs.String("o", "", "Output path (default user config dir)")
	})
	defer logger.Sync()

	path := *output
	var err error
	if path == "" {
		path, err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", path)
}
