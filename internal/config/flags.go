package config

import "flag"

// Flags holds command-line overrides bound to one flag set.
type Flags struct {
	Config      *string
	Debug       *bool
	LogFile     *string
	NoFills     *bool
	NoOutlines  *bool
	Heightmap   *bool
	Buckets     *int
	ColorSpace  *string
	Width       *int
	Height      *int
	Scale       *float64
	Rotation    *float64
	MinBucket   *int
	MaxBucket   *int
	Supersample *int

	set map[string]bool
}

// BindFlags registers the shared flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Config:      fs.String("config", "", "Path to config file"),
		Debug:       fs.Bool("debug", false, "Enable debug logging"),
		LogFile:     fs.String("log-file", "", "Also write logs to this rotating file"),
		NoFills:     fs.Bool("no-fills", false, "Skip brick fills"),
		NoOutlines:  fs.Bool("no-outlines", false, "Skip brick outlines"),
		Heightmap:   fs.Bool("heightmap", false, "Shade bricks by height instead of color"),
		Buckets:     fs.Int("buckets", 0, "Height index buckets"),
		ColorSpace:  fs.String("colorspace", "", "Color conversion: srgb or linear"),
		Width:       fs.Int("width", 0, "Preview width"),
		Height:      fs.Int("height", 0, "Preview height"),
		Scale:       fs.Float64("scale", 0, "Preview pixels per unit (0 = fit)"),
		Rotation:    fs.Float64("rotation", 0, "Preview rotation in degrees"),
		MinBucket:   fs.Int("min-bucket", 0, "First height bucket to draw"),
		MaxBucket:   fs.Int("max-bucket", -1, "Last height bucket to draw (-1 = all)"),
		Supersample: fs.Int("supersample", 0, "Preview supersampling factor"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.Config
}

// MarkSet records which flags were given explicitly. Call after fs.Parse.
func (f *Flags) MarkSet(fs *flag.FlagSet) {
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
}

// given reports whether a flag was passed. Without MarkSet, non-zero
// values count as given.
func (f *Flags) given(name string, nonZero bool) bool {
	if f.set == nil {
		return nonZero
	}
	return f.set[name]
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if *f.LogFile != "" {
		cfg.Logging.LogFile = *f.LogFile
	}
	if *f.NoFills {
		cfg.Render.Fills = false
	}
	if *f.NoOutlines {
		cfg.Render.Outlines = false
	}
	if *f.Heightmap {
		cfg.Render.Heightmap = true
	}
	if *f.Buckets > 0 {
		cfg.Render.Buckets = *f.Buckets
	}
	if *f.ColorSpace != "" {
		cfg.Render.ColorSpace = *f.ColorSpace
	}
	if *f.Width > 0 {
		cfg.Preview.Width = *f.Width
	}
	if *f.Height > 0 {
		cfg.Preview.Height = *f.Height
	}
	if *f.Scale > 0 {
		cfg.Preview.Scale = float32(*f.Scale)
	}
	if f.given("rotation", *f.Rotation != 0) {
		cfg.Preview.Rotation = float32(*f.Rotation)
	}
	if f.given("min-bucket", *f.MinBucket != 0) {
		cfg.Preview.MinBucket = *f.MinBucket
	}
	if f.given("max-bucket", *f.MaxBucket != -1) {
		cfg.Preview.MaxBucket = *f.MaxBucket
	}
	if *f.Supersample > 0 {
		cfg.Preview.Supersample = *f.Supersample
	}
}
