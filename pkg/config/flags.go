package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagScene    = flag.String("scene", "", "Built-in scene name or path to a YAML scene file")
	flagPreset   = flag.String("preset", "", "Render preset: shallow or deep")
	flagWidth    = flag.Int("width", 0, "Image width in pixels")
	flagSamples  = flag.Int("samples", 0, "Samples per pixel (overrides preset)")
	flagDepth    = flag.Int("depth", 0, "Maximum bounce depth (overrides preset)")
	flagWorkers  = flag.Int("workers", 0, "Render goroutines (0 = one per CPU)")
	flagFilter   = flag.String("filter", "", "Reconstruction filter: box, gaussian or mitchell")
	flagOutput   = flag.String("output", "", "Output image path (.bmp or .png)")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile  = flag.String("log-file", "", "Also write logs to this rotating file")
	flagSaveConf = flag.String("save-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the --save-config destination, if any.
func SaveConfigPath() string {
	return *flagSaveConf
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagScene != "" {
		cfg.Scene = *flagScene
	}
	if *flagPreset != "" {
		cfg.Render.Preset = *flagPreset
		// An explicit preset on the command line wins over counts from the file
		cfg.Render.SamplesPerPixel = 0
		cfg.Render.MaxDepth = 0
	}
	if *flagWidth > 0 {
		cfg.Image.Width = *flagWidth
	}
	if *flagSamples > 0 {
		cfg.Render.SamplesPerPixel = *flagSamples
	}
	if *flagDepth > 0 {
		cfg.Render.MaxDepth = *flagDepth
	}
	if *flagWorkers > 0 {
		cfg.Render.Workers = *flagWorkers
	}
	if *flagFilter != "" {
		cfg.Render.Filter = *flagFilter
	}
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
