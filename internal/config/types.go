package config

// Config is the top-level lightbox configuration, corresponding to
// lightbox.yaml.
type Config struct {
	Window  WindowConfig  `yaml:"window" koanf:"window"`
	Viewer  ViewerConfig  `yaml:"viewer" koanf:"viewer"`
	Display DisplayConfig `yaml:"display" koanf:"display"`
	Gallery GalleryConfig `yaml:"gallery" koanf:"gallery"`
}

// WindowConfig holds the initial window settings.
type WindowConfig struct {
	Title  string `yaml:"title" koanf:"title"`
	Width  int    `yaml:"width" koanf:"width"`
	Height int    `yaml:"height" koanf:"height"`
}

// ViewerConfig holds the gesture tunables. Durations are in milliseconds.
type ViewerConfig struct {
	MaxScale           float64 `yaml:"max_scale" koanf:"max_scale"`
	WheelStep          float64 `yaml:"wheel_step" koanf:"wheel_step"`
	DoubleClickScale   float64 `yaml:"double_click_scale" koanf:"double_click_scale"`
	DoubleTapFactor    float64 `yaml:"double_tap_factor" koanf:"double_tap_factor"`
	DoubleTapWindowMS  int     `yaml:"double_tap_window_ms" koanf:"double_tap_window_ms"`
	DoubleTapRadius    float64 `yaml:"double_tap_radius" koanf:"double_tap_radius"`
	SwipeMinDistance   float64 `yaml:"swipe_min_distance" koanf:"swipe_min_distance"`
	SwipeMaxDurationMS int     `yaml:"swipe_max_duration_ms" koanf:"swipe_max_duration_ms"`
}

// DisplayConfig holds rendering settings.
type DisplayConfig struct {
	Padding      float64 `yaml:"padding" koanf:"padding"`
	TransitionMS int     `yaml:"transition_ms" koanf:"transition_ms"`
}

// GalleryConfig selects the images to browse.
type GalleryConfig struct {
	// Path is a directory to scan or a YAML manifest.
	Path    string   `yaml:"path" koanf:"path"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
	Start   int      `yaml:"start" koanf:"start"`
}
