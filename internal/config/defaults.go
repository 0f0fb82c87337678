package config

// DefaultExcludes are glob patterns skipped when scanning a directory.
var DefaultExcludes = []string{
	"**/thumbs/**",
	"**/*.thumb.*",
}

// DefaultConfig returns a Config with the viewer's default tunables.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "lightbox",
			Width:  1280,
			Height: 800,
		},
		Viewer: ViewerConfig{
			MaxScale:           5,
			WheelStep:          0.12,
			DoubleClickScale:   2.5,
			DoubleTapFactor:    2.5,
			DoubleTapWindowMS:  300,
			DoubleTapRadius:    20,
			SwipeMinDistance:   40,
			SwipeMaxDurationMS: 500,
		},
		Display: DisplayConfig{
			Padding:      40,
			TransitionMS: 150,
		},
		Gallery: GalleryConfig{
			Path:    ".",
			Exclude: DefaultExcludes,
		},
	}
}
