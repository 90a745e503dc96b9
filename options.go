package canvas

// Option configures a new Canvas at construction time.
type Option func(*canvasOptions)

type canvasOptions struct {
	dither bool
}

func defaultOptions() canvasOptions {
	return canvasOptions{dither: true}
}

// WithDither toggles ordered Bayer dithering on get_image_data readback.
// Enabled by default.
func WithDither(enabled bool) Option {
	return func(o *canvasOptions) { o.dither = enabled }
}
