package window

// WindowBuilderOption defines functional options for configuring a Window.
type WindowBuilderOption func(*showcaseWindow)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title bar text
//
// Returns:
//   - WindowBuilderOption: the option to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *showcaseWindow) {
		if title != "" {
			w.title = title
		}
	}
}

// WithWidth sets the initial window width in pixels. Values <= 0 are ignored.
//
// Parameters:
//   - width: the window width
//
// Returns:
//   - WindowBuilderOption: the option to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *showcaseWindow) {
		if width > 0 {
			w.width = width
		}
	}
}

// WithHeight sets the initial window height in pixels. Values <= 0 are ignored.
//
// Parameters:
//   - height: the window height
//
// Returns:
//   - WindowBuilderOption: the option to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *showcaseWindow) {
		if height > 0 {
			w.height = height
		}
	}
}
