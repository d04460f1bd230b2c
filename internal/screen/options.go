package screen

// Option configures a Descriptor.
type Option func(*Descriptor)

// WithDynamicTitle sets the hook that derives a bar title from the
// current payload. An empty result falls back to the static title.
func WithDynamicTitle(fn DynamicTitleFunc) Option {
	return func(d *Descriptor) {
		d.dynamicTitle = fn
	}
}

// WithDefaultHandler sets the screen-level press handler used when a
// mounted instance has no handler of its own.
func WithDefaultHandler(h Handler) Option {
	return func(d *Descriptor) {
		d.defaultHandler = h
	}
}

// WithTitleKey sets a message key resolved against the active locale
// before the dynamic-title hook runs. Requires WithTitleResolver.
func WithTitleKey(key string) Option {
	return func(d *Descriptor) {
		d.titleKey = key
	}
}

// WithTitleResolver sets the resolver used for title keys.
func WithTitleResolver(r TitleResolver) Option {
	return func(d *Descriptor) {
		d.titles = r
	}
}

// WithAutoReset controls whether the bar is re-sent automatically when an
// instance of this screen mounts. Defaults to true.
func WithAutoReset(enabled bool) Option {
	return func(d *Descriptor) {
		d.autoReset = enabled
	}
}

// WithUpdateChannel sets the host update channel used by UpdateBar and
// ResetBar.
func WithUpdateChannel(ch UpdateChannel) Option {
	return func(d *Descriptor) {
		d.updates = ch
	}
}

// WithLogger sets the logger for the descriptor.
func WithLogger(logger Logger) Option {
	return func(d *Descriptor) {
		if logger != nil {
			d.logger = logger
		}
	}
}
