package rose

import "golang.org/x/text/language"

// Option configures a Chart during creation.
//
// Example:
//
//	c := rose.New(700, 700, rose.WithMargin(60), rose.WithLocale(language.German))
type Option func(*options)

type options struct {
	margin float64
	radius float64
	locale language.Tag
}

// defaultMargin leaves room for hour labels and the legend.
const defaultMargin = 80

func defaultOptions() options {
	return options{
		margin: defaultMargin,
		locale: language.English,
	}
}

// WithMargin sets the space between the outer grid ring and the nearest
// canvas edge. It is ignored when WithRadius is given.
func WithMargin(m float64) Option {
	return func(o *options) {
		o.margin = m
	}
}

// WithRadius fixes the outer grid radius instead of deriving it from the
// canvas size.
func WithRadius(r float64) Option {
	return func(o *options) {
		o.radius = r
	}
}

// WithLocale sets the language used to format counts in the overlay.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}
