package landing

// Default icon locations, relative to the page.
const (
	DefaultStarIcon        = "img/star.svg"
	DefaultStarOutlineIcon = "img/star-o.svg"
	DefaultPlayIcon        = "img/play.svg"
)

// Assets are the icon URLs the hero block references.
type Assets struct {
	Star        string // filled rating star
	StarOutline string // empty rating star
	Play        string // trailer play button
}

// DefaultAssets returns the stock icon locations.
func DefaultAssets() Assets {
	return Assets{
		Star:        DefaultStarIcon,
		StarOutline: DefaultStarOutlineIcon,
		Play:        DefaultPlayIcon,
	}
}

// withDefaults fills unset fields from DefaultAssets.
func (a Assets) withDefaults() Assets {
	d := DefaultAssets()
	if a.Star == "" {
		a.Star = d.Star
	}
	if a.StarOutline == "" {
		a.StarOutline = d.StarOutline
	}
	if a.Play == "" {
		a.Play = d.Play
	}
	return a
}

// DescriptionFormatter turns a description into trusted HTML.
type DescriptionFormatter interface {
	FormatHTML(source string) (string, error)
}

// Option configures the builders.
type Option func(*options)

type options struct {
	assets    Assets
	formatter DescriptionFormatter
}

func buildOptions(opts []Option) options {
	o := options{assets: DefaultAssets()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithAssets overrides icon URLs. Empty fields keep their defaults.
func WithAssets(a Assets) Option {
	return func(o *options) {
		o.assets = a.withDefaults()
	}
}

// WithDescriptionFormatter renders the hero description through f instead
// of as plain text.
func WithDescriptionFormatter(f DescriptionFormatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}
