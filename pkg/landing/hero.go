package landing

import (
	"log/slog"
	"strconv"

	"github.com/marquee-dev/marquee/pkg/vdom"
)

// RatingSlots is the number of stars in the rating block.
const RatingSlots = 10

// TrailerLabel is the text of the trailer button and the play link label.
const TrailerLabel = "Watch trailer"

var animated = []string{"animated", "fadeInRight"}

// animatedClasses prepends class to the entrance animation classes.
func animatedClasses(class ...string) []string {
	out := make([]string, 0, len(class)+len(animated))
	out = append(out, class...)
	return append(out, animated...)
}

// Main builds the hero block. It returns nil when cfg is nil.
//
// The title heading is always present. Genre, rating, description, trailer
// and slider each appear only when configured.
func Main(title string, cfg *MainConfig, opts ...Option) *vdom.VNode {
	if cfg == nil {
		return nil
	}
	o := buildOptions(opts)

	content := vdom.Element("div", []string{"content"})

	if cfg.Genre != nil {
		content.Append(vdom.Element("span", animatedClasses("genre"), vdom.Text(*cfg.Genre)))
	}

	if cfg.Rating != nil {
		content.Append(Rating(*cfg.Rating, o.assets))
	}

	content.Append(vdom.Element("h1", animatedClasses("main-title"), vdom.Text(title)))

	if cfg.Description != nil {
		content.Append(description(*cfg.Description, o.formatter))
	}

	mainContent := vdom.Element("div", []string{"main-content"}, content)

	if cfg.Trailer != nil {
		trailer := *cfg.Trailer
		content.Append(vdom.Element("a", animatedClasses("button", "youtube-modal"),
			vdom.Href(trailer),
			vdom.Text(TrailerLabel),
		))
		mainContent.Append(vdom.Element("a", []string{"play", "youtube-modal"},
			vdom.Href(trailer),
			vdom.AriaLabel(TrailerLabel),
			vdom.Element("img", []string{"play-img"},
				vdom.Src(o.assets.Play),
				vdom.Alt(""),
				vdom.AriaHidden(true),
			),
		))
	}

	container := vdom.Element("div", []string{"container"}, mainContent)
	container.Append(Slider(cfg.Slider))

	return vdom.Element("main", nil, container)
}

// Rating builds the star block: exactly RatingSlots stars, slot i filled
// when i < rating, followed by a "{rating}/10" readout. Only the first star
// carries a text alternative.
func Rating(rating float64, assets Assets) *vdom.VNode {
	assets = assets.withDefaults()
	label := FormatRating(rating)

	stars := vdom.Repeat(RatingSlots, func(i int) *vdom.VNode {
		src := assets.StarOutline
		if float64(i) < rating {
			src = assets.Star
		}
		alt := ""
		if i == 0 {
			alt = "Rating " + label + " of " + strconv.Itoa(RatingSlots)
		}
		return vdom.Element("img", []string{"star"}, vdom.Src(src), vdom.Alt(alt))
	})

	return vdom.Element("div", animatedClasses("rating"),
		vdom.Element("div", []string{"rating-stars"}, stars),
		vdom.Element("div", []string{"rating-number"},
			vdom.Text(label+"/"+strconv.Itoa(RatingSlots)),
		),
	)
}

// FormatRating prints a rating in its shortest decimal form: 8 → "8",
// 7.5 → "7.5".
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

// description renders the hero text. A formatter error falls back to the
// plain paragraph.
func description(text string, f DescriptionFormatter) *vdom.VNode {
	if f != nil {
		html, err := f.FormatHTML(text)
		if err == nil {
			return vdom.Element("div", animatedClasses("main-description"), vdom.Raw(html))
		}
		slog.Default().With("component", "landing").Warn("description formatting failed", "error", err)
	}
	return vdom.Element("p", animatedClasses("main-description"), vdom.Text(text))
}
