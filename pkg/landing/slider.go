package landing

import (
	"strings"

	"github.com/marquee-dev/marquee/pkg/vdom"
)

// CarouselConfig is handed to the client carousel widget.
type CarouselConfig struct {
	Loop        bool               `json:"loop"`
	Navigation  CarouselNavigation `json:"navigation"`
	Breakpoints map[int]Breakpoint `json:"breakpoints"`
}

// CarouselNavigation names the "next" control, resolved inside the series
// block.
type CarouselNavigation struct {
	NextEl string `json:"nextEl"`
}

// Breakpoint applies from the given viewport width upwards.
type Breakpoint struct {
	SlidesPerView int `json:"slidesPerView"`
	SpaceBetween  int `json:"spaceBetween"`
}

// DefaultCarousel returns a looping carousel with one slide from 320px and
// two slides from 541px.
func DefaultCarousel() CarouselConfig {
	return CarouselConfig{
		Loop:       true,
		Navigation: CarouselNavigation{NextEl: ".arrow"},
		Breakpoints: map[int]Breakpoint{
			320: {SlidesPerView: 1, SpaceBetween: 20},
			541: {SlidesPerView: 2, SpaceBetween: 40},
		},
	}
}

// Slider builds the carousel block, one slide per entry in order. It
// returns nil for an empty slider.
func Slider(slides []Slide) *vdom.VNode {
	if len(slides) == 0 {
		return nil
	}

	return vdom.Element("div", []string{"series"},
		vdom.Element("div", []string{"swiper-container"},
			vdom.Hook("Carousel", DefaultCarousel()),
			vdom.Element("div", []string{"swiper-wrapper"}, vdom.Range(slides, slide)),
		),
		vdom.Element("button", []string{"arrow"},
			vdom.Type("button"),
			vdom.AriaLabel("Next slide"),
		),
	)
}

func slide(s Slide, _ int) *vdom.VNode {
	var title, subtitle string
	if s.Title != nil {
		title = *s.Title
	}
	if s.Subtitle != nil {
		subtitle = *s.Subtitle
	}

	card := vdom.Element("figure", []string{"card"},
		vdom.Element("img", []string{"card-img"},
			vdom.Src(s.Img),
			vdom.Alt(strings.TrimSpace(title+" "+subtitle)),
		),
	)

	if s.Title != nil || s.Subtitle != nil {
		caption := vdom.Element("figcaption", []string{"card-description"})
		if s.Subtitle != nil {
			caption.Append(vdom.Element("p", []string{"card-subtitle"}, vdom.Text(subtitle)))
		}
		if s.Title != nil {
			caption.Append(vdom.Element("p", []string{"card-title"}, vdom.Text(title)))
		}
		card.Append(caption)
	}

	return vdom.Element("div", []string{"swiper-slide"}, card)
}
