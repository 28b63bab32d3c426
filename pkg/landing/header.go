package landing

import "github.com/marquee-dev/marquee/pkg/vdom"

// MenuToggleConfig is the client configuration of the menu button: clicking
// it toggles ActiveClass on the button and TargetClass on the closest
// element matching Target.
type MenuToggleConfig struct {
	ActiveClass string `json:"activeClass"`
	Target      string `json:"target"`
	TargetClass string `json:"targetClass"`
}

// DefaultMenuToggle returns the toggle wiring used by the header.
func DefaultMenuToggle() MenuToggleConfig {
	return MenuToggleConfig{
		ActiveClass: "menu-button-active",
		Target:      ".header",
		TargetClass: "header-active",
	}
}

// Header builds the page header. It returns nil when cfg is nil.
//
// Logo, menu and social links are independent; each is emitted only when
// configured. The menu button exists only alongside a non-empty menu.
func Header(title string, cfg *HeaderConfig) *vdom.VNode {
	if cfg == nil {
		return nil
	}

	wrapper := vdom.Element("div", []string{"header"})

	if cfg.Logo != nil {
		wrapper.Append(vdom.Element("img", []string{"logo"},
			vdom.Src(*cfg.Logo),
			vdom.Alt("Logo "+title),
		))
	}

	if len(cfg.Menu) > 0 {
		wrapper.Append(
			vdom.Element("nav", []string{"menu-list"}, menuLinks(cfg.Menu, "menu-link")),
			vdom.Element("button", []string{"menu-button"},
				vdom.Type("button"),
				vdom.AriaLabel("Menu"),
				vdom.Hook("MenuToggle", DefaultMenuToggle()),
			),
		)
	}

	if len(cfg.Social) > 0 {
		wrapper.Append(vdom.Element("div", []string{"social"},
			vdom.Range(cfg.Social, func(s SocialLink, _ int) *vdom.VNode {
				return vdom.Element("a", []string{"social-link"},
					vdom.Href(s.Link),
					vdom.Element("img", nil, vdom.Src(s.Image), vdom.Alt(s.Title)),
				)
			}),
		))
	}

	return vdom.Element("header", nil,
		vdom.Element("div", []string{"container"}, wrapper),
	)
}

// menuLinks maps menu items to anchors with the given class.
func menuLinks(items []MenuItem, class string) []*vdom.VNode {
	return vdom.Range(items, func(item MenuItem, _ int) *vdom.VNode {
		return vdom.Element("a", []string{class}, vdom.Href(item.Link), vdom.Text(item.Title))
	})
}
