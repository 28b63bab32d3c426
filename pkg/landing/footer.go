package landing

import "github.com/marquee-dev/marquee/pkg/vdom"

// Footer builds the page footer. It returns nil when cfg is nil. The left
// (copyright) and right (menu) halves are independent.
func Footer(cfg *FooterConfig) *vdom.VNode {
	if cfg == nil {
		return nil
	}

	content := vdom.Element("div", []string{"footer-content"})

	if cfg.Copyright != nil {
		content.Append(vdom.Element("div", []string{"left"},
			vdom.Element("span", []string{"copyright"}, vdom.Text(*cfg.Copyright)),
		))
	}

	if len(cfg.Menu) > 0 {
		content.Append(vdom.Element("div", []string{"right"},
			vdom.Element("nav", []string{"footer-menu"}, menuLinks(cfg.Menu, "footer-link")),
		))
	}

	return vdom.Element("footer", nil,
		vdom.Element("div", []string{"container"}, content),
	)
}
