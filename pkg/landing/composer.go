package landing

import "github.com/marquee-dev/marquee/pkg/vdom"

// MountClass marks the element the page is mounted into.
const MountClass = "body-app"

// SubColorProperty is the custom property carrying the accent color. It is
// set on the document element.
const SubColorProperty = "--sub-color"

// Page is a composed landing page, not yet attached to any document.
type Page struct {
	Title string

	// Favicon is nil when the config has no favicon.
	Favicon *Favicon

	// MountClasses are added to the mount point.
	MountClasses []string

	// MountStyle is merged into the mount point's inline style.
	MountStyle vdom.Style

	// DocumentStyle is merged into the <html> element's inline style.
	DocumentStyle vdom.Style

	// Sections are appended to the mount point in order.
	Sections []*vdom.VNode
}

// Compose resolves cfg into a Page. It never mutates cfg; composing the same
// config twice yields equal pages.
func Compose(cfg *PageConfig, opts ...Option) *Page {
	if cfg == nil {
		cfg = &PageConfig{}
	}

	page := &Page{
		Title:        cfg.Title,
		MountClasses: []string{MountClass},
	}

	page.MountStyle = page.MountStyle.
		Set("color", deref(cfg.FontColor)).
		Set("background-color", deref(cfg.BackgroundColor))
	if cfg.Background != nil {
		page.MountStyle = page.MountStyle.Set("background-image", vdom.CSSURL(*cfg.Background))
	}

	if cfg.SubColor != nil {
		page.DocumentStyle = page.DocumentStyle.Set(SubColorProperty, *cfg.SubColor)
	}

	if cfg.Favicon != nil {
		icon := NewFavicon(*cfg.Favicon)
		page.Favicon = &icon
	}

	if cfg.Header != nil {
		page.Sections = append(page.Sections, Header(cfg.Title, cfg.Header))
	}
	if cfg.Main != nil {
		page.Sections = append(page.Sections, Main(cfg.Title, cfg.Main, opts...))
	}
	if cfg.Footer != nil {
		page.Sections = append(page.Sections, Footer(cfg.Footer))
	}

	return page
}

// Attach mounts the page into an in-memory root element: it adds the mount
// classes, merges the mount style and appends copies of the sections. The
// page itself is left unchanged and can be attached again.
func (p *Page) Attach(root *vdom.VNode) *vdom.VNode {
	if root == nil {
		return nil
	}
	root.AddClass(p.MountClasses...)

	if len(p.MountStyle) > 0 {
		root.MergeStyle(p.MountStyle)
	}

	for _, section := range p.Sections {
		root.Append(section.Clone())
	}
	return root
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
