package landing

import (
	"net/url"
	"path"
	"strings"
)

// faviconTypes maps icon file extensions to MIME types.
var faviconTypes = map[string]string{
	"svg":  "image/svg+xml",
	"ico":  "image/x-icon",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"avif": "image/avif",
	"bmp":  "image/bmp",
}

// Favicon is the icon link of the page.
type Favicon struct {
	Href string
	Type string // empty when the URL has no extension
}

// NewFavicon derives the icon link from its URL. Query strings and fragments
// are ignored when reading the extension. Unknown extensions map to
// "image/<ext>".
func NewFavicon(href string) Favicon {
	return Favicon{Href: href, Type: FaviconType(href)}
}

// FaviconType returns the MIME type for an icon URL.
func FaviconType(href string) string {
	p := href
	if u, err := url.Parse(href); err == nil {
		p = u.Path
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if ext == "" {
		return ""
	}
	if t, ok := faviconTypes[ext]; ok {
		return t
	}
	return "image/" + ext
}
