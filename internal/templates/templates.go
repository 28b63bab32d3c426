package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/marquee-dev/marquee/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// Title is the movie title shown in the browser tab and the hero.
	Title string

	// Description is the hero description.
	Description string
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files is a map of relative paths to file contents.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"full":    fullTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.Newf(errors.CategoryCLI, "template %q not found", name).
			WithSuggestion("Available templates: minimal, full")
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths returns the template's files in write order.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create generates a project from the template.
func (t *Template) Create(dir string, cfg Config) error {
	if cfg.Title == "" {
		cfg.Title = "Untitled"
	}

	for _, relPath := range t.Paths() {
		tmpl, err := template.New(relPath).Parse(t.Files[relPath])
		if err != nil {
			return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", relPath, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", relPath, err)
		}

		fullPath := filepath.Join(dir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return errors.New(errors.CodeBuildWrite).WithDetail(fullPath).Wrap(err)
		}
		if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
			return errors.New(errors.CodeBuildWrite).WithDetail(fullPath).Wrap(err)
		}
	}

	return nil
}

const starSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#f5c518" d="M12 2l3 7h7l-5.5 4.5 2 7.5-6.5-4.5-6.5 4.5 2-7.5L2 9h7z"/></svg>
`

const starOutlineSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="none" stroke="#f5c518" stroke-width="1.5" d="M12 2l3 7h7l-5.5 4.5 2 7.5-6.5-4.5-6.5 4.5 2-7.5L2 9h7z"/></svg>
`

const playSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><circle cx="12" cy="12" r="11" fill="#e50914"/><path fill="#fff" d="M10 8l6 4-6 4z"/></svg>
`

const logoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><rect width="32" height="32" rx="6" fill="#e50914"/></svg>
`

const backgroundSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 9"><rect width="16" height="9" fill="#222"/></svg>
`

const baseCSS = `:root {
  --sub-color: #9c9c9c;
}

body {
  margin: 0;
  font-family: system-ui, sans-serif;
  background-size: cover;
}

.body-app {
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  justify-content: space-between;
}

.main {
  max-width: 40rem;
  padding: 2rem;
}

.main-description,
.card-subtitle {
  color: var(--sub-color);
}

.star {
  width: 1rem;
}
`

// minimalTemplate returns the minimal template.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A single hero section and the default icons",
		Files: map[string]string{
			"marquee.json": `{
  "page": "movie.yaml",
  "assets": {
    "stylesheets": ["css/style.css"]
  },
  "dev": {
    "port": 3000
  },
  "build": {
    "output": "dist"
  }
}
`,
			"movie.yaml": `title: {{printf "%q" .Title}}
main:
  rating: 7
{{- if .Description}}
  description: {{printf "%q" .Description}}
{{- end}}
`,
			"static/css/style.css":  baseCSS,
			"static/img/star.svg":   starSVG,
			"static/img/star-o.svg": starOutlineSVG,
			"static/img/play.svg":   playSVG,
		},
	}
}

// fullTemplate returns the full template with every section, a host
// template and Markdown descriptions.
func fullTemplate() *Template {
	return &Template{
		Name:        "full",
		Description: "Header, hero, carousel and footer mounted into a custom host page",
		Files: map[string]string{
			"marquee.json": `{
  "page": "movie.yaml",
  "mount": {
    "selector": "#root",
    "template": "index.html"
  },
  "assets": {
    "stylesheets": ["css/style.css"]
  },
  "content": {
    "markdown": true
  },
  "dev": {
    "port": 3000
  },
  "build": {
    "output": "dist"
  },
  "publish": {
    "prefix": "promo"
  }
}
`,
			"index.html": `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{html .Title}}</title>
</head>
<body>
  <div id="root"></div>
</body>
</html>
`,
			"movie.yaml": `title: {{printf "%q" .Title}}
background: img/background.svg
favicon: img/logo.svg
fontColor: "#ffffff"
backgroundColor: "#141414"
subColor: "#9c9c9c"
header:
  logo: img/logo.svg
  menu:
    - title: Episodes
      link: "#episodes"
    - title: Cast
      link: "#cast"
  social:
    - title: Twitter
      link: https://twitter.com
      image: img/logo.svg
main:
  genre: Drama
  rating: 8
  description: {{if .Description}}{{printf "%q" .Description}}{{else}}"A **new** season."{{end}}
  trailer: https://www.youtube.com/
  slider:
    - img: img/background.svg
      title: Episode 1
      subtitle: The Beginning
    - img: img/background.svg
      title: Episode 2
      subtitle: The Middle
footer:
  copyright: {{printf "%q" (printf "© %s" .Title)}}
  menu:
    - title: Privacy
      link: /privacy
`,
			"static/css/style.css":      baseCSS,
			"static/img/logo.svg":       logoSVG,
			"static/img/background.svg": backgroundSVG,
			"static/img/star.svg":       starSVG,
			"static/img/star-o.svg":     starOutlineSVG,
			"static/img/play.svg":       playSVG,
		},
	}
}
