// Package templates provides project scaffolding templates.
//
// This package contains the starter projects written by marquee init. Each
// template is a complete project: marquee.json, a page config, a stylesheet
// and the stock rating and play icons.
//
// # Available Templates
//
//   - minimal: A single hero section and the default icons
//   - full: Every section, a host template and Markdown descriptions
//
// # Usage
//
//	tmpl, err := templates.Get("full")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(projectDir, templates.Config{Title: "The Witcher"}); err != nil {
//	    return err
//	}
//
// # Template Variables
//
// Files are text/template sources executed with Config:
//
//	{{.Title}}        - Movie title
//	{{.Description}}  - Hero description
package templates
