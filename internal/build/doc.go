// Package build produces the static site for a marquee project.
//
// The pipeline:
//   - Load the page config (YAML or JSON)
//   - Compose the landing page
//   - Mount it into the host template, or render the built-in one
//   - Copy the static directory
//   - Write the client runtime
//
// # Usage
//
//	builder := build.New(cfg, build.Options{Clean: true})
//	result, err := builder.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Built %s in %s\n", result.Index, result.Duration)
//
// # Output Structure
//
//	dist/
//	├── index.html
//	├── _marquee/
//	│   └── marquee.js     # Client runtime
//	├── css/               # Copied from static/
//	└── img/
package build
