// Package config provides configuration parsing for marquee projects.
//
// The configuration is stored in marquee.json at the project root.
// This package handles loading, saving, and validating configuration.
// The page content itself lives in a separate YAML or JSON file named by
// "page".
//
// # Configuration File Structure
//
//	{
//	  "page": "movie.yaml",
//	  "mount": {"selector": ".app", "template": "index.html"},
//	  "static": {"dir": "static"},
//	  "assets": {
//	    "star": "img/star.svg",
//	    "stylesheets": ["css/style.css"],
//	    "scripts": ["https://unpkg.com/swiper/swiper-bundle.min.js"]
//	  },
//	  "content": {"markdown": true},
//	  "dev": {"port": 3000, "hotReload": true, "ignore": ["*.tmp"]},
//	  "build": {"output": "dist", "pretty": true},
//	  "publish": {"bucket": "witcher-promo", "prefix": "site"}
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Page:", cfg.PagePath())
package config
