// Package landing builds movie promo landing pages.
//
// Builders are pure functions from configuration to vdom trees:
//
//	header := landing.Header(cfg.Title, cfg.Header)
//	main := landing.Main(cfg.Title, cfg.Main)
//	footer := landing.Footer(cfg.Footer)
//
// Each returns nil when its configuration is absent. Compose runs them in
// document order and resolves the page-level settings (title, favicon,
// colors, background) into a Page that can be attached to a document:
//
//	page := landing.Compose(cfg, landing.WithAssets(assets))
//	page.Attach(root)
//
// Interactive parts (menu toggle, carousel) are emitted as hooks and bound
// by the client runtime.
package landing
