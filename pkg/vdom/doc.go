// Package vdom provides the in-memory node tree marquee builds pages into.
//
// Builders produce VNode trees without touching a live document. Attaching
// a tree to a host document (package mount) and serialising it to HTML
// (package render) are separate, later steps.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments and raw HTML. Props holds attributes with their native Go
// types. Attr values are only produced by the constructors in this
// package (Href, Src, Alt, AriaLabel, StyleAttr, Hook, ...), so a
// misspelled attribute is a compile error rather than a silently ignored
// property.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), AriaLabel("Main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// or through the generic element factory:
//
//	Element("span", []string{"genre", "animated"}, Text("Drama"))
//
// # Hooks
//
// Hook hands an element to a client-side widget. The hook name and its
// JSON configuration are written as data-hook and data-hook-config.
//
// # Queries
//
// Walk, Find, FindAll, ByClass and ByTag inspect a tree in document order.
package vdom
