// Package render converts VNode trees into HTML.
//
// Text and attribute values are escaped, void elements have no closing tag,
// boolean attributes render as bare names and attributes are written in
// sorted order so output is deterministic.
//
//	renderer := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := renderer.RenderToString(node)
//
// RenderPage wraps a tree in a complete HTML document:
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "Sign up",
//	    Body:  formNode,
//	})
//
// Raw HTML can be inserted using KindRaw nodes, but should only be
// used with trusted content.
package render
