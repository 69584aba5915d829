// Package template defines the template rendering seam used by markup
// renderers, with a pongo2-backed implementation in the gotemplate
// subpackage.
package template
