package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	// FieldTemplate is the default template path within TemplatesFS.
	FieldTemplate = "templates/field.tmpl"
	// StylesheetName is the stylesheet shipped in AssetsFS.
	StylesheetName = "textfield.css"
	// ScriptName is the browser runtime shipped in AssetsFS. It applies
	// data-transform and the maxlength cut on every input event.
	ScriptName = "textfield.js"
	// PartialName is the go-theme partial key that overrides FieldTemplate.
	PartialName = "forms.text-field"
)

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet and script so callers can serve it over HTTP
// or copy it into their own asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
