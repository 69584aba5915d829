// Package fieldspec loads declarative text-field definitions from YAML/JSON
// files or OpenAPI component schemas and turns them into field.Config values.
package fieldspec
