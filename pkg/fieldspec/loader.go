package fieldspec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set holds loaded definitions keyed by id, preserving load order.
type Set struct {
	definitions map[string]Definition
	order       []string
}

type documentFile struct {
	Fields []definitionFile `json:"fields" yaml:"fields"`
}

// Parse decodes one JSON or YAML document. Definitions may omit their id, in
// which case the field generates one.
func Parse(data []byte, source string) ([]Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("fieldspec: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = documentFile{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("fieldspec: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}

	out := make([]Definition, 0, len(doc.Fields))
	for _, raw := range doc.Fields {
		raw.ID = strings.TrimSpace(raw.ID)
		def, err := raw.normalise(source)
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file. Definitions
// loaded this way must carry a unique id. A nil fsys yields an empty set.
func LoadFS(fsys fs.FS) (*Set, error) {
	set := &Set{definitions: make(map[string]Definition)}
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldspec: read %s: %w", path, err)
		}
		defs, err := Parse(data, path)
		if err != nil {
			return err
		}
		for _, def := range defs {
			if err := set.add(def); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Set) add(def Definition) error {
	if def.ID == "" {
		return fmt.Errorf("fieldspec: file %s defines a field without an id", def.Source)
	}
	if existing, ok := s.definitions[def.ID]; ok {
		return fmt.Errorf("fieldspec: duplicate field %q (files %s and %s)", def.ID, existing.Source, def.Source)
	}
	s.definitions[def.ID] = def
	s.order = append(s.order, def.ID)
	return nil
}

// Get returns the definition registered under id.
func (s *Set) Get(id string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.definitions[id]
	return def, ok
}

// List returns the definitions in load order.
func (s *Set) List() []Definition {
	if s == nil {
		return nil
	}
	out := make([]Definition, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.definitions[id])
	}
	return out
}

// Empty reports whether the set holds any definitions.
func (s *Set) Empty() bool {
	return s == nil || len(s.definitions) == 0
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
