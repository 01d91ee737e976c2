package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is a parsed schema file.
type File struct {
	Fields []FieldDef
}

// FieldDef is one field record as written in a schema file.
type FieldDef struct {
	Name       string
	Required   bool
	Default    any
	Transitive bool
	Type       string
	// Enum is nil when the record has no enum key, and empty for "enum: []".
	Enum []string
	// Unknown lists record keys that are not field attributes.
	Unknown []string
}

type fieldRecord struct {
	Required   bool      `yaml:"required"`
	Default    any       `yaml:"default"`
	Transitive bool      `yaml:"transitive"`
	Type       string    `yaml:"type"`
	Enum       *[]string `yaml:"enum"`
}

var recordKeys = []string{"required", "default", "transitive", "type", "enum"}

// UnmarshalYAML reads the top-level mapping keeping field order.
func (f *File) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of field names, got %v", node.Line, kindName(node.Kind))
	}

	f.Fields = make([]FieldDef, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		def, err := decodeField(keyNode.Value, valNode)
		if err != nil {
			return fmt.Errorf("line %d: field %q: %w", keyNode.Line, keyNode.Value, err)
		}

		f.Fields = append(f.Fields, def)
	}

	return nil
}

func decodeField(name string, node *yaml.Node) (FieldDef, error) {
	def := FieldDef{Name: name}

	switch node.Kind {
	case yaml.ScalarNode:
		// "name:" and "name: ~" declare a field with no attributes.
		if node.Tag == "!!null" {
			return def, nil
		}

		return def, fmt.Errorf("expected a field record, got %q", node.Value)
	case yaml.MappingNode:
	default:
		return def, fmt.Errorf("expected a field record, got %v", kindName(node.Kind))
	}

	var rec fieldRecord
	if err := node.Decode(&rec); err != nil {
		return def, err
	}

	def.Required = rec.Required
	def.Default = rec.Default
	def.Transitive = rec.Transitive
	def.Type = rec.Type

	if rec.Enum != nil {
		def.Enum = append([]string{}, *rec.Enum...)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !isRecordKey(key) {
			def.Unknown = append(def.Unknown, key)
		}
	}

	return def, nil
}

func isRecordKey(key string) bool {
	for _, k := range recordKeys {
		if k == key {
			return true
		}
	}

	return false
}

// MarshalYAML writes the fields as an ordered mapping of flow-style records.
func (f File) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, def := range f.Fields {
		rec := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}

		if def.Required {
			appendPair(rec, "required", scalar("!!bool", "true"))
		}

		if def.Default != nil {
			var val yaml.Node
			if err := val.Encode(def.Default); err != nil {
				return nil, fmt.Errorf("field %q: default: %w", def.Name, err)
			}

			appendPair(rec, "default", &val)
		}

		if def.Transitive {
			appendPair(rec, "transitive", scalar("!!bool", "true"))
		}

		if def.Type != "" {
			appendPair(rec, "type", scalar("!!str", def.Type))
		}

		if def.Enum != nil {
			seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, name := range def.Enum {
				seq.Content = append(seq.Content, scalar("!!str", name))
			}

			appendPair(rec, "enum", seq)
		}

		appendPair(root, def.Name, rec)
	}

	return root, nil
}

func scalar(tag, v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v}
}

func appendPair(m *yaml.Node, key string, val *yaml.Node) {
	m.Content = append(m.Content, scalar("!!str", key), val)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
