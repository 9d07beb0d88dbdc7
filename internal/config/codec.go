package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeYAML serializes the workspace to a YAML snapshot. Reloading the
// snapshot with DecodeYAML yields a field-for-field equal workspace,
// including the order of scopes and paths in every modules mapping.
func EncodeYAML(w *Workspace) ([]byte, error) {
	data, err := yaml.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("config: encode workspace: %w", err)
	}
	return data, nil
}

// DecodeYAML reloads a workspace from a YAML snapshot produced by EncodeYAML.
func DecodeYAML(data []byte) (*Workspace, error) {
	var w Workspace
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("config: decode workspace: %w", err)
	}
	return &w, nil
}

// MarshalYAML renders the scope list as a YAML mapping whose key order
// matches the list order. A plain map would lose insertion order.
func (l ScopeList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range l {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: s.Name}
		val := &yaml.Node{Kind: yaml.SequenceNode}
		for _, p := range s.Paths {
			val.Content = append(val.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: p})
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the scope list, preserving the
// document order of its keys.
func (l *ScopeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("config: modules must be a mapping, got %v", node.Kind)
	}
	scopes := make(ScopeList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var paths []string
		if err := node.Content[i+1].Decode(&paths); err != nil {
			return fmt.Errorf("config: modules scope %q: %w", node.Content[i].Value, err)
		}
		scopes = append(scopes, Scope{Name: node.Content[i].Value, Paths: paths})
	}
	*l = scopes
	return nil
}
