package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is a full set of stat values indexed by StatID.
// It is an array, so assignment copies it; holders never share storage.
type Snapshot [StatCount]float64

// Get returns the value of id. Invalid ids read as 0.
func (s Snapshot) Get(id StatID) float64 {
	if !id.Valid() {
		return 0
	}
	return s[id]
}

// With returns a copy of s with id set to v.
func (s Snapshot) With(id StatID, v float64) Snapshot {
	if id.Valid() {
		s[id] = v
	}
	return s
}

// SnapshotFromMap builds a Snapshot from stat keys. Unknown keys fail with ErrInvalidStatKey.
func SnapshotFromMap(m map[string]float64) (Snapshot, error) {
	var s Snapshot
	for key, v := range m {
		id, err := ParseStatID(key)
		if err != nil {
			return Snapshot{}, err
		}
		s[id] = v
	}
	return s, nil
}

// Map returns the snapshot keyed by canonical stat key.
func (s Snapshot) Map() map[string]float64 {
	m := make(map[string]float64, StatCount)
	for id, v := range s {
		m[statKeys[id]] = v
	}
	return m
}

// UnmarshalYAML decodes a mapping of stat keys to numbers.
func (s *Snapshot) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]float64
	if err := node.Decode(&m); err != nil {
		return fmt.Errorf("decoding stats: %w", err)
	}
	decoded, err := SnapshotFromMap(m)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalYAML encodes non-zero stats in declaration order.
func (s Snapshot) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range AllStats() {
		if s[id] == 0 {
			continue
		}
		var val yaml.Node
		if err := val.Encode(s[id]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: statKeys[id]},
			&val,
		)
	}
	return node, nil
}
