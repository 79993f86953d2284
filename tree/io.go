// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// MarshalJSON returns the JSON encoding of the tree rooted at the given
// node, in the [Plan] format.
func MarshalJSON(n Node) ([]byte, error) {
	p, err := PlanFor(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(p)
}

// UnmarshalJSON builds the tree described by the given JSON-encoded
// [Plan].
func UnmarshalJSON(b []byte) (Node, error) {
	p := &Plan{}
	if err := json.Unmarshal(b, p); err != nil {
		return nil, errors.Wrap(err, "tree: unmarshalling JSON plan")
	}
	return p.Build()
}

// MarshalYAML returns the YAML encoding of the tree rooted at the given
// node, in the [Plan] format.
func MarshalYAML(n Node) ([]byte, error) {
	p, err := PlanFor(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(p)
}

// UnmarshalYAML builds the tree described by the given YAML-encoded
// [Plan].
func UnmarshalYAML(b []byte) (Node, error) {
	p := &Plan{}
	if err := yaml.Unmarshal(b, p); err != nil {
		return nil, errors.Wrap(err, "tree: unmarshalling YAML plan")
	}
	return p.Build()
}
