// SPDX-License-Identifier: MPL-2.0

package webjar

import (
	"bytes"
	"encoding/json"
)

type (
	// PathMap maps module names to their ordered candidate URL lists.
	// Insertion order of names is preserved; setting an existing name
	// replaces its URLs without changing its position.
	PathMap struct {
		names []string
		urls  map[string][]string
	}

	// ModuleConfig is the canonical per-package loader configuration.
	// It behaves like a JSON object whose top-level field order is the
	// insertion order. The "paths" field holds a *PathMap; every other
	// field is an opaque pass-through value from the source descriptor.
	ModuleConfig struct {
		keys   []string
		fields map[string]any
	}
)

// NewPathMap returns an empty PathMap.
func NewPathMap() *PathMap {
	return &PathMap{urls: make(map[string][]string)}
}

// Set stores the candidate URLs for a module name.
func (p *PathMap) Set(name string, urls []string) {
	if _, ok := p.urls[name]; !ok {
		p.names = append(p.names, name)
	}
	p.urls[name] = urls
}

// Get returns the candidate URLs for a module name.
func (p *PathMap) Get(name string) ([]string, bool) {
	urls, ok := p.urls[name]
	return urls, ok
}

// Names returns the module names in insertion order.
func (p *PathMap) Names() []string {
	return p.names
}

// Len returns the number of module names.
func (p *PathMap) Len() int {
	return len(p.names)
}

// MarshalJSON writes the map as a JSON object in insertion order.
func (p *PathMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.urls[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewModuleConfig returns an empty ModuleConfig.
func NewModuleConfig() *ModuleConfig {
	return &ModuleConfig{fields: make(map[string]any)}
}

// Set stores a top-level field, preserving first-insertion order.
func (c *ModuleConfig) Set(key string, value any) {
	if _, ok := c.fields[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.fields[key] = value
}

// Get returns a top-level field value.
func (c *ModuleConfig) Get(key string) (any, bool) {
	v, ok := c.fields[key]
	return v, ok
}

// Keys returns the top-level field names in insertion order.
func (c *ModuleConfig) Keys() []string {
	return c.keys
}

// Paths returns the "paths" field, or nil when absent.
func (c *ModuleConfig) Paths() *PathMap {
	if v, ok := c.fields["paths"]; ok {
		if p, ok := v.(*PathMap); ok {
			return p
		}
	}
	return nil
}

// Empty reports whether the config carries zero entries across all of its
// substructures. An empty config signals "no usable metadata" and must be
// treated as absent by consumers, never serialized as an empty object.
func (c *ModuleConfig) Empty() bool {
	for _, key := range c.keys {
		switch v := c.fields[key].(type) {
		case *PathMap:
			if v.Len() > 0 {
				return false
			}
		case []any:
			if len(v) > 0 {
				return false
			}
		case map[string]any:
			if len(v) > 0 {
				return false
			}
		case nil:
			// a null field is not an entry
		default:
			return false
		}
	}
	return true
}

// MarshalJSON writes the config as a JSON object in insertion order.
func (c *ModuleConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(c.fields[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
