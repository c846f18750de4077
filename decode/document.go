// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: decode/document.go
// Summary: Builds Values from JSON, YAML and generic Go data.

package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by ReadFile for unknown file extensions.
var ErrUnsupportedFormat = errors.New("decode: unsupported document format")

// ParseJSON parses a single JSON document. Numbers keep their literal text.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("decode: parse json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("decode: parse json: trailing data after document")
	}
	return FromAny(raw)
}

// ParseYAML parses a single YAML document. Anchors and aliases are resolved;
// merge keys ("<<") copy fields the mapping does not set itself.
// An empty document is null.
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, fmt.Errorf("decode: parse yaml: %w", err)
	}
	if doc.Kind == 0 {
		return Null(), nil
	}
	return fromYAML(&doc, 0)
}

// ReadFile loads a .json, .yaml or .yml document from disk.
func ReadFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// maxYAMLDepth bounds alias expansion so self-referencing anchors fail
// instead of recursing forever.
const maxYAMLDepth = 256

func fromYAML(n *yaml.Node, depth int) (Value, error) {
	if depth > maxYAMLDepth {
		return Value{}, fmt.Errorf("decode: yaml nesting too deep at line %d", n.Line)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAML(n.Content[0], depth+1)
	case yaml.AliasNode:
		return fromYAML(n.Alias, depth+1)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAML(c, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Array(items...), nil
	case yaml.MappingNode:
		return fromYAMLMapping(n, depth)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	}
	return Value{}, fmt.Errorf("decode: unexpected yaml node kind %d at line %d", n.Kind, n.Line)
}

func fromYAMLMapping(n *yaml.Node, depth int) (Value, error) {
	fields := make(map[string]Value, len(n.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.ShortTag() == "!!merge" {
			merges = append(merges, val)
			continue
		}
		if key.Kind != yaml.ScalarNode {
			return Value{}, fmt.Errorf("decode: non-scalar yaml key at line %d", key.Line)
		}
		v, err := fromYAML(val, depth+1)
		if err != nil {
			return Value{}, err
		}
		fields[key.Value] = v
	}

	for _, m := range merges {
		src, err := fromYAML(m, depth+1)
		if err != nil {
			return Value{}, err
		}
		var sources []Value
		switch src.kind {
		case KindObject:
			sources = []Value{src}
		case KindArray:
			sources = src.arr
		default:
			return Value{}, fmt.Errorf("decode: yaml merge value must be a mapping at line %d", m.Line)
		}
		for _, s := range sources {
			for k, v := range s.obj {
				if _, ok := fields[k]; !ok {
					fields[k] = v
				}
			}
		}
	}
	return Object(fields), nil
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("decode: yaml bool at line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return Value{}, fmt.Errorf("decode: yaml int at line %d: %w", n.Line, err)
		}
		return Uint(u), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("decode: yaml float at line %d: %w", n.Line, err)
		}
		return Float(f), nil
	}
	return String(n.Value), nil
}

// FromAny converts generic Go data (as produced by encoding/json,
// yaml.v3 or hand-built maps) to a Value.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case json.Number:
		return Number(v.String())
	case float64:
		return Float(v), nil
	case float32:
		return Value{kind: KindNumber, text: strconv.FormatFloat(float64(v), 'g', -1, 32)}, nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(uint64(v)), nil
	case uint8:
		return Uint(uint64(v)), nil
	case uint16:
		return Uint(uint64(v)), nil
	case uint32:
		return Uint(uint64(v)), nil
	case uint64:
		return Uint(v), nil
	case []any:
		items := make([]Value, len(v))
		for i, item := range v {
			iv, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = iv
		}
		return Array(items...), nil
	case []map[string]any:
		items := make([]Value, len(v))
		for i, item := range v {
			iv, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = iv
		}
		return Array(items...), nil
	case map[string]any:
		fields := make(map[string]Value, len(v))
		for k, item := range v {
			iv, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			fields[k] = iv
		}
		return Object(fields), nil
	case map[any]any:
		fields := make(map[string]Value, len(v))
		for k, item := range v {
			iv, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("%v: %w", k, err)
			}
			fields[fmt.Sprint(k)] = iv
		}
		return Object(fields), nil
	}
	return fromReflect(reflect.ValueOf(x))
}

// fromReflect handles named types declared by callers: maps with string
// keys, slices and scalar kinds such as `type level int`.
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		fields := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			iv, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", iter.Key().String(), err)
			}
			fields[iter.Key().String()] = iv
		}
		return Object(fields), nil
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			iv, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = iv
		}
		return Array(items...), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), nil
	case reflect.Float32:
		return Value{kind: KindNumber, text: strconv.FormatFloat(rv.Float(), 'g', -1, 32)}, nil
	case reflect.Float64:
		return Float(rv.Float()), nil
	}
	return Value{}, fmt.Errorf("decode: unsupported Go type %s", rv.Type())
}

// MustFromAny is FromAny for literals in tests and defaults. It panics on
// unsupported types.
func MustFromAny(x any) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}

// PrettyJSON renders x as indented JSON without HTML escaping. Values that
// cannot be encoded yield "". A Value is rendered through Interface.
func PrettyJSON(x any) string {
	if v, ok := x.(Value); ok {
		x = v.Interface()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(x); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
