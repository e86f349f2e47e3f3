// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed lookups over the ui settings sections.

package config

import (
	"strconv"
	"strings"
)

// Section returns the named section or nil if missing. Sections decoded from
// JSON arrive as plain maps and are accepted as well.
func (c Config) Section(name string) Section {
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults fills the keys of defaults missing from the named section,
// creating the section when needed.
func (c Config) RegisterDefaults(name string, defaults Section) {
	if c == nil || len(defaults) == 0 {
		return
	}
	section := c.Section(name)
	if section == nil {
		section = make(Section, len(defaults))
		c[name] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) value(name, key string) (any, bool) {
	v, ok := c.Section(name)[key]
	return v, ok
}

// number reads numeric settings, including ones hand-edited as strings.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// GetString returns the string at name.key, or def.
func (c Config) GetString(name, key, def string) string {
	if v, ok := c.value(name, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// GetFloat returns the number at name.key, or def.
func (c Config) GetFloat(name, key string, def float64) float64 {
	v, _ := c.value(name, key)
	if f, ok := number(v); ok {
		return f
	}
	return def
}

// GetInt is GetFloat truncated toward zero.
func (c Config) GetInt(name, key string, def int) int {
	v, _ := c.value(name, key)
	if f, ok := number(v); ok {
		return int(f)
	}
	return def
}

// GetBool accepts booleans, "true"/"false" style strings and numbers (non-zero is true).
func (c Config) GetBool(name, key string, def bool) bool {
	v, ok := c.value(name, key)
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	if s, ok := v.(string); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b
		}
		return def
	}
	if f, ok := number(v); ok {
		return f != 0
	}
	return def
}

// GetStringSlice accepts a list of strings or a comma separated string.
// Lists holding anything other than strings yield def.
func (c Config) GetStringSlice(name, key string, def []string) []string {
	v, _ := c.value(name, key)
	switch list := v.(type) {
	case []string:
		return list
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return def
			}
			out = append(out, s)
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(list, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return def
}
