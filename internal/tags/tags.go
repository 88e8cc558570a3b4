package tags

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// AWS tagging limits for Bedrock resources.
const (
	maxTags     = 50
	maxKeyLen   = 128
	maxValueLen = 256
)

// Set is a flat mapping of tag keys to tag values. Keys and values are
// opaque, case-sensitive strings.
type Set map[string]string

// Parse decodes a JSON object literal into a Set and validates it.
//
// The input must be a JSON object with at least one entry, and every
// value must be a string. Keys and values must be non-empty after
// trimming and within the provider's length limits.
func Parse(s string) (Set, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("tags must be a valid JSON object: %w", err)
	}
	// A flat object followed by trailing content is not a single literal.
	if dec.More() {
		return nil, fmt.Errorf("tags must be a single JSON object")
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("tags must not be empty")
	}

	set := make(Set, len(raw))
	for k, v := range raw {
		sv, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("tag %q: value must be a string", k)
		}
		set[k] = sv
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Validate checks the set against provider tag constraints.
func (s Set) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("tags must not be empty")
	}
	if len(s) > maxTags {
		return fmt.Errorf("too many tags: %d (limit %d)", len(s), maxTags)
	}
	for k, v := range s {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("tag keys must not be blank")
		}
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("tag %q: value must not be blank", k)
		}
		if len(k) > maxKeyLen {
			return fmt.Errorf("tag key %q exceeds %d characters", k, maxKeyLen)
		}
		if len(v) > maxValueLen {
			return fmt.Errorf("tag %q: value exceeds %d characters", k, maxValueLen)
		}
	}
	return nil
}

// Matches reports whether every entry in s is present in other with an
// equal value. Comparison is case-sensitive.
func (s Set) Matches(other Set) bool {
	for k, v := range s {
		if other[k] != v {
			return false
		}
	}
	return true
}

// Keys returns the tag keys in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the set as "k=v, k=v" with sorted keys.
func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Keys() {
		parts = append(parts, fmt.Sprintf("%s=%s", k, s[k]))
	}
	return strings.Join(parts, ", ")
}
