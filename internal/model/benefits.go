package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Benefits is the set of tracked benefits keyed by name. Iteration and JSON
// encoding follow insertion order; replacing an existing name keeps its slot.
type Benefits struct {
	order []string
	items map[string]Benefit
}

// NewBenefits returns an empty collection.
func NewBenefits(bs ...Benefit) *Benefits {
	c := &Benefits{items: make(map[string]Benefit)}
	for _, b := range bs {
		c.Set(b)
	}
	return c
}

// Len returns the number of benefits.
func (c *Benefits) Len() int {
	return len(c.order)
}

// Names returns benefit names in insertion order.
func (c *Benefits) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Get returns the benefit stored under name.
func (c *Benefits) Get(name string) (Benefit, bool) {
	b, ok := c.items[name]
	return b, ok
}

// Has reports whether name is present.
func (c *Benefits) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Set inserts b, or replaces the benefit with the same name in place.
func (c *Benefits) Set(b Benefit) {
	if c.items == nil {
		c.items = make(map[string]Benefit)
	}
	if _, ok := c.items[b.Name]; !ok {
		c.order = append(c.order, b.Name)
	}
	c.items[b.Name] = b
}

// Delete removes name and reports whether it was present.
func (c *Benefits) Delete(name string) bool {
	if _, ok := c.items[name]; !ok {
		return false
	}
	delete(c.items, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns a copy of every benefit in insertion order.
func (c *Benefits) All() []Benefit {
	out := make([]Benefit, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.items[n])
	}
	return out
}

// MarshalJSON encodes the collection as a JSON object keyed by name.
func (c *Benefits) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalPlain(name)
		if err != nil {
			return nil, err
		}
		val, err := marshalPlain(c.items[name])
		if err != nil {
			return nil, fmt.Errorf("encoding benefit %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keyed by name, keeping key order.
// Every record is validated; the first invalid one fails the decode.
func (c *Benefits) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("benefits: expected JSON object, got %v", tok)
	}

	out := NewBenefits()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("benefits: expected key, got %v", tok)
		}

		var b Benefit
		if err := dec.Decode(&b); err != nil {
			return fmt.Errorf("decoding benefit %q: %w", name, err)
		}
		b.Name = name
		if err := b.Validate(); err != nil {
			return err
		}
		out.Set(b)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = *out
	return nil
}

// marshalPlain encodes v without escaping <, > and &, which are common in
// benefit descriptions ("Dining & Travel").
func marshalPlain(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
