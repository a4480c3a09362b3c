package form

import (
	"bytes"
	"encoding/json"
)

// Payload is an insertion-ordered name to value mapping. Setting an existing
// name replaces its value in place, the way repeated form names collapse.
type Payload struct {
	keys   []string
	values map[string]string
}

func NewPayload() Payload {
	return Payload{values: map[string]string{}}
}

func (p *Payload) Set(name, value string) {
	if p.values == nil {
		p.values = map[string]string{}
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
}

func (p Payload) Get(name string) (string, bool) {
	v, ok := p.values[name]
	return v, ok
}

func (p *Payload) Delete(name string) {
	if _, ok := p.values[name]; !ok {
		return
	}
	delete(p.values, name)
	for i, k := range p.keys {
		if k == name {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

func (p Payload) Keys() []string {
	return append([]string(nil), p.keys...)
}

func (p Payload) Len() int { return len(p.keys) }

// Map returns an unordered copy.
func (p Payload) Map() map[string]string {
	m := make(map[string]string, len(p.keys))
	for _, k := range p.keys {
		m[k] = p.values[k]
	}
	return m
}

// MarshalJSON writes the fields as one JSON object in insertion order.
func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
