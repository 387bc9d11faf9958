// Package yaml decodes documentation payloads with gopkg.in/yaml.v3.
// JSON payloads are valid YAML and decode through the same path.
package yaml

import (
	"github.com/fwojciec/docview"
	"gopkg.in/yaml.v3"
)

// Ensure Decoder implements docview.Decoder at compile time.
var _ docview.Decoder = (*Decoder)(nil)

// Decoder turns payload text into ordered records.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses raw into a record, keeping mapping keys in source order.
// Returns EMALFORMED if raw is not valid YAML or its top level is not a
// mapping.
func (d *Decoder) Decode(raw string) (docview.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return docview.Record{}, docview.Errorf(docview.EMALFORMED, "invalid payload: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return docview.Record{}, docview.Errorf(docview.EMALFORMED, "empty payload")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return docview.Record{}, docview.Errorf(docview.EMALFORMED, "payload is not a mapping (line %d)", root.Line)
	}
	v, err := convert(root)
	if err != nil {
		return docview.Record{}, err
	}
	rec, _ := v.(docview.Record)
	return rec, nil
}

func convert(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		rec := docview.NewRecord()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			v, err := convert(val)
			if err != nil {
				return nil, err
			}
			rec.Set(key.Value, v)
		}
		return rec, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := convert(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.AliasNode:
		return convert(n.Alias)
	case yaml.ScalarNode:
		return scalar(n)
	}
	return nil, docview.Errorf(docview.EMALFORMED, "unexpected node kind %d at line %d", n.Kind, n.Line)
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, docview.Errorf(docview.EMALFORMED, "line %d: %v", n.Line, err)
		}
		return b, nil
	case "!!int":
		var i int
		if err := n.Decode(&i); err != nil {
			// Out of range integers keep their literal text.
			return n.Value, nil
		}
		return i, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return n.Value, nil
		}
		return f, nil
	}
	return n.Value, nil
}
