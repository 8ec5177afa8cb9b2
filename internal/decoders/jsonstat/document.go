package jsonstat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// dataset is the subset of a JSON-stat dataset the decoder reads.
// Version 2.0 keeps id and size at the top level; 1.x keeps them inside
// the dimension object.
type dataset struct {
	Class     string                     `json:"class"`
	Label     string                     `json:"label"`
	ID        []string                   `json:"id"`
	Size      []int                      `json:"size"`
	Dimension map[string]json.RawMessage `json:"dimension"`
	Value     json.RawMessage            `json:"value"`
}

type dimension struct {
	Label    string   `json:"label"`
	Category category `json:"category"`
}

type category struct {
	Index json.RawMessage `json:"index"`
	Label json.RawMessage `json:"label"`
}

// axis is a decoded dimension: its column name and its category labels in order.
type axis struct {
	name   string
	labels []string
}

// parse locates the dataset in a document. A bundle yields its first dataset.
func parse(content []byte) (*dataset, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(content, &top); err != nil {
		return nil, fmt.Errorf("not a JSON object: %w", err)
	}

	if _, ok := top["dimension"]; ok {
		return decodeDataset(content)
	}

	keys, err := orderedKeys(content)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		var probe struct {
			Dimension json.RawMessage `json:"dimension"`
		}
		if json.Unmarshal(top[k], &probe) == nil && len(probe.Dimension) > 0 {
			return decodeDataset(top[k])
		}
	}
	return nil, fmt.Errorf("no dataset found")
}

func decodeDataset(content []byte) (*dataset, error) {
	var ds dataset
	if err := json.Unmarshal(content, &ds); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	// 1.x: id, size and role live inside the dimension object.
	if len(ds.ID) == 0 {
		if raw, ok := ds.Dimension["id"]; ok {
			if err := json.Unmarshal(raw, &ds.ID); err != nil {
				return nil, fmt.Errorf("invalid dimension.id: %w", err)
			}
		}
		if raw, ok := ds.Dimension["size"]; ok {
			if err := json.Unmarshal(raw, &ds.Size); err != nil {
				return nil, fmt.Errorf("invalid dimension.size: %w", err)
			}
		}
	}
	if len(ds.ID) == 0 {
		return nil, fmt.Errorf("dataset has no dimension ids")
	}
	if len(ds.ID) != len(ds.Size) {
		return nil, fmt.Errorf("dataset has %d ids but %d sizes", len(ds.ID), len(ds.Size))
	}
	return &ds, nil
}

// axes decodes every dimension in id order.
func (ds *dataset) axes() ([]axis, error) {
	out := make([]axis, len(ds.ID))
	for i, id := range ds.ID {
		raw, ok := ds.Dimension[id]
		if !ok {
			return nil, fmt.Errorf("dimension %q is missing", id)
		}
		var dim dimension
		if err := json.Unmarshal(raw, &dim); err != nil {
			return nil, fmt.Errorf("dimension %q: %w", id, err)
		}

		ids, err := dim.Category.order()
		if err != nil {
			return nil, fmt.Errorf("dimension %q: %w", id, err)
		}
		if len(ids) != ds.Size[i] {
			return nil, fmt.Errorf("dimension %q has %d categories but size %d", id, len(ids), ds.Size[i])
		}

		labels, err := dim.Category.labels()
		if err != nil {
			return nil, fmt.Errorf("dimension %q: %w", id, err)
		}

		name := dim.Label
		if name == "" {
			name = id
		}
		a := axis{name: name, labels: make([]string, len(ids))}
		for j, cid := range ids {
			if l, ok := labels[cid]; ok && l != "" {
				a.labels[j] = l
			} else {
				a.labels[j] = cid
			}
		}
		out[i] = a
	}
	return out, nil
}

// order returns category ids by position.
func (c category) order() ([]string, error) {
	if len(c.Index) == 0 {
		if len(c.Label) == 0 {
			return nil, fmt.Errorf("category has neither index nor label")
		}
		return orderedKeys(c.Label)
	}

	if bytes.HasPrefix(bytes.TrimSpace(c.Index), []byte("[")) {
		var ids []string
		if err := json.Unmarshal(c.Index, &ids); err != nil {
			return nil, fmt.Errorf("invalid category.index: %w", err)
		}
		return ids, nil
	}

	var positions map[string]int
	if err := json.Unmarshal(c.Index, &positions); err != nil {
		return nil, fmt.Errorf("invalid category.index: %w", err)
	}
	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		if positions[ids[i]] != positions[ids[j]] {
			return positions[ids[i]] < positions[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids, nil
}

func (c category) labels() (map[string]string, error) {
	if len(c.Label) == 0 {
		return nil, nil
	}
	var labels map[string]string
	if err := json.Unmarshal(c.Label, &labels); err != nil {
		return nil, fmt.Errorf("invalid category.label: %w", err)
	}
	return labels, nil
}

// values returns the flat observation vector of length total.
func (ds *dataset) values(total int) ([]float64, error) {
	out := make([]float64, total)
	for i := range out {
		out[i] = math.NaN()
	}

	raw := bytes.TrimSpace(ds.Value)
	if len(raw) == 0 {
		return out, nil
	}

	if raw[0] == '[' {
		var dense []*float64
		if err := json.Unmarshal(raw, &dense); err != nil {
			return nil, fmt.Errorf("invalid value array: %w", err)
		}
		if len(dense) != total {
			return nil, fmt.Errorf("value has %d entries but dimensions describe %d", len(dense), total)
		}
		for i, v := range dense {
			if v != nil {
				out[i] = *v
			}
		}
		return out, nil
	}

	var sparse map[string]*float64
	if err := json.Unmarshal(raw, &sparse); err != nil {
		return nil, fmt.Errorf("invalid value object: %w", err)
	}
	for k, v := range sparse {
		pos, err := strconv.Atoi(k)
		if err != nil || pos < 0 || pos >= total {
			return nil, fmt.Errorf("value position %q out of range", k)
		}
		if v != nil {
			out[pos] = *v
		}
	}
	return out, nil
}

// orderedKeys returns the keys of a JSON object in document order.
func orderedKeys(content []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key")
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
