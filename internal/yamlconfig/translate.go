// This file contains the logic for translating the parsed YAML node tree into
// the format-agnostic model defined in the model package.

package yamlconfig

import (
	"context"
	"fmt"
	"math"

	"github.com/vk/ledgen/internal/ctxlog"
	"github.com/vk/ledgen/internal/model"
	"gopkg.in/yaml.v3"
)

// Attribute keys of the input schema. Matching is case-sensitive.
const (
	keyPriority = "Priority"
	keyAction   = "Action"
	keyDutyOn   = "DutyOn"
	keyPeriod   = "Period"
)

// translator carries per-document state through the node walk.
type translator struct {
	source string
}

// document converts the root node into a model.Document.
func (t *translator) document(ctx context.Context, root *yaml.Node) (*model.Document, error) {
	top := root
	if top.Kind == 0 {
		return nil, t.malformed(top, "document is empty")
	}
	if top.Kind == yaml.DocumentNode {
		if len(top.Content) == 0 {
			return nil, t.malformed(top, "document is empty")
		}
		top = top.Content[0]
	}
	top = resolve(top)
	if top.Kind != yaml.MappingNode {
		return nil, t.malformed(top, fmt.Sprintf("top level must be a mapping of group names, got %s", kindName(top)))
	}

	doc := &model.Document{Source: t.source}
	err := t.eachEntry(top, func(key string, keyNode, value *yaml.Node) error {
		group, err := t.group(ctx, key, keyNode, value)
		if err != nil {
			return err
		}
		doc.Groups = append(doc.Groups, group)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// group converts one top-level entry. A null value is an empty group.
func (t *translator) group(ctx context.Context, name string, keyNode, value *yaml.Node) (*model.Group, error) {
	ctx, logger := ctxlog.With(ctx, "group", name)
	logger.Debug("Translating YAML group to internal model.")

	g := &model.Group{Name: name, Line: keyNode.Line}
	if isNull(value) {
		logger.Debug("Group value is null, treating as empty group.")
		return g, nil
	}
	if value.Kind != yaml.MappingNode {
		return nil, t.malformed(value, fmt.Sprintf("group %q must be a mapping or null, got %s", name, kindName(value)))
	}

	err := t.eachEntry(value, func(key string, keyNode, v *yaml.Node) error {
		// The group-wide priority shares the mapping with the indicators but
		// is never an indicator itself.
		if key == keyPriority {
			// The key alone selects group-wide mode, so it needs a value.
			if isNull(v) {
				return t.malformed(v, fmt.Sprintf("group %q: Priority must not be null", name))
			}
			p, err := t.intAttr(v, keyPriority, "group "+quote(name))
			if err != nil {
				return err
			}
			g.Priority = p
			logger.Debug("Group-wide priority detected.", "priority", *p)
			return nil
		}
		ind, err := t.indicator(ctx, name, key, keyNode, v)
		if err != nil {
			return err
		}
		g.Indicators = append(g.Indicators, ind)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// indicator converts one indicator entry of a group. A null value keeps every
// attribute at its default.
func (t *translator) indicator(ctx context.Context, group, name string, keyNode, value *yaml.Node) (*model.Indicator, error) {
	logger := ctxlog.FromContext(ctx).With("indicator", name)
	where := fmt.Sprintf("indicator %q in group %q", name, group)

	ind := model.NewIndicator(name)
	ind.Line = keyNode.Line
	if isNull(value) {
		return ind, nil
	}
	if value.Kind != yaml.MappingNode {
		return nil, t.malformed(value, fmt.Sprintf("%s must be a mapping or null, got %s", where, kindName(value)))
	}

	err := t.eachEntry(value, func(key string, _, v *yaml.Node) error {
		switch key {
		case keyAction:
			action, err := t.stringAttr(v, key, where)
			if err != nil {
				return err
			}
			ind.Action = action
		case keyDutyOn:
			duty, set, err := t.rangeAttr(v, key, where, 0, 100)
			if err != nil {
				return err
			}
			if set {
				ind.DutyOn = uint8(duty)
			}
		case keyPeriod:
			period, set, err := t.rangeAttr(v, key, where, 0, math.MaxUint16)
			if err != nil {
				return err
			}
			if set {
				ind.Period = uint16(period)
			}
		case keyPriority:
			p, err := t.intAttr(v, key, where)
			if err != nil {
				return err
			}
			ind.Priority = p
		default:
			logger.Warn("Ignoring unknown indicator attribute.", "attribute", key, "line", v.Line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ind, nil
}

// eachEntry walks a mapping node in source order. Keys must be unique scalars.
func (t *translator) eachEntry(m *yaml.Node, fn func(key string, keyNode, value *yaml.Node) error) error {
	seen := make(map[string]int, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		keyNode := resolve(m.Content[i])
		value := resolve(m.Content[i+1])

		if keyNode.Kind != yaml.ScalarNode {
			return t.malformed(keyNode, fmt.Sprintf("mapping keys must be scalars, got %s", kindName(keyNode)))
		}
		if keyNode.ShortTag() == "!!merge" {
			return t.malformed(keyNode, "merge keys are not supported")
		}
		key := keyNode.Value
		if first, dup := seen[key]; dup {
			return t.malformed(keyNode, fmt.Sprintf("duplicate key %q (first defined on line %d)", key, first))
		}
		seen[key] = keyNode.Line

		if err := fn(key, keyNode, value); err != nil {
			return err
		}
	}
	return nil
}

func (t *translator) malformed(n *yaml.Node, reason string) *model.MalformedInputError {
	return &model.MalformedInputError{Source: t.source, Line: n.Line, Column: n.Column, Reason: reason}
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "a document"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		return "a scalar (" + n.ShortTag() + ")"
	case yaml.AliasNode:
		return "an alias"
	}
	return "nothing"
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
