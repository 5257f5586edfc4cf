package yamlconfig

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"
)

// scalarValue converts a YAML scalar into a cty.Value using the YAML core
// schema resolution of its tag. Null scalars become a null value.
func scalarValue(n *yaml.Node) (cty.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return cty.NilVal, fmt.Errorf("expected a scalar, got %s", kindName(n))
	}

	var raw any
	if err := n.Decode(&raw); err != nil {
		return cty.NilVal, err
	}

	switch v := raw.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case uint64:
		return cty.NumberUIntVal(v), nil
	case float64:
		if math.IsNaN(v) {
			return cty.NilVal, fmt.Errorf("NaN is not a valid value")
		}
		return cty.NumberFloatVal(v), nil
	default:
		// Timestamps and other resolved tags are kept as their literal text.
		return cty.StringVal(n.Value), nil
	}
}

// numberAttr coerces n into the Go integer pointed to by target. It reports
// false when the value is null, leaving target untouched.
func (t *translator) numberAttr(n *yaml.Node, key, where string, target any) (bool, error) {
	val, err := scalarValue(n)
	if err != nil {
		return false, t.attrError(n, key, where, err)
	}
	if val.IsNull() {
		return false, nil
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return false, t.attrError(n, key, where, fmt.Errorf("a number is required, got %s", val.Type().FriendlyName()))
	}
	// gocty truncates fractions for unsigned targets.
	if !num.AsBigFloat().IsInt() {
		return false, t.attrError(n, key, where, fmt.Errorf("a whole number is required, got %s", n.Value))
	}
	if err := gocty.FromCtyValue(num, target); err != nil {
		return false, t.attrError(n, key, where, err)
	}
	return true, nil
}

// rangeAttr coerces an integer attribute and checks it against [lo, hi].
// It reports false when the value is null.
func (t *translator) rangeAttr(n *yaml.Node, key, where string, lo, hi int64) (int64, bool, error) {
	var v int64
	set, err := t.numberAttr(n, key, where, &v)
	if err != nil || !set {
		return 0, false, err
	}
	if v < lo || v > hi {
		return 0, false, t.attrError(n, key, where, fmt.Errorf("must be between %d and %d, got %d", lo, hi, v))
	}
	return v, true, nil
}

// intAttr coerces a priority value. Nil means the attribute was null.
func (t *translator) intAttr(n *yaml.Node, key, where string) (*int, error) {
	var v int
	set, err := t.numberAttr(n, key, where, &v)
	if err != nil || !set {
		return nil, err
	}
	return &v, nil
}

// stringAttr coerces an action value. Null yields the empty string.
func (t *translator) stringAttr(n *yaml.Node, key, where string) (string, error) {
	val, err := scalarValue(n)
	if err != nil {
		return "", t.attrError(n, key, where, err)
	}
	if val.IsNull() {
		return "", nil
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", t.attrError(n, key, where, err)
	}
	var s string
	if err := gocty.FromCtyValue(str, &s); err != nil {
		return "", t.attrError(n, key, where, err)
	}
	return s, nil
}

func (t *translator) attrError(n *yaml.Node, key, where string, err error) error {
	m := t.malformed(n, fmt.Sprintf("%s: invalid %s: %v", where, key, err))
	m.Err = err
	return m
}
