// Package batch evaluates progression for a roster of creature records and
// renders the result as a text report.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/expgrowth/internal/data"
)

// Roster is the YAML input: a list of (name, curve, experience) records.
type Roster struct {
	Creatures []Creature `yaml:"creatures"`
}

// Creature is one record supplied by the creature data model.
type Creature struct {
	Name       string   `yaml:"name"`
	Curve      CurveRef `yaml:"curve"`
	Experience uint32   `yaml:"experience"`
}

// CurveRef is a growth curve given either by number or by name in YAML.
// Unknown curves are kept (Valid reports false) so that a single bad
// record is reported instead of failing the whole decode. A missing or
// null curve is never treated as curve 0.
type CurveRef struct {
	ID  data.GrowthCurveID
	Raw string
	Err error

	set bool
}

// NewCurveRef returns a resolved reference to id.
func NewCurveRef(id data.GrowthCurveID) CurveRef {
	ref := CurveRef{ID: id, Raw: id.String(), set: true}
	if !id.Valid() {
		ref.Err = fmt.Errorf("%w: %d", data.ErrInvalidCurveIdentifier, uint8(id))
	}
	return ref
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *CurveRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: curve must be a scalar", node.Line)
	}
	c.set = true
	c.Raw = node.Value
	c.ID, c.Err = data.ParseGrowthCurveID(node.Value)
	return nil
}

// Valid reports whether the reference was given and resolved to a known curve.
func (c CurveRef) Valid() bool {
	return c.set && c.Err == nil
}

// Reason returns why the reference is not valid, or nil.
func (c CurveRef) Reason() error {
	if !c.set {
		return fmt.Errorf("%w: curve is missing", data.ErrInvalidCurveIdentifier)
	}
	return c.Err
}

// DecodeRoster reads a roster from r.
func DecodeRoster(r io.Reader) (Roster, error) {
	var roster Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&roster); err != nil {
		if errors.Is(err, io.EOF) {
			return Roster{}, nil
		}
		return Roster{}, fmt.Errorf("decoding roster: %w", err)
	}
	return roster, nil
}

// LoadRoster reads a roster from a YAML file.
func LoadRoster(path string) (Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Roster{}, fmt.Errorf("opening roster %s: %w", path, err)
	}
	defer f.Close()

	roster, err := DecodeRoster(f)
	if err != nil {
		return Roster{}, fmt.Errorf("roster %s: %w", path, err)
	}
	return roster, nil
}
