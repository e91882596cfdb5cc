// Package params implements the algorithm parameter map described in
// spec.md §6: a string-to-string map with a closed recognised
// vocabulary. Unknown keys or values are rejected with an error naming
// the offending key, never a bare error.
package params

import "github.com/VeriFIT/mata-sub001/materr"

// Algorithm selects the determinization/complement/inclusion
// implementation family.
type Algorithm string

const (
	AlgoClassical   Algorithm = "classical"
	AlgoBrzozowski  Algorithm = "brzozowski"
	AlgoNaive       Algorithm = "naive"
	AlgoAntichains  Algorithm = "antichains"
)

// Relation selects the relation computed by compute_relation.
type Relation string

const (
	RelationSimulation Relation = "simulation"
)

// Direction selects the direction of a computed relation.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// ReductionType selects the simulation-reduction variant.
type ReductionType string

const (
	ReductionAfter ReductionType = "after"
	ReductionWith  ReductionType = "with"
)

// Params is the string-to-string configuration map accepted by the
// algorithm entry points.
type Params map[string]string

var recognisedKeys = map[string]map[string]bool{
	"algorithm": {"classical": true, "brzozowski": true, "naive": true, "antichains": true},
	"minimize":  {"true": true, "false": true},
	"relation":  {"simulation": true},
	"direction": {"forward": true, "backward": true},
	"type":      {"after": true, "with": true},
}

// Validate rejects any key not in the recognised vocabulary, and any
// recognised key whose value is not one of its recognised values.
func (p Params) Validate() error {
	for k, v := range p {
		allowed, known := recognisedKeys[k]
		if !known {
			return &materr.ConfigError{Key: k}
		}
		if !allowed[v] {
			return &materr.ConfigError{Key: k, Value: v}
		}
	}
	return nil
}

// Algorithm returns the "algorithm" key, defaulting to AlgoClassical.
func (p Params) Algorithm() (Algorithm, error) {
	v, ok := p["algorithm"]
	if !ok {
		return AlgoClassical, nil
	}
	if !recognisedKeys["algorithm"][v] {
		return "", &materr.ConfigError{Key: "algorithm", Value: v}
	}
	return Algorithm(v), nil
}

// Minimize returns the "minimize" key as a bool, defaulting to false.
func (p Params) Minimize() (bool, error) {
	v, ok := p["minimize"]
	if !ok {
		return false, nil
	}
	if !recognisedKeys["minimize"][v] {
		return false, &materr.ConfigError{Key: "minimize", Value: v}
	}
	return v == "true", nil
}

// Relation returns the "relation" key.
func (p Params) Relation() (Relation, error) {
	v, ok := p["relation"]
	if !ok {
		return "", &materr.ConfigError{Key: "relation"}
	}
	if !recognisedKeys["relation"][v] {
		return "", &materr.ConfigError{Key: "relation", Value: v}
	}
	return Relation(v), nil
}

// Direction returns the "direction" key, defaulting to forward.
func (p Params) Direction() (Direction, error) {
	v, ok := p["direction"]
	if !ok {
		return DirectionForward, nil
	}
	if !recognisedKeys["direction"][v] {
		return "", &materr.ConfigError{Key: "direction", Value: v}
	}
	return Direction(v), nil
}

// Type returns the "type" key, defaulting to ReductionAfter.
func (p Params) Type() (ReductionType, error) {
	v, ok := p["type"]
	if !ok {
		return ReductionAfter, nil
	}
	if !recognisedKeys["type"][v] {
		return "", &materr.ConfigError{Key: "type", Value: v}
	}
	return ReductionType(v), nil
}
