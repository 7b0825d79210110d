// SPDX-License-Identifier: MIT
// Package: subdiv/scheme
//
// crease.go — vertex crease rules and sharpness arithmetic.

package scheme

// Rule is the crease rule of a vertex. Values are single bits so the rules of
// several vertices can be OR'ed into one composite value.
type Rule uint8

const (
	RuleUnknown Rule = 0
	RuleSmooth  Rule = 1 << 0
	RuleDart    Rule = 1 << 1
	RuleCrease  Rule = 1 << 2
	RuleCorner  Rule = 1 << 3
)

// String renders a rule or a composite of rules, e.g. "smooth|crease".
func (r Rule) String() string {
	if r == RuleUnknown {
		return "unknown"
	}
	names := []struct {
		bit  Rule
		name string
	}{{RuleSmooth, "smooth"}, {RuleDart, "dart"}, {RuleCrease, "crease"}, {RuleCorner, "corner"}}

	out := ""
	for _, n := range names {
		if r&n.bit == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	return out
}

// Sharpness bounds.
const (
	SharpnessSmooth   float32 = 0
	SharpnessInfinite float32 = 10
)

// IsSmooth reports s <= 0.
func IsSmooth(s float32) bool { return s <= SharpnessSmooth }

// IsSharp reports s > 0.
func IsSharp(s float32) bool { return s > SharpnessSmooth }

// IsInfinite reports s >= SharpnessInfinite.
func IsInfinite(s float32) bool { return s >= SharpnessInfinite }

// IsSemiSharp reports 0 < s < SharpnessInfinite.
func IsSemiSharp(s float32) bool { return s > SharpnessSmooth && s < SharpnessInfinite }

// DetermineVertexRule derives the crease rule of a vertex from its own
// sharpness and the number of sharp edges incident to it.
func DetermineVertexRule(vertexSharpness float32, sharpEdgeCount int) Rule {
	if IsSharp(vertexSharpness) {
		return RuleCorner
	}
	switch sharpEdgeCount {
	case 0:
		return RuleSmooth
	case 1:
		return RuleDart
	case 2:
		return RuleCrease
	default:
		return RuleCorner
	}
}

// SubdivideUniformSharpness decays a sharpness value by one level.
// Infinite values stay infinite and anything at or below one becomes smooth.
func SubdivideUniformSharpness(s float32) float32 {
	if IsInfinite(s) {
		return SharpnessInfinite
	}
	if s <= 1 {
		return SharpnessSmooth
	}
	return s - 1
}

// SubdivideEdgeSharpnessAtVertex decays the sharpness of the child edge of a
// parent edge at one of its end vertices. others holds the sharpness of the
// remaining edges incident to that vertex.
//
// With CreasingUniform this equals SubdivideUniformSharpness. With
// CreasingChaikin the edge is blended 3:1 with the average of the other
// semi-sharp edges at the vertex before decaying.
func SubdivideEdgeSharpnessAtVertex(edge float32, others []float32, method CreasingMethod) float32 {
	if method != CreasingChaikin || !IsSemiSharp(edge) {
		return SubdivideUniformSharpness(edge)
	}

	var sum float32
	count := 0
	for _, s := range others {
		if IsSemiSharp(s) {
			sum += s
			count++
		}
	}
	if count == 0 {
		return SubdivideUniformSharpness(edge)
	}
	return SubdivideUniformSharpness(0.75*edge + 0.25*(sum/float32(count)))
}
