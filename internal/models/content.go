package models

import (
	"strconv"
	"strings"
)

// ContentSeparator joins the two halves of a composite content string.
// Only the first occurrence splits; a label containing ':' is not escaped.
const ContentSeparator = ":"

const (
	ProgressMin  = 0
	ProgressMax  = 100
	ProgressStep = 10
)

// splitComposite splits on the first separator. A missing separator yields an
// empty second half.
func splitComposite(content string) (string, string) {
	head, tail, _ := strings.Cut(content, ContentSeparator)
	return head, tail
}

// Progress is the decoded form of a progress item's "label:value" content
type Progress struct {
	Label string
	Value int
}

// ParseProgress decodes "label:value". A missing or non-numeric value decodes
// to 0 and out-of-range values are clamped, so decoding never fails.
func ParseProgress(content string) Progress {
	label, raw := splitComposite(content)
	return Progress{Label: label, Value: ClampProgress(leadingInt(raw))}
}

// String encodes the progress back to "label:value"
func (p Progress) String() string {
	return p.Label + ContentSeparator + strconv.Itoa(p.Value)
}

// Step moves the value by delta, saturating at the bounds instead of wrapping
func (p Progress) Step(delta int) Progress {
	p.Value = ClampProgress(p.Value + delta)
	return p
}

// Fraction is the bar fill in [0, 1]
func (p Progress) Fraction() float64 {
	return float64(p.Value) / float64(ProgressMax)
}

// Complete reports whether the tracked value has reached the maximum
func (p Progress) Complete() bool {
	return p.Value == ProgressMax
}

// ClampProgress bounds v to [ProgressMin, ProgressMax]
func ClampProgress(v int) int {
	return min(max(v, ProgressMin), ProgressMax)
}

// Goal is the decoded form of a goal item's "label:target" content
type Goal struct {
	Label  string
	Target string
}

// ParseGoal decodes "label:target". A missing target decodes to "".
func ParseGoal(content string) Goal {
	label, target := splitComposite(content)
	return Goal{Label: label, Target: target}
}

// String encodes the goal back to "label:target"
func (g Goal) String() string {
	return g.Label + ContentSeparator + g.Target
}

// leadingInt parses an optional sign followed by the leading run of digits,
// ignoring surrounding whitespace and any trailing garbage. No digits -> 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow: saturate toward the sign so clamping still lands on a bound.
		if s[0] == '-' {
			return ProgressMin
		}
		return ProgressMax
	}
	return n
}
