package exposure

import (
	"slices"
	"strings"
)

// Choice is how a user picks values among a set of options: either every
// option, or a custom list.
//
// The zero Choice is All.
type Choice struct {
	custom bool
	values []string
}

// All chooses every available option.
func All() Choice { return Choice{} }

// Custom chooses exactly the listed values. Custom() with no value chooses nothing.
func Custom(values ...string) Choice {
	return Choice{custom: true, values: slices.Clone(values)}
}

// ParseChoice parses a user input: "" or "all" is All, "none" is an empty
// custom choice, anything else a comma separated list.
func ParseChoice(s string) Choice {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "all":
		return All()
	case "none":
		return Custom()
	}
	var values []string
	for v := range strings.SplitSeq(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return Custom(values...)
}

// IsAll reports whether every option is chosen.
func (c Choice) IsAll() bool { return !c.custom }

// Values returns the custom values, nil for All.
func (c Choice) Values() []string { return slices.Clone(c.values) }

// Resolve returns the chosen options.
//
// All returns the options unchanged. A custom choice returns its values that are
// actual options, in the order they were chosen, without duplicates.
func (c Choice) Resolve(options []string) []string {
	if !c.custom {
		return slices.Clone(options)
	}
	var resolved []string
	for _, v := range c.values {
		if slices.Contains(options, v) && !slices.Contains(resolved, v) {
			resolved = append(resolved, v)
		}
	}
	return resolved
}

func (c Choice) String() string {
	if !c.custom {
		return "all"
	}
	if len(c.values) == 0 {
		return "none"
	}
	return strings.Join(c.values, ",")
}
