package toggle

import (
	"fmt"
	"strings"
)

// Variant selects how the frame counter triggers a mode flip.
type Variant int

const (
	// Threshold counts frames since the last flip and flips when the count
	// reaches the period, resetting it. Flips land on frames P, 2P, 3P...
	Threshold Variant = iota
	// Modulo flips whenever the running frame count is a multiple of the
	// period, frame zero included. Flips land on frames 0, P, 2P...
	Modulo
)

var variantNames = map[Variant]string{
	Threshold: "threshold",
	Modulo:    "modulo",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// ParseVariant maps a name to a Variant. Empty input selects Threshold.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "threshold", "reset":
		return Threshold, nil
	case "modulo", "mod":
		return Modulo, nil
	}
	return 0, &ConfigurationError{
		Field:   "variant",
		Value:   name,
		Wrapped: fmt.Errorf("%w, want one of %s", ErrUnknownVariant, strings.Join(VariantNames(), ", ")),
	}
}

// VariantNames lists the canonical variant names.
func VariantNames() []string {
	return []string{Threshold.String(), Modulo.String()}
}
