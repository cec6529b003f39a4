package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// Resource quantities use the orchestrator's suffix convention: an optional
// decimal SI suffix (m, k, M, G, T, P, E) or binary suffix (Ki, Mi, Gi, Ti,
// Pi, Ei) after a non-negative decimal number.
var quantitySuffixes = map[string]float64{
	"m":  1e-3,
	"k":  1e3,
	"K":  1e3,
	"M":  1e6,
	"G":  1e9,
	"T":  1e12,
	"P":  1e15,
	"E":  1e18,
	"Ki": 1 << 10,
	"Mi": 1 << 20,
	"Gi": 1 << 30,
	"Ti": 1 << 40,
	"Pi": 1 << 50,
	"Ei": 1 << 60,
}

func parseQuantity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("quantity is empty")
	}

	number := s
	scale := 1.0
	for suffix, factor := range quantitySuffixes {
		if strings.HasSuffix(s, suffix) && len(s) > len(suffix) {
			trimmed := s[:len(s)-len(suffix)]
			// "1Mi" must not match the "i"-less "M" path with a dangling rune.
			if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
				number = trimmed
				scale = factor
				break
			}
		}
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed quantity %q", s)
	}
	if value < 0 {
		return 0, fmt.Errorf("quantity must be non-negative: %q", s)
	}
	return value * scale, nil
}

// validateQuantityPair parses request and limit and rejects request > limit.
func validateQuantityPair(resource, request, limit string) error {
	reqValue, err := parseQuantity(request)
	if err != nil {
		return fmt.Errorf("%s request: %w", resource, err)
	}
	limValue, err := parseQuantity(limit)
	if err != nil {
		return fmt.Errorf("%s limit: %w", resource, err)
	}
	if reqValue > limValue {
		return fmt.Errorf("%s request %q exceeds limit %q", resource, request, limit)
	}
	return nil
}
