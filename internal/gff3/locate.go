package gff3

import "fmt"

// Locate returns the single feature whose type equals typ and whose
// attributes carry key=value. Both comparisons are case-sensitive and exact.
// Zero matches yields ErrNoMatch; two or more yields ErrAmbiguous rather
// than a silently-picked winner. The returned pointer aliases
// the features slice; no sequence data is copied.
func Locate(features []Feature, typ, key, value string) (*Feature, error) {
	var found *Feature
	count := 0
	for i := range features {
		f := &features[i]
		if f.Type != typ {
			continue
		}
		if v, ok := f.Attributes.Get(key); !ok || v != value {
			continue
		}
		if found == nil {
			found = f
		}
		count++
	}
	switch {
	case count == 0:
		return nil, fmt.Errorf("%w: type=%q %s=%q", ErrNoMatch, typ, key, value)
	case count > 1:
		return nil, fmt.Errorf("%w: %d features match type=%q %s=%q", ErrAmbiguous, count, typ, key, value)
	}
	return found, nil
}
