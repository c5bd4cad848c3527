// SPDX-License-Identifier: MIT

package network

import "sort"

// Collection is an ordered map from frequency (Hz) to one Matrix. All
// contained matrices share the collection's port count and variant;
// insertion order is irrelevant and iteration order is ascending
// frequency. Collection is an ordinary mutable aggregate with no
// internal locking; callers serialize concurrent access.
type Collection struct {
	ports   int
	variant Variant
	freqs   []float64 // ascending, unique
	entries map[float64]*Matrix
}

// NewCollection creates an empty collection for matrices of the given
// port count and variant. A non-positive port count returns
// ErrInvalidPortCount.
func NewCollection(ports int, variant Variant) (*Collection, error) {
	if ports < 1 {
		return nil, ErrInvalidPortCount
	}

	return &Collection{
		ports:   ports,
		variant: variant,
		entries: make(map[float64]*Matrix),
	}, nil
}

// Ports returns the port count every contained matrix shares.
func (c *Collection) Ports() int { return c.ports }

// Variant returns the representation every contained matrix shares.
func (c *Collection) Variant() Variant { return c.variant }

// Len returns the number of frequency entries.
func (c *Collection) Len() int { return len(c.freqs) }

// Frequencies returns the contained frequencies in ascending order.
// The returned slice is a copy.
func (c *Collection) Frequencies() []float64 {
	out := make([]float64, len(c.freqs))
	copy(out, c.freqs)

	return out
}

// Contains reports whether the exact frequency has an entry.
func (c *Collection) Contains(freq float64) bool {
	_, ok := c.entries[freq]

	return ok
}

// Get returns the matrix at the exact frequency, or
// ErrFrequencyNotFound.
func (c *Collection) Get(freq float64) (*Matrix, error) {
	m, ok := c.entries[freq]
	if !ok {
		return nil, ErrFrequencyNotFound
	}

	return m, nil
}

// TryGet returns the matrix at the exact frequency and whether it was
// present.
func (c *Collection) TryGet(freq float64) (*Matrix, bool) {
	m, ok := c.entries[freq]

	return m, ok
}

// validate rejects matrices that do not share the collection's port
// count and variant.
func (c *Collection) validate(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Ports() != c.ports {
		return ErrPortCountMismatch
	}
	if m.Variant() != c.variant {
		return ErrVariantMismatch
	}

	return nil
}

// Set inserts or replaces the entry at the given frequency.
// Returns ErrPortCountMismatch or ErrVariantMismatch when the matrix
// does not fit the collection.
func (c *Collection) Set(freq float64, m *Matrix) error {
	if err := c.validate(m); err != nil {
		return err
	}
	if _, exists := c.entries[freq]; !exists {
		i := sort.SearchFloat64s(c.freqs, freq)
		c.freqs = append(c.freqs, 0)
		copy(c.freqs[i+1:], c.freqs[i:])
		c.freqs[i] = freq
	}
	c.entries[freq] = m

	return nil
}

// Add inserts a new entry; an existing entry at the frequency returns
// ErrDuplicateFrequency (use Set to replace).
func (c *Collection) Add(freq float64, m *Matrix) error {
	if _, exists := c.entries[freq]; exists {
		return ErrDuplicateFrequency
	}

	return c.Set(freq, m)
}

// Remove deletes the entry at the exact frequency; absent entries
// return ErrFrequencyNotFound.
func (c *Collection) Remove(freq float64) error {
	if _, ok := c.entries[freq]; !ok {
		return ErrFrequencyNotFound
	}
	delete(c.entries, freq)
	i := sort.SearchFloat64s(c.freqs, freq)
	c.freqs = append(c.freqs[:i], c.freqs[i+1:]...)

	return nil
}

// Nearest returns the entry whose frequency is closest to the target.
// An exact match wins outright; a target below the first or above the
// last entry clamps to that boundary entry; otherwise the strictly
// closer neighbor wins, and the successor wins an exact distance tie.
// An empty collection returns ErrEmptyCollection.
func (c *Collection) Nearest(freq float64) (float64, *Matrix, error) {
	if len(c.freqs) == 0 {
		return 0, nil, ErrEmptyCollection
	}
	if m, ok := c.entries[freq]; ok {
		return freq, m, nil
	}

	i := sort.SearchFloat64s(c.freqs, freq)
	switch {
	case i == 0:
		freq = c.freqs[0]
	case i == len(c.freqs):
		freq = c.freqs[len(c.freqs)-1]
	default:
		pred, succ := c.freqs[i-1], c.freqs[i]
		// Successor wins the exact tie.
		if freq-pred < succ-freq {
			freq = pred
		} else {
			freq = succ
		}
	}

	return freq, c.entries[freq], nil
}

// CascadeWith cascades the receiver with the other collections,
// frequency by frequency. The result holds, for every frequency of the
// distinct union that is present in all operands, the matrix cascade in
// operand order; a frequency missing from any operand is excluded, not
// interpolated. All operands must share the receiver's port count.
func (c *Collection) CascadeWith(others ...*Collection) (*Collection, error) {
	operands := make([]*Collection, 0, len(others)+1)
	operands = append(operands, c)
	for _, o := range others {
		if o == nil {
			return nil, ErrNilMatrix
		}
		if o.ports != c.ports {
			return nil, ErrPortCountMismatch
		}
		operands = append(operands, o)
	}

	// Distinct union of every operand's frequencies, ascending.
	union := make([]float64, 0, c.Len())
	seen := make(map[float64]struct{})
	for _, o := range operands {
		for _, f := range o.freqs {
			if _, dup := seen[f]; !dup {
				seen[f] = struct{}{}
				union = append(union, f)
			}
		}
	}
	sort.Float64s(union)

	out, err := NewCollection(c.ports, c.variant)
	if err != nil {
		return nil, err
	}
	chain := make([]*Matrix, len(operands))
	for _, f := range union {
		present := true
		for i, o := range operands {
			m, ok := o.entries[f]
			if !ok {
				present = false

				break
			}
			chain[i] = m
		}
		if !present {
			continue
		}
		// Cascade returns the first operand's variant, i.e. the
		// receiver's, so the result slots straight into out.
		cascaded, err := Cascade(chain...)
		if err != nil {
			return nil, err
		}
		if err := out.Set(f, cascaded); err != nil {
			return nil, err
		}
	}

	return out, nil
}
