package collision

import "errors"

// ErrEmptyName is returned when an input is tracked without a name.
var ErrEmptyName = errors.New("empty input name")

// Tracker detects inputs whose content checksums collide. It keeps the first
// name seen for each checksum and the names in tracking order.
type Tracker struct {
	firstNames map[uint64]string // checksum → first name tracked with it
	names      []string          // tracking order
	duplicates int
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		firstNames: make(map[uint64]string),
		names:      make([]string, 0),
	}
}

// Track records name with its content checksum.
//
// Returns:
//   - string: the name first tracked with the same checksum, if any
//   - bool: true if the checksum was seen before
//   - error: ErrEmptyName if name is empty
func (t *Tracker) Track(name string, sum uint64) (string, bool, error) {
	if name == "" {
		return "", false, ErrEmptyName
	}

	t.names = append(t.names, name)

	if first, exists := t.firstNames[sum]; exists {
		t.duplicates++
		return first, true, nil
	}
	t.firstNames[sum] = name

	return "", false, nil
}

// HasDuplicates returns true if any checksum was tracked more than once.
func (t *Tracker) HasDuplicates() bool {
	return t.duplicates > 0
}

// Duplicates returns how many tracked inputs repeated an earlier checksum.
func (t *Tracker) Duplicates() int {
	return t.duplicates
}

// Names returns the tracked names in tracking order.
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of tracked inputs.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked state, keeping allocated capacity.
func (t *Tracker) Reset() {
	for k := range t.firstNames {
		delete(t.firstNames, k)
	}
	t.names = t.names[:0]
	t.duplicates = 0
}
