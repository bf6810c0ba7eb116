package source

// StringID is an index into an Interner.
type StringID uint32

// NoStringID is reserved for the empty string.
const NoStringID StringID = 0

// Interner deduplicates strings. The scanner uses one per file so that
// repeated identifier lexemes share a single allocation.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner creates an interner with the empty string preinterned at
// NoStringID.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern stores s and returns its ID, reusing the existing entry if present.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}

	// Own copy, detached from whatever buffer s was sliced from.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes interns the string form of b.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Get returns the interned string for s without allocating a new entry for
// misses; the returned string is the canonical copy when one exists.
func (i *Interner) Get(s string) string {
	return i.byID[i.Intern(s)]
}

// Lookup returns the string for an ID, or "" and false for invalid IDs.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// Has reports whether the ID is valid.
func (i *Interner) Has(id StringID) bool {
	return int(id) < len(i.byID)
}

// Len returns the number of interned strings, including the empty string.
func (i *Interner) Len() int {
	return len(i.byID)
}
