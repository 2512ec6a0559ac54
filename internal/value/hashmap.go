package value

// Map is an open-addressed mapping from hashable Value to Value. Each slot
// holds (key, value); a slot whose key is Undef is empty. This mirrors the
// data model's explicit requirement that Map iteration walks the raw slot
// array in slot order (not insertion order) and that the iteration index
// is an opaque position into that array, not a stable logical position.
type Map struct {
	slots []mapSlot
	count int // number of live (non-Undef-key) slots
}

type mapSlot struct {
	key Value
	val Value
}

func (*Map) ObjKind() Kind { return KindMap }

const mapInitialCapacity = 8
const mapMaxLoadNumerator = 7
const mapMaxLoadDenominator = 10

// NewMap allocates an empty Map.
func NewMap() *Map {
	return &Map{slots: emptySlots(mapInitialCapacity)}
}

// emptySlots allocates n slots with every key set to Undef. A zero-valued
// mapSlot is not empty: Value's zero value has tag TagNull (IsUndef is
// false for it), so a plain make([]mapSlot, n) would make every fresh slot
// look occupied by a Null key and findSlot would never terminate.
func emptySlots(n int) []mapSlot {
	slots := make([]mapSlot, n)
	for i := range slots {
		slots[i].key = Undef
	}
	return slots
}

// Len returns the number of live entries.
func (m *Map) Len() int { return m.count }

// Cap returns the backing slot-array capacity (the bound on iteration
// indices).
func (m *Map) Cap() int { return len(m.slots) }

func (m *Map) findSlot(slots []mapSlot, key Value) int {
	cap := len(slots)
	idx := int(HashValue(key) % uint64(cap))
	for {
		s := &slots[idx]
		if IsUndef(s.key) || ValuesEqual(s.key, key) {
			return idx
		}
		idx = (idx + 1) % cap
	}
}

// Get looks up key, returning (value, true) if present.
func (m *Map) Get(key Value) (Value, bool) {
	if len(m.slots) == 0 {
		return Null, false
	}
	idx := m.findSlot(m.slots, key)
	if IsUndef(m.slots[idx].key) {
		return Null, false
	}
	return m.slots[idx].val, true
}

// Set inserts or overwrites key -> val. Caller must have checked
// IsHashable(key); Set panics otherwise, since every call site in this
// module validates hashability first via the subscript/attribute engines.
func (m *Map) Set(key, val Value) {
	if !IsHashable(key) {
		panic("value: Map.Set called with a non-hashable key")
	}
	if (m.count+1)*mapMaxLoadDenominator > len(m.slots)*mapMaxLoadNumerator {
		m.grow()
	}
	idx := m.findSlot(m.slots, key)
	if IsUndef(m.slots[idx].key) {
		m.count++
	}
	m.slots[idx] = mapSlot{key: key, val: val}
}

// Delete removes key if present, reporting whether it was.
//
// Open addressing requires a tombstone or a shift-back on delete to keep
// probe chains intact; this implementation shifts the following cluster
// back rather than tombstoning, so Cap() never grows from deletions alone.
func (m *Map) Delete(key Value) bool {
	if len(m.slots) == 0 {
		return false
	}
	idx := m.findSlot(m.slots, key)
	if IsUndef(m.slots[idx].key) {
		return false
	}
	m.slots[idx] = mapSlot{key: Undef, val: Null}
	m.count--

	cap := len(m.slots)
	next := (idx + 1) % cap
	for !IsUndef(m.slots[next].key) {
		s := m.slots[next]
		m.slots[next] = mapSlot{key: Undef, val: Null}
		m.count--
		idx = next
		m.Set(s.key, s.val)
		next = (idx + 1) % cap
	}
	return true
}

func (m *Map) grow() {
	newCap := len(m.slots) * 2
	if newCap == 0 {
		newCap = mapInitialCapacity
	}
	newSlots := emptySlots(newCap)
	for _, s := range m.slots {
		if IsUndef(s.key) {
			continue
		}
		idx := m.findSlot(newSlots, s.key)
		newSlots[idx] = s
	}
	m.slots = newSlots
}

// IterAt reads the raw slot at index i, skipping empty slots forward,
// returning the key found (if any), the next index to resume from, and
// whether an entry was found before capacity was exhausted. This backs
// the iteration protocol's Map semantics (§4.5): the iterator advances an
// opaque Number state that indexes directly into the slot array.
func (m *Map) IterAt(i int) (key Value, nextIndex int, ok bool) {
	for i < len(m.slots) {
		if !IsUndef(m.slots[i].key) {
			return m.slots[i].key, i + 1, true
		}
		i++
	}
	return Null, i, false
}
