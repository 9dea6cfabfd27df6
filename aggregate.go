package nbtfix

// TaggedValue pairs a fixture value with the tag type whose sampler
// produced it. The pairing is preserved through aggregation and dispatch.
type TaggedValue struct {
	Value Value
	Tag   TagType
}

// Aggregate is the flattened fixture set: every sampler's output keyed by
// structural value identity. Duplicate values are inserted once,
// first-write-wins. Because the identity key includes the tag type,
// structurally similar values of different types never collide.
type Aggregate struct {
	order   []string
	entries map[string]TaggedValue
}

// Aggregate runs every sampler the registry carries, in tag declaration
// order, and flattens the results into one deduplicated collection.
// Each call builds a fresh Aggregate.
func (r *Registry) Aggregate() *Aggregate {
	agg := &Aggregate{
		entries: make(map[string]TaggedValue),
	}
	for _, t := range r.Tags() {
		for _, v := range r.Lookup(t)() {
			agg.insert(v, t)
		}
	}
	return agg
}

func (a *Aggregate) insert(v Value, t TagType) {
	key := v.fingerprint()
	if _, ok := a.entries[key]; ok {
		return
	}
	a.order = append(a.order, key)
	a.entries[key] = TaggedValue{Value: v, Tag: t}
}

// Len returns the number of unique values aggregated
func (a *Aggregate) Len() int {
	return len(a.entries)
}

// Pairs returns every (value, tag) pair in insertion order.
// The returned slice is a copy.
func (a *Aggregate) Pairs() []TaggedValue {
	out := make([]TaggedValue, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, a.entries[key])
	}
	return out
}

// Values returns the unique values in insertion order, tags discarded.
func (a *Aggregate) Values() []Value {
	out := make([]Value, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, a.entries[key].Value)
	}
	return out
}

// TagOf returns the tag type recorded for a structurally equal value,
// or false if the value was never aggregated.
func (a *Aggregate) TagOf(v Value) (TagType, bool) {
	tv, ok := a.entries[v.fingerprint()]
	return tv.Tag, ok
}
