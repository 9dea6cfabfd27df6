package nbtfix

import "fmt"

// Registry maps every sampled tag type to its Sampler. A Registry built by
// NewRegistry is total over the non-End tag types; a missing entry is a
// defect in this package and aborts construction.
type Registry struct {
	samplers map[TagType]Sampler
}

// NewRegistry builds the registry of all per-type samplers.
// Adding a new tag type requires exactly one entry here plus its sampler.
func NewRegistry() *Registry {
	r := &Registry{
		samplers: map[TagType]Sampler{
			TagByte:      ByteSamples,
			TagShort:     ShortSamples,
			TagInt:       IntSamples,
			TagLong:      LongSamples,
			TagFloat:     FloatSamples,
			TagDouble:    DoubleSamples,
			TagByteArray: ByteArraySamples,
			TagString:    StringSamples,
			TagList:      ListSamples,
			TagCompound:  CompoundSamples,
			TagIntArray:  IntArraySamples,
			TagLongArray: LongArraySamples,
		},
	}
	// Construction-time exhaustiveness check over the tag enumeration.
	for _, t := range sampledTags {
		if _, ok := r.samplers[t]; !ok {
			panic(fmt.Sprintf("nbtfix: no sampler registered for %v", t))
		}
	}
	return r
}

// Lookup returns the Sampler for the given tag type. Requesting TagEnd or
// an undefined tag is a programming error and panics.
func (r *Registry) Lookup(t TagType) Sampler {
	if t == TagEnd {
		panic("nbtfix: TAG_End has no sampler; it is a terminator, not a value")
	}
	s, ok := r.samplers[t]
	if !ok {
		panic(fmt.Sprintf("nbtfix: no sampler registered for %v", t))
	}
	return s
}

// Tags returns the tag types this registry carries, in declaration order.
func (r *Registry) Tags() []TagType {
	tags := make([]TagType, 0, len(r.samplers))
	for _, t := range sampledTags {
		if _, ok := r.samplers[t]; ok {
			tags = append(tags, t)
		}
	}
	return tags
}
