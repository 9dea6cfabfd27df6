package nbtfix

// Delivery selects how aggregated fixtures are shaped into test-case
// arguments. The two fields are independent, giving four delivery modes.
type Delivery struct {
	// IncludeTags adds each value's tag type to the delivered arguments.
	IncludeTags bool

	// AllAtOnce delivers the whole fixture set as a single argument tuple
	// instead of one tuple per value.
	AllAtOnce bool
}

// Args is one test-case argument tuple.
type Args []any

// Stream is a finite, single-use sequence of argument tuples. Each test
// invocation should request a fresh dispatch; a drained Stream stays empty.
type Stream struct {
	tuples []Args
	pos    int
}

// Next returns the next tuple, or false once the stream is drained.
func (s *Stream) Next() (Args, bool) {
	if s.pos >= len(s.tuples) {
		return nil, false
	}
	args := s.tuples[s.pos]
	s.pos++
	return args, true
}

// Collect drains the stream and returns all remaining tuples.
func (s *Stream) Collect() []Args {
	out := s.tuples[s.pos:]
	s.pos = len(s.tuples)
	return out
}

// Dispatch shapes the aggregate into argument tuples for the requested
// delivery mode:
//
//	AllAtOnce + IncludeTags: one tuple holding the whole *Aggregate
//	AllAtOnce only:          one tuple holding the []Value set
//	IncludeTags only:        one (Value, TagType) tuple per pair
//	neither:                 one (Value) tuple per value
//
// Every aggregated value appears exactly once across the stream; no
// ordering is promised beyond that.
func Dispatch(agg *Aggregate, mode Delivery) *Stream {
	if mode.AllAtOnce {
		if mode.IncludeTags {
			return &Stream{tuples: []Args{{agg}}}
		}
		return &Stream{tuples: []Args{{agg.Values()}}}
	}

	tuples := make([]Args, 0, agg.Len())
	for _, p := range agg.Pairs() {
		if mode.IncludeTags {
			tuples = append(tuples, Args{p.Value, p.Tag})
		} else {
			tuples = append(tuples, Args{p.Value})
		}
	}
	return &Stream{tuples: tuples}
}
