package stack

// Stats is a point-in-time snapshot of an arena's operation counters.
// Counters track the handle, not the image: they are not serialized and
// reset when a handle is destroyed.
type Stats struct {
	Pushes   uint64 // successful pushes
	Pops     uint64 // successful pops
	Peeks    uint64 // successful peeks
	Failures uint64 // operations rejected with an error

	PeakCount int // highest live entry count observed
	PeakUsed  int // highest occupied byte count observed
}

// Stats returns a snapshot of the arena's operation counters. The zero
// Stats for an invalid handle.
func (s *Stack) Stats() Stats {
	if !s.IsValid() {
		return Stats{}
	}
	return s.stats
}
