package book

// Stats is a snapshot of the engine's three monotonic counters. It is a
// plain value type: the engine is single-threaded and non-suspending, so
// no atomics are needed to read or update it.
type Stats struct {
	TotalOrdersAdded     uint64
	TotalOrdersCancelled uint64
	TotalOrdersMatched   uint64
}
