package pipeline

// Results collects every job's terminal outcome for one batch. Order matches
// the dispatch order of the input paths; completion order is unspecified.
type Results []Result

// Completed returns the number of jobs that reached StateCompleted.
func (rs Results) Completed() int {
	n := 0
	for i := range rs {
		if rs[i].State == StateCompleted {
			n++
		}
	}
	return n
}

// Failed returns the number of jobs that reached StateFailed.
func (rs Results) Failed() int {
	return len(rs) - rs.Completed()
}

// Skipped returns the number of failures caused by an already existing
// output, a subset of Failed.
func (rs Results) Skipped() int {
	n := 0
	for i := range rs {
		if rs[i].Err != nil && rs[i].Err.Kind == FailAlreadyExists {
			n++
		}
	}
	return n
}

// InputBytes returns the total size of successfully processed inputs.
func (rs Results) InputBytes() int64 {
	var total int64
	for i := range rs {
		total += rs[i].InputBytes
	}
	return total
}

// OutputBytes returns the total size of written outputs.
func (rs Results) OutputBytes() int64 {
	var total int64
	for i := range rs {
		total += rs[i].OutputBytes
	}
	return total
}
