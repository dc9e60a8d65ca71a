package pipeline

import "sync"

// pathClaims tracks the output paths claimed by input files within one batch
// run, so two inputs whose templates render the same name fail
// deterministically instead of racing on the exclusive create. All methods
// are goroutine-safe.
type pathClaims struct {
	mu     sync.Mutex
	owners map[string]string // output path → input path that owns it
}

func newPathClaims() *pathClaims {
	return &pathClaims{owners: make(map[string]string)}
}

// claim registers output as owned by input. ok is false when a different
// input already owns the path; owner then names that input.
func (pc *pathClaims) claim(output, input string) (owner string, ok bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if existing, exists := pc.owners[output]; exists && existing != input {
		return existing, false
	}
	pc.owners[output] = input
	return input, true
}
