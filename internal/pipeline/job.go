package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/rawpress/internal/config"
	"github.com/backmassage/rawpress/internal/naming"
	"github.com/backmassage/rawpress/internal/rawcodec"
)

// JobState tracks a job through the conversion pipeline. Completed and
// Failed are the only terminal states; Failed is reachable from any
// non-terminal state.
type JobState uint8

const (
	StatePending JobState = iota
	StateReading
	StateDecoding
	StatePathResolved
	StateOverwriteCheck
	StateConverting
	StateWriting
	StateCompleted
	StateFailed
)

func (s JobState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReading:
		return "reading"
	case StateDecoding:
		return "decoding"
	case StatePathResolved:
		return "path-resolved"
	case StateOverwriteCheck:
		return "overwrite-check"
	case StateConverting:
		return "converting"
	case StateWriting:
		return "writing"
	case StateCompleted:
		return "completed"
	default:
		return "failed"
	}
}

// FailKind classifies terminal job failures.
type FailKind uint8

const (
	FailIO FailKind = iota
	FailDecode
	FailEncode
	FailAlreadyExists
	FailOther
)

func (k FailKind) String() string {
	switch k {
	case FailIO:
		return "io"
	case FailDecode:
		return "decode"
	case FailEncode:
		return "encode"
	case FailAlreadyExists:
		return "already-exists"
	default:
		return "other"
	}
}

// JobError is the terminal failure of a single job. It never aborts the
// batch; the runner records it and moves on.
type JobError struct {
	Kind FailKind
	Msg  string
	Err  error // Underlying cause; nil for AlreadyExists.
}

func (e *JobError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *JobError) Unwrap() error { return e.Err }

// Result is one job's terminal outcome.
type Result struct {
	InputPath  string
	OutputPath string // Resolved output path; empty if the job failed earlier.
	State      JobState
	Err        *JobError // nil when State is StateCompleted.

	InputBytes  int64
	OutputBytes int64
}

// job is one unit of pipeline work. It is created at dispatch, owned by a
// single worker, and communicates only through its returned Result.
type job struct {
	cfg    *config.Config
	codec  rawcodec.Codec
	format *naming.Format // Shared read-only across all jobs.
	claims *pathClaims
	input  string

	state  JobState
	output string // Filled once the job reaches StatePathResolved.
}

func (j *job) fail(kind FailKind, msg string, err error) Result {
	return Result{
		InputPath:  j.input,
		OutputPath: j.output,
		State:      StateFailed,
		Err:        &JobError{Kind: kind, Msg: msg, Err: err},
	}
}

// run drives one input file through the pipeline states. Dry-run stops after
// path resolution and never touches the filesystem beyond the input stat and
// metadata read.
func (j *job) run(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return j.fail(FailOther, "interrupted before start", err)
	}

	j.state = StateReading
	fi, err := os.Stat(j.input)
	if err != nil {
		return j.fail(FailIO, "can't read input file", err)
	}
	if fi.IsDir() {
		return j.fail(FailIO, "input is a directory", nil)
	}

	j.state = StateDecoding
	md, err := j.codec.Decode(ctx, j.input)
	if err != nil {
		return j.fail(FailDecode, "couldn't extract image metadata", err)
	}

	j.state = StatePathResolved
	stem := strings.TrimSuffix(filepath.Base(j.input), filepath.Ext(j.input))
	j.output = filepath.Join(j.cfg.OutputDir, j.format.Render(md, stem)+OutputExt)

	if j.cfg.DryRun {
		return Result{
			InputPath:  j.input,
			OutputPath: j.output,
			State:      StateCompleted,
			InputBytes: fi.Size(),
		}
	}

	if owner, ok := j.claims.claim(j.output, j.input); !ok {
		return j.fail(FailAlreadyExists,
			fmt.Sprintf("output path already produced by %s in this run", owner), nil)
	}

	j.state = StateOverwriteCheck
	if st, err := os.Stat(j.output); err == nil {
		if st.IsDir() {
			return j.fail(FailAlreadyExists,
				fmt.Sprintf("computed filepath already exists as a directory: %s", j.output), nil)
		}
		if !j.cfg.Force {
			return j.fail(FailAlreadyExists,
				fmt.Sprintf("won't overwrite existing file: %s", j.output), nil)
		}
		if err := os.Remove(j.output); err != nil {
			return j.fail(FailIO, fmt.Sprintf("couldn't remove existing file: %s", j.output), err)
		}
	}

	j.state = StateConverting
	// Exclusive create claims the path on disk; the codec then streams the
	// DNG into it.
	out, err := os.OpenFile(j.output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return j.fail(FailIO, fmt.Sprintf("couldn't create output file: %s", j.output), err)
	}
	out.Close()

	req := rawcodec.EncodeRequest{
		InputPath:     j.input,
		OutputPath:    j.output,
		EmbedOriginal: j.cfg.EmbedOriginal,
		Artist:        j.cfg.Artist,
		Software:      SoftwareTag,
	}
	if req.Artist == "" {
		req.Artist = md.Artist
	}
	if err := j.codec.Encode(ctx, req); err != nil {
		os.Remove(j.output)
		return j.fail(FailEncode, "couldn't convert image to DNG", err)
	}

	j.state = StateWriting
	res := Result{
		InputPath:  j.input,
		OutputPath: j.output,
		State:      StateCompleted,
		InputBytes: fi.Size(),
	}
	if st, err := os.Stat(j.output); err == nil {
		res.OutputBytes = st.Size()
	}
	j.state = StateCompleted
	return res
}
