package rawcodec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// ToolCodec is the production Codec. It shells out to exiftool for metadata
// extraction and dnglab for the RAW→DNG conversion; both tools are verified
// up front by the check package. Binary names are fields so tests can point
// them at fakes.
type ToolCodec struct {
	exiftool string
	dnglab   string
}

// NewToolCodec returns a ToolCodec using the tools found on PATH.
func NewToolCodec() *ToolCodec {
	return &ToolCodec{exiftool: "exiftool", dnglab: "dnglab"}
}

// Decode extracts metadata from the RAW file at path.
func (c *ToolCodec) Decode(ctx context.Context, path string) (*Metadata, error) {
	return c.decode(ctx, path)
}

// Encode converts req.InputPath to a DNG at req.OutputPath, then stamps the
// artist and software tags. The output placeholder is created by the caller,
// so dnglab runs with --override.
func (c *ToolCodec) Encode(ctx context.Context, req EncodeRequest) error {
	if err := c.run(ctx, c.dnglab, EncodeArgs(req)); err != nil {
		return fmt.Errorf("dnglab convert %q: %w", req.InputPath, err)
	}
	tagArgs := TagArgs(req)
	if len(tagArgs) == 0 {
		return nil
	}
	if err := c.run(ctx, c.exiftool, tagArgs); err != nil {
		return fmt.Errorf("tag DNG %q: %w", req.OutputPath, err)
	}
	return nil
}

// EncodeArgs builds the dnglab convert argument list for req.
// Exported for testing without a real dnglab binary.
func EncodeArgs(req EncodeRequest) []string {
	args := []string{
		"convert",
		"--override",
		"--embedded", strconv.FormatBool(req.EmbedOriginal),
	}
	if req.Artist != "" {
		args = append(args, "--artist", req.Artist)
	}
	return append(args, req.InputPath, req.OutputPath)
}

// TagArgs builds the exiftool invocation that stamps the artist and software
// tags onto the converted DNG. Returns nil when there is nothing to stamp.
func TagArgs(req EncodeRequest) []string {
	args := []string{"-overwrite_original"}
	if req.Artist != "" {
		args = append(args, "-Artist="+req.Artist)
	}
	if req.Software != "" {
		args = append(args, "-Software="+req.Software)
	}
	if len(args) == 1 {
		return nil
	}
	return append(args, req.OutputPath)
}

// run executes a tool with captured stderr, folding the first stderr line
// into the returned error for diagnostics.
func (c *ToolCodec) run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if line := firstLine(stderr.String()); line != "" {
			return fmt.Errorf("%w: %s", err, line)
		}
		return err
	}
	return nil
}
