// build.go implements building the static site and packaging the result.

package site

import (
	"context"
	"io"

	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/archive"
	"github.com/jpl-au/docsite/internal/build"
)

// Build runs the configured build command in the site root.
func (s *Service) Build(ctx context.Context, stream io.Writer) (build.Result, error) {
	res, err := build.Run(ctx, s.buildCmd, build.Options{Dir: s.root, Stream: stream})
	if err != nil {
		return res, err
	}
	s.fireEvent(extension.SiteBuildEvent{Output: s.output, ExitCode: res.ExitCode})
	return res, nil
}

// Zip writes an archive of the build output directory to w.
func (s *Service) Zip(ctx context.Context, w io.Writer) (int, error) {
	return archive.Write(ctx, w, s.output)
}
