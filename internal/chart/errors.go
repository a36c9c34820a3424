package chart

import "github.com/pkg/errors"

var (
	// ErrConfiguration reports invalid input: non-positive sizes, empty or
	// malformed data, an unparsable color or a layout that cannot fit.
	ErrConfiguration = errors.New("chart: invalid configuration")

	// ErrRenderTargetMissing reports a nil mount or an unknown mount id.
	ErrRenderTargetMissing = errors.New("chart: render target missing")

	// ErrDegenerateDomain marks an all-zero data set. Render never returns
	// it; it is attached to the warning logged for such input.
	ErrDegenerateDomain = errors.New("chart: degenerate value domain")
)

func configError(format string, args ...any) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}
