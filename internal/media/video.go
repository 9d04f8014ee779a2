package media

import (
	"errors"
	"io"

	"github.com/abema/go-mp4"
)

var errNoTimescale = errors.New("mp4: movie header has no timescale")

// ProbeDuration reads the movie header of an MP4/QuickTime stream and
// returns its length in seconds.
func ProbeDuration(r io.ReadSeeker) (float64, error) {
	info, err := mp4.Probe(r)
	if err != nil {
		return 0, err
	}
	if info.Timescale == 0 {
		return 0, errNoTimescale
	}
	return float64(info.Duration) / float64(info.Timescale), nil
}
