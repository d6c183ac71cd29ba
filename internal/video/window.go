// Package video turns rendered slide strips into scrolling video segments
// through an external ffmpeg binary, and windows the slide list into the
// overlapping chunks those segments are cut from.
package video

import (
	"errors"
	"fmt"
)

// ErrInsufficientSlides is returned when the slide list is too short to
// produce even one scrolling window.
var ErrInsufficientSlides = errors.New("video: insufficient slides")

// Span is one half-open window [From, To) over the slide list.
type Span struct {
	From, To int
}

// Len returns the number of slides in the span.
func (s Span) Len() int {
	return s.To - s.From
}

// Windows partitions count slides into overlapping spans: window starts
// step-overlap apart, each spanning up to step slides, so consecutive
// windows share exactly overlap slides. The final window may be shorter
// than step. The caller distinguishes the first and last spans for the
// cover and ending segments.
func Windows(count, step, overlap int) ([]Span, error) {
	if overlap < 1 || step <= overlap {
		return nil, fmt.Errorf("video: step %d must exceed overlap %d (both positive)", step, overlap)
	}
	if count <= overlap {
		return nil, fmt.Errorf("%w: %d slides for overlap %d", ErrInsufficientSlides, count, overlap)
	}

	var spans []Span
	for i := 0; i < count-overlap; i += step - overlap {
		spans = append(spans, Span{From: i, To: min(i+step, count)})
	}
	return spans, nil
}
