package youtube

import (
	"fmt"
	"strings"
)

// Segment is one caption line with its start offset in seconds.
type Segment struct {
	Start float64
	Text  string
}

// FormatTranscript renders segments as newline-joined "[MM:SS] text" lines.
// Minutes and seconds come from the floored start time, zero-padded to two
// digits, so 62.3s renders as [01:02].
func FormatTranscript(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		start := int(seg.Start)
		lines = append(lines, fmt.Sprintf("[%02d:%02d] %s", start/60, start%60, seg.Text))
	}
	return strings.Join(lines, "\n")
}
