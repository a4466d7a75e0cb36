package youtube

import (
	"fmt"
	"regexp"
)

// InvalidURLError reports a URL no known YouTube format matched.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("could not extract video ID from URL: %s", e.URL)
}

// videoIDPatterns are tried in order; the first pattern that matches wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ExtractVideoID pulls the video identifier out of the watch?v=, youtu.be/,
// embed/ and v/ URL forms. Returns *InvalidURLError when nothing matches.
func ExtractVideoID(youtubeURL string) (string, error) {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(youtubeURL); m != nil {
			return m[1], nil
		}
	}
	return "", &InvalidURLError{URL: youtubeURL}
}
