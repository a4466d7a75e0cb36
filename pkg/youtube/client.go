package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client fetches video captions straight from YouTube's watch page: the page
// embeds the list of caption tracks, and each track URL serves the timed
// text in json3 form. No API key is required.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
}

type timedText struct {
	Events []struct {
		TStartMs int64 `json:"tStartMs"`
		Segs     []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// Fetch returns the caption segments for a video, preferring an English
// track and falling back to the first one listed. The error strings mirror
// the upstream transcript provider's wording; callers classify on them.
func (c *Client) Fetch(ctx context.Context, videoID string) ([]Segment, error) {
	page, err := c.get(ctx, "https://www.youtube.com/watch?v="+videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}

	if strings.Contains(page, `"playabilityStatus":{"status":"ERROR"`) {
		return nil, fmt.Errorf("Video unavailable: %s", videoID)
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil || len(tracks) == 0 {
		return nil, fmt.Errorf("Could not retrieve a transcript for the video %s: no caption tracks found", videoID)
	}

	track := tracks[0]
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			track = t
			break
		}
	}

	body, err := c.get(ctx, track.BaseURL+"&fmt=json3")
	if err != nil {
		return nil, fmt.Errorf("Could not retrieve a transcript for the video %s: %w", videoID, err)
	}

	var tt timedText
	if err := json.Unmarshal([]byte(body), &tt); err != nil {
		return nil, fmt.Errorf("Could not retrieve a transcript for the video %s: %w", videoID, err)
	}

	var segments []Segment
	for _, ev := range tt.Events {
		var sb strings.Builder
		for _, s := range ev.Segs {
			sb.WriteString(s.UTF8)
		}
		text := strings.TrimSpace(strings.ReplaceAll(sb.String(), "\n", " "))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start: float64(ev.TStartMs) / 1000.0,
			Text:  text,
		})
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("Could not retrieve a transcript for the video %s: empty transcript", videoID)
	}
	return segments, nil
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept-Language", "en-US,en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return string(body), nil
}

// parseCaptionTracks locates the embedded "captionTracks" array in the watch
// page markup and decodes it.
func parseCaptionTracks(page string) ([]captionTrack, error) {
	const marker = `"captionTracks":`
	idx := strings.Index(page, marker)
	if idx < 0 {
		return nil, fmt.Errorf("no captionTracks in page")
	}

	dec := json.NewDecoder(strings.NewReader(page[idx+len(marker):]))
	var tracks []captionTrack
	if err := dec.Decode(&tracks); err != nil {
		return nil, fmt.Errorf("decode captionTracks: %w", err)
	}
	return tracks, nil
}
