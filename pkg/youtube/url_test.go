package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "watch URL",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "short URL",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "embed URL",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "legacy v path",
			url:  "https://www.youtube.com/v/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch URL with extra params",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "watch URL with v later in query",
			url:  "https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractVideoIDInvalid(t *testing.T) {
	for _, url := range []string{
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://vimeo.com/12345",
		"not a url at all",
		"",
	} {
		_, err := ExtractVideoID(url)
		require.Error(t, err, url)

		var invalid *InvalidURLError
		assert.ErrorAs(t, err, &invalid)
		assert.Contains(t, err.Error(), "could not extract video ID")
	}
}
