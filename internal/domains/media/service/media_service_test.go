package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "hosted image url",
			url:  "http://localhost:9000/cozyhomes/houses/1f8e2a.jpg",
			want: "1f8e2a.jpg",
		},
		{
			name: "url with query string",
			url:  "http://files.example.com/bucket/houses/photo.png?v=2",
			want: "photo.png",
		},
		{
			name: "no extension",
			url:  "https://host/xyz987",
			want: "xyz987",
		},
		{
			name: "bare key",
			url:  "photo.jpg",
			want: "photo.jpg",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
		{
			name: "host only",
			url:  "http://files.example.com",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromURL(tt.url))
		})
	}
}

func TestBaseFile(t *testing.T) {
	assert.Equal(t, "abc.jpg", baseFile("houses/abc.jpg"))
	assert.Equal(t, "abc.jpg", baseFile("houses/variants/large_abc.jpg"))
	assert.Equal(t, "abc.jpg", baseFile("houses/variants/thumbnail_abc.jpg"))
	// Unknown nesting is left untouched by the sweep.
	assert.Equal(t, "", baseFile("houses/misc/abc.jpg"))
}
