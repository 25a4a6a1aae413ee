package storage

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned delivery URL",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345/appointment-photos/abc123.jpg",
			want: "appointment-photos/abc123",
		},
		{
			name: "no version segment",
			url:  "https://res.cloudinary.com/demo/image/upload/appointment-photos/abc123.png",
			want: "appointment-photos/abc123",
		},
		{
			name: "nested folder",
			url:  "https://res.cloudinary.com/demo/image/upload/v99/a/b/c.jpeg",
			want: "a/b/c",
		},
		{
			name: "not a delivery URL",
			url:  "https://example.com/photos/abc123.jpg",
			want: "",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PublicIDFromURL(tc.url); got != tc.want {
				t.Errorf("PublicIDFromURL(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}
