package utils

import "testing"

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"/0", "[0]"},
		{"/0/status", "[0].status"},
		{"#/12/priority", "[12].priority"},
		{"/a/b", "a.b"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}

	for _, tt := range tests {
		t.Run(tt.ptr, func(t *testing.T) {
			if got := JSONPointerToPath(tt.ptr); got != tt.want {
				t.Errorf("JSONPointerToPath(%q) = %q, want %q", tt.ptr, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"héllo wörld", 8, "héllo..."},
		{"abc", 0, "abc"},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
