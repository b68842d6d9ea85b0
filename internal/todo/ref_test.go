package todo

import (
	"errors"
	"testing"
)

func TestResolveRef(t *testing.T) {
	tasks := []Task{
		{ID: "3f2a9c10-aaaa", Text: "one"},
		{ID: "3f2b0000-bbbb", Text: "two"},
		{ID: "9e11d2f0-cccc", Text: "three"},
	}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{"first position", "1", "one", nil},
		{"last position", "3", "three", nil},
		{"position with spaces", " 2 ", "two", nil},
		{"zero position", "0", "", ErrIndexOutOfRange},
		{"past the end", "4", "", ErrIndexOutOfRange},
		{"unique prefix", "9e11", "three", nil},
		{"full id", "3f2b0000-bbbb", "two", nil},
		{"prefix too short", "3f2", "", nil},
		{"full id of first", "3f2a9c10-aaaa", "one", nil},
		{"shared prefix", "3f2a", "one", nil},
		{"unknown prefix", "ffff", "", ErrTaskNotFound},
		{"empty", "", "", ErrRefRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRef(tasks, tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveRef(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if tt.want == "" {
				if err == nil {
					t.Fatalf("ResolveRef(%q) expected error", tt.ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveRef(%q) unexpected error: %v", tt.ref, err)
			}
			if got.Text != tt.want {
				t.Errorf("ResolveRef(%q) = %q, want %q", tt.ref, got.Text, tt.want)
			}
		})
	}
}

func TestResolveRefAmbiguous(t *testing.T) {
	tasks := []Task{{ID: "abcd-1"}, {ID: "abcd-2"}}
	_, err := ResolveRef(tasks, "abcd")
	if !errors.Is(err, ErrAmbiguousRef) {
		t.Fatalf("error = %v, want ErrAmbiguousRef", err)
	}
}

func TestResolveRefNumericIDs(t *testing.T) {
	tasks := []Task{
		{ID: "aaaaaaaa-0001", Text: "first"},
		{ID: "00000001-0002", Text: "second"},
		{ID: "47612429-0003", Text: "third"},
		{ID: "00000003-0004", Text: "fourth"},
	}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{"short position", "1", "first", nil},
		{"numeric short id", "47612429", "third", nil},
		{"numeric prefix", "4761", "third", nil},
		{"long number without id match", "0002", "second", nil},
		{"short id shadowed by a position", "00000001", "", ErrAmbiguousRef},
		{"position and id disagree", "00000003", "", ErrAmbiguousRef},
		{"number past the end", "9999", "", ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRef(tasks, tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveRef(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveRef(%q) unexpected error: %v", tt.ref, err)
			}
			if got.Text != tt.want {
				t.Errorf("ResolveRef(%q) = %q, want %q", tt.ref, got.Text, tt.want)
			}
		})
	}
}

func TestResolveRefNumericPrefixSharedByPosition(t *testing.T) {
	// Position 2 and the ID prefix name the same task.
	tasks := []Task{{ID: "9999-a", Text: "a"}, {ID: "0002abcd", Text: "b"}}
	got, err := ResolveRef(tasks, "0002")
	if err != nil || got.Text != "b" {
		t.Fatalf("ResolveRef(0002) = %q, %v", got.Text, err)
	}
}
