package domain

import (
	"testing"
)

func TestSnapshot_DisplayRef(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want string
	}{
		{
			name: "branch only",
			snap: Snapshot{Branch: "main"},
			want: "main",
		},
		{
			name: "tag overrides branch",
			snap: Snapshot{Branch: "main", Tag: "v1.2.0"},
			want: "v1.2.0",
		},
		{
			name: "tag without branch",
			snap: Snapshot{Tag: "v0.9.0"},
			want: "v0.9.0",
		},
		{
			name: "neither",
			snap: Snapshot{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.DisplayRef(); got != tt.want {
				t.Errorf("DisplayRef() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnapshot_Clean(t *testing.T) {
	clean := Snapshot{Branch: "main", Tag: "v1.0.0", Remote: "refs/remotes/origin/main", Ahead: 3, Behind: 1}
	if !clean.Clean() {
		t.Error("Clean() = false for snapshot with only identity and divergence")
	}

	dirty := []Snapshot{
		{IndexNew: 1},
		{IndexModified: 1},
		{IndexDeleted: 1},
		{IndexRenamed: 1},
		{IndexTypeChange: 1},
		{WtNew: 1},
		{WtModified: 1},
		{WtDeleted: 1},
		{WtRenamed: 1},
		{WtTypeChange: 1},
		{Ignored: 1},
		{Conflicted: 1},
	}
	for _, snap := range dirty {
		if snap.Clean() {
			t.Errorf("Clean() = true for %+v", snap)
		}
	}
}
