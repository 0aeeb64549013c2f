package path

import "testing"

func TestNormalise(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		// Basic paths
		{"guides/install.md", "guides/install.md", false},
		{"index.md", "index.md", false},

		// Leading/trailing slashes
		{"/guides/install.md", "guides/install.md", false},
		{"guides/", "guides", false},

		// Windows separators
		{`guides\install.md`, "guides/install.md", false},

		// Traversal paths that resolve cleanly (not rejected)
		{"guides/../index.md", "index.md", false},

		// Invalid paths
		{"", "", true},
		{".", "", true},
		{"..", "", true},
		{"../outside.md", "", true},
		{"/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalise(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Normalise(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Normalise(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirPath(t *testing.T) {
	tests := []struct {
		parent, name string
		want         string
		wantErr      bool
	}{
		{"", "Guides", "guides", false},
		{"User Guide", "Getting Started", "user_guide/getting_started", false},
		{"User Guide/Advanced Topics", "tuning", "user_guide/advanced_topics/tuning", false},
		{"guides", "..", "", true},
		{"guides", "", "", true},
		{"../..", "secrets", "secrets", false},
	}
	for _, tt := range tests {
		got, err := DirPath(tt.parent, tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("DirPath(%q, %q) error = %v, wantErr %v", tt.parent, tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("DirPath(%q, %q) = %q, want %q", tt.parent, tt.name, got, tt.want)
		}
	}
}

func TestPagePath(t *testing.T) {
	got, err := PagePath("Guides", "Install")
	if err != nil {
		t.Fatalf("PagePath() error = %v", err)
	}
	if got != "guides/install.md" {
		t.Errorf("PagePath() = %q, want %q", got, "guides/install.md")
	}
	if !IsPage(got) {
		t.Errorf("IsPage(%q) = false, want true", got)
	}
	if IsPage("guides") {
		t.Error("IsPage(guides) = true, want false")
	}
}
