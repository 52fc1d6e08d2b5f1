package validation

import (
	"testing"
)

func TestValidateFixturePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "session.yaml", false},
		{"nested", "fixtures/session.yaml", false},
		{"absolute", "/tmp/session.yaml", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"traversal", "../../etc/passwd.yaml", true},
		{"traversal nested", "fixtures/../../secret.yaml", true},
		{"wrong extension", "session.json", true},
		{"no extension", "session", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFixturePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFixturePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFixturePaths(t *testing.T) {
	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{"all valid", []string{"a.yaml", "b.yaml"}, false},
		{"one invalid", []string{"a.yaml", "bad.json"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFixturePaths(tt.paths)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFixturePaths(%v) error = %v, wantErr %v", tt.paths, err, tt.wantErr)
			}
		})
	}
}
