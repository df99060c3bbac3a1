package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple", id: "node-1", wantErr: false},
		{name: "qualified", id: "src/lib/utils.ts#parseConfig", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "control character", id: "node\x01", wantErr: true},
		{name: "newline", id: "node\n1", wantErr: true},
		{name: "too long", id: strings.Repeat("x", 257), wantErr: true},
		{name: "max length", id: strings.Repeat("x", 256), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGraph) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidGraph)
			}
		})
	}
}

func TestValidateGraphIDs(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		wantErr bool
	}{
		{name: "empty set", ids: nil, wantErr: false},
		{name: "unique", ids: []string{"a", "b", "c"}, wantErr: false},
		{name: "duplicate", ids: []string{"a", "b", "a"}, wantErr: true},
		{name: "invalid member", ids: []string{"a", ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGraphIDs(tt.ids)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGraphIDs(%v) = %v, wantErr %v", tt.ids, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "relative", path: "out/layout.json", wantErr: false},
		{name: "absolute", path: "/tmp/layout.json", wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "null byte", path: "out\x00.json", wantErr: true},
		{name: "too long", path: strings.Repeat("a/", 300), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDirection(t *testing.T) {
	for _, dir := range []string{"TB", "LR", "tb", "lr"} {
		if err := ValidateDirection(dir); err != nil {
			t.Errorf("ValidateDirection(%q) = %v, want nil", dir, err)
		}
	}
	for _, dir := range []string{"", "BT", "RL", "diagonal"} {
		if err := ValidateDirection(dir); !Is(err, ErrCodeInvalidConfig) {
			t.Errorf("ValidateDirection(%q) = %v, want INVALID_CONFIG", dir, err)
		}
	}
}
