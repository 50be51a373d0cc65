package commands

import (
	"errors"
	"testing"
)

func TestParseTaskRef(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr string
	}{
		{name: "simple number", args: []string{"1"}, want: 1},
		{name: "multi digit", args: []string{"42"}, want: 42},
		{name: "no args", args: nil, wantErr: "task reference required"},
		{name: "zero", args: []string{"0"}, wantErr: "invalid task reference: 0"},
		{name: "word", args: []string{"abc"}, wantErr: "invalid task reference: abc"},
		{name: "mixed", args: []string{"1a"}, wantErr: "invalid task reference: 1a"},
		{name: "negative", args: []string{"-1"}, wantErr: "invalid task reference: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaskRef(tt.args)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got none", tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("expected error %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseTaskRef_RequiredSentinel(t *testing.T) {
	_, err := ParseTaskRef(nil)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}
