package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"wemtool/internal/application"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing mapping", fmt.Errorf("wem_mapping.json: %w", application.ErrMappingNotFound), "wemtool-cli scan"},
		{"empty index", application.ErrIndexEmpty, "wemtool-cli index"},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := explain(tt.err); !strings.Contains(got, tt.want) {
				t.Errorf("explain() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
