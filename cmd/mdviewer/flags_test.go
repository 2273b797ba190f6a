package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     cliFlags
		wantArgs []string
		wantErr  error
	}{
		{
			name:     "defaults",
			args:     []string{"a.md"},
			want:     cliFlags{},
			wantArgs: []string{"a.md"},
		},
		{
			name:     "interspersed flags",
			args:     []string{"a.md", "--out", "x.html", "--no-open", "b.md"},
			want:     cliFlags{output: "x.html", noOpen: true},
			wantArgs: []string{"a.md", "b.md"},
		},
		{
			name: "short flags",
			args: []string{"-o", "site", "-c", "cfg.json", "-w", "3", "-q", "a.md"},
			want: cliFlags{output: "site", config: "cfg.json", workers: 3, quiet: true},
			wantArgs: []string{"a.md"},
		},
		{
			name: "rendering flags",
			args: []string{"--title", "T", "--heading-title", "--engine", "goldmark", "--asset-path", "assets", "a.md"},
			want: cliFlags{title: "T", headingTitle: true, engine: "goldmark", assetPath: "assets"},
			wantArgs: []string{"a.md"},
		},
		{
			name:    "negative workers",
			args:    []string{"-w", "-1", "a.md"},
			wantErr: ErrUsage,
		},
		{
			name:    "quiet and verbose",
			args:    []string{"-q", "-v", "a.md"},
			wantErr: ErrUsage,
		},
		{
			name:    "unknown flag",
			args:    []string{"--pdf"},
			wantErr: ErrUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, args, err := parseFlags(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseFlags() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("flags = %+v, want %+v", *got, tt.want)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}
