package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	ebolg "github.com/pvidal/ebolg"
	"github.com/pvidal/ebolg/internal/config"
	"github.com/pvidal/ebolg/internal/dateutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "file not found",
			err:  fmt.Errorf("reading: %w", os.ErrNotExist),
			want: ExitIO,
		},
		{
			name: "permission denied",
			err:  fmt.Errorf("opening: %w", os.ErrPermission),
			want: ExitIO,
		},
		{
			name: "no input",
			err:  ErrNoInput,
			want: ExitUsage,
		},
		{
			name: "no output",
			err:  ErrNoOutput,
			want: ExitUsage,
		},
		{
			name: "write failure",
			err:  fmt.Errorf("%w: disk full", ErrWritePage),
			want: ExitIO,
		},
		{
			name: "config not found",
			err:  fmt.Errorf("loading config: %w", config.ErrConfigNotFound),
			want: ExitUsage,
		},
		{
			name: "config parse failure",
			err:  fmt.Errorf("loading config: %w", config.ErrConfigParse),
			want: ExitUsage,
		},
		{
			name: "invalid extension",
			err:  fmt.Errorf("%w: got .txt", ErrInvalidExtension),
			want: ExitUsage,
		},
		{
			name: "invalid worker count",
			err:  ErrInvalidWorkerCount,
			want: ExitUsage,
		},
		{
			name: "missing frontmatter title",
			err:  fmt.Errorf("post.md: %w", ebolg.ErrMissingTitle),
			want: ExitUsage,
		},
		{
			name: "missing frontmatter",
			err:  ebolg.ErrNoFrontMatter,
			want: ExitUsage,
		},
		{
			name: "invalid date",
			err:  fmt.Errorf("post.md: %w", dateutil.ErrInvalidDate),
			want: ExitUsage,
		},
		{
			name: "invalid date format",
			err:  dateutil.ErrInvalidDateFormat,
			want: ExitUsage,
		},
		{
			name: "invalid asset dir",
			err:  ebolg.ErrInvalidAssetDir,
			want: ExitUsage,
		},
		{
			name: "unexpected error",
			err:  errors.New("something broke"),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
