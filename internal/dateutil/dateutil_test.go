package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "ISO date",
			input: "2024-03-01",
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "ISO date with time",
			input: "2024-03-01 14:30:00",
			want:  time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339",
			input: "2024-03-01T14:30:00Z",
			want:  time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "long form",
			input: "March 1, 2024",
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "abbreviated month",
			input: "Mar 1, 2024",
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "day first",
			input: "01 Mar 2024",
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "slash separated",
			input: "2024/03/01",
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  2024-03-01  ",
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty value", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "garbage", input: "not-a-date"},
		{name: "wrong order", input: "01-03-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDate(tt.input)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%q) error = %v, want %v", tt.input, err, ErrInvalidDate)
			}
		})
	}
}

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "full tokens",
			format: "YYYY-MM-DD",
			want:   "2006-01-02",
		},
		{
			name:   "long month",
			format: "MMMM D, YYYY",
			want:   "January 2, 2006",
		},
		{
			name:   "abbreviated month",
			format: "MMM D YY",
			want:   "Jan 2 06",
		},
		{
			name:   "single digit tokens",
			format: "M/D/YYYY",
			want:   "1/2/2006",
		},
		{
			name:   "literal characters preserved",
			format: "YYYY.MM.DD",
			want:   "2006.01.02",
		},
		{
			name:   "bracket escaped literal",
			format: "[posted] DD/MM",
			want:   "posted 02/01",
		},
		{
			name:   "preset iso",
			format: "iso",
			want:   "2006-01-02",
		},
		{
			name:   "preset case-insensitive",
			format: "ISO",
			want:   "2006-01-02",
		},
		{
			name:   "preset european",
			format: "european",
			want:   "02/01/2006",
		},
		{
			name:   "preset us",
			format: "us",
			want:   "01/02/2006",
		},
		{
			name:   "preset long",
			format: "long",
			want:   "January 2, 2006",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) error = %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseDateFormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
	}{
		{name: "empty format", format: ""},
		{name: "too long", format: strings.Repeat("Y", MaxDateFormatLength+1)},
		{name: "unclosed bracket", format: "[posted DD/MM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDateFormat(tt.format)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseDateFormat(%q) error = %v, want %v", tt.format, err, ErrInvalidDateFormat)
			}
		})
	}
}

// The converted layout must round-trip through time.Format sensibly.
func TestParseDateFormatRoundTrip(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{format: "MMMM D, YYYY", want: "March 1, 2024"},
		{format: "iso", want: "2024-03-01"},
		{format: "DD/MM/YYYY", want: "01/03/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			layout, err := ParseDateFormat(tt.format)
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) error = %v", tt.format, err)
			}
			if got := date.Format(layout); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
