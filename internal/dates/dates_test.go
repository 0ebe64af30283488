package dates

import (
	"errors"
	"testing"
	"time"
)

func TestParseISO(t *testing.T) {
	got, err := Parse("2025-12-12")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParseSlashWithTimeSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"12/12/2025 15:05:45 EST", time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)},
		{"1/2/2025", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"01/02/2025", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2025-12-12 09:30:00", time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRFC3339(t *testing.T) {
	got, err := Parse("2025-06-03T14:30:00Z")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if KeyOf(got) != "2025-06-03" {
		t.Errorf("KeyOf = %q, want 2025-06-03", KeyOf(got))
	}
}

func TestParseUnparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-date", "13/45/2025"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrUnparseableDate) {
			t.Errorf("Parse(%q) error = %v, want ErrUnparseableDate", in, err)
		}
	}
}

func TestKeyNormalizes(t *testing.T) {
	if got := Key("12/12/2025 15:05:45 EST"); got != "2025-12-12" {
		t.Errorf("Key = %q, want 2025-12-12", got)
	}
	if got := Key("2025-01-05"); got != "2025-01-05" {
		t.Errorf("Key = %q, want 2025-01-05", got)
	}
}

func TestKeyPassesThroughMalformed(t *testing.T) {
	// Malformed rows keep their raw value so they group together
	// without colliding with a real day.
	if got := Key("garbage"); got != "garbage" {
		t.Errorf("Key = %q, want garbage", got)
	}
}
