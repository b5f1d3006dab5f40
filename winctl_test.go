package winctl

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseHandle(t *testing.T) {
	cases := []struct {
		in      string
		want    Handle
		wantErr bool
	}{
		{in: "0x3400007", want: 0x3400007},
		{in: "0X3400007", want: 0x3400007},
		{in: "54525959", want: 54525959},
		{in: "0", want: 0},
		{in: "", wantErr: true},
		{in: "window", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "0x", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseHandle(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseHandle(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseHandle(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHandle(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatHandleRoundTrip(t *testing.T) {
	const h = Handle(0x2a00003)
	parsed, err := ParseHandle(FormatHandle(h))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != h {
		t.Fatalf("round trip produced %s, want %s", FormatHandle(parsed), FormatHandle(h))
	}
}

func TestErrorSentinelsSurviveWrapping(t *testing.T) {
	sentinels := []error{
		ErrTransport,
		ErrProperty,
		ErrInvalidHandle,
		ErrPartialOperation,
		ErrUnsupported,
	}

	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("%w: detail", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Fatalf("wrapped %v no longer matches its sentinel", sentinel)
		}
	}
}
