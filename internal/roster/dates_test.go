package roster

import (
	"testing"
	"time"
)

func TestDecodeDateRoundTrip(t *testing.T) {
	for _, value := range []int{20250101, 20250315, 20241231, 20240229, 19991231} {
		date, err := DecodeDate(value)
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", value, err)
		}
		if got := EncodeDate(date); got != value {
			t.Fatalf("round trip %d: got %d", value, got)
		}
	}
}

func TestDecodeDateInvalid(t *testing.T) {
	for _, value := range []int{0, 99, 20250001, 20250132, 20250230, 20251301, 20230229} {
		if _, err := DecodeDate(value); err == nil {
			t.Fatalf("expected error for %d", value)
		}
	}
}

func TestDecodeTime(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		5:    "00:05",
		800:  "08:00",
		1230: "12:30",
		2359: "23:59",
		2400: "00:00",
	}
	for value, want := range cases {
		got, err := DecodeTime(value)
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", value, err)
		}
		if got != want {
			t.Fatalf("decode %d: got %q want %q", value, got, want)
		}
	}
}

func TestDecodeTimeInvalid(t *testing.T) {
	for _, value := range []int{-1, 1290, 2401, 2460, 9999} {
		if _, err := DecodeTime(value); err == nil {
			t.Fatalf("expected error for %d", value)
		}
	}
}

func TestCombineDateTime(t *testing.T) {
	start, err := CombineDateTime(20250315, 800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Fatalf("expected %v, got %v", want, start)
	}
}

func TestCombineDateTimeMidnightRollover(t *testing.T) {
	end, err := CombineDateTime(20250315, 2400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Fatalf("expected %v, got %v", want, end)
	}
}
