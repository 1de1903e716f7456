package roster

import "testing"

func TestStatusLabel(t *testing.T) {
	cases := map[int]string{
		StatusPending:    "Pending",
		StatusApproved:   "Approved",
		StatusDenied:     "Denied",
		StatusWaitlisted: "Waitlisted",
		0:                "Other",
		3:                "Other",
		99:               "Other",
	}
	for code, want := range cases {
		if got := StatusLabel(code); got != want {
			t.Fatalf("status %d: got %q want %q", code, got, want)
		}
	}
}

func TestFullName(t *testing.T) {
	if got := FullName(" Alice ", " Smith "); got != "Smith, Alice" {
		t.Fatalf("got %q", got)
	}
	if got := FullName("Alice", ""); got != "Alice" {
		t.Fatalf("got %q", got)
	}
	if got := FullName("", "Smith"); got != "Smith" {
		t.Fatalf("got %q", got)
	}
	if got := FullName("", ""); got != "" {
		t.Fatalf("got %q", got)
	}
}
