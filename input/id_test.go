package input_test

import (
	"testing"

	"github.com/lodygan/framewise/event"
	"github.com/lodygan/framewise/input"
)

func TestIDEquality(t *testing.T) {
	if input.Key(event.KeyW) != input.Key(event.KeyW) {
		t.Error("identical key ids compare unequal")
	}
	if input.Key(event.KeyW) == input.Key(event.KeyS) {
		t.Error("distinct key ids compare equal")
	}
	if input.Key(event.Key(0)) == input.Mouse(event.Button(0)) {
		t.Error("key and mouse ids with matching payloads compare equal")
	}
}

func TestIDStringRoundTrip(t *testing.T) {
	cases := []input.ID{
		input.Key(event.KeyW),
		input.Key(event.KeySpace),
		input.Key(event.KeyF11),
		input.Mouse(event.ButtonLeft),
		input.Mouse(event.ButtonX2),
	}
	for _, id := range cases {
		parsed, err := input.ParseID(id.String())
		if err != nil {
			t.Errorf("ParseID(%q): %v", id.String(), err)
			continue
		}
		if parsed != id {
			t.Errorf("round trip of %q = %v, want %v", id.String(), parsed, id)
		}
	}
}

func TestParseIDRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "w", "key:", "key:notakey", "mouse:fourth", "pad:a"} {
		if _, err := input.ParseID(s); err == nil {
			t.Errorf("ParseID(%q) succeeded, want error", s)
		}
	}
}
