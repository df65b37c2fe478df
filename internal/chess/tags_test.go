package chess

import (
	"reflect"
	"testing"
)

func TestHeaderOrder(t *testing.T) {
	h := NewHeader()
	h.Set(EventTag, "Club")
	h.Set(WhiteTag, "A")
	h.Set(BlackTag, "B")
	h.Set(EventTag, "Club final")

	want := []Tag{{EventTag, "Club final"}, {WhiteTag, "A"}, {BlackTag, "B"}}
	if got := h.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v; want %v", got, want)
	}

	h.Delete(EventTag)
	h.Set(EventTag, "Replay")
	want = []Tag{{WhiteTag, "A"}, {BlackTag, "B"}, {EventTag, "Replay"}}
	if got := h.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() after re-adding = %v; want %v", got, want)
	}

	if v, ok := h.Get(BlackTag); !ok || v != "B" {
		t.Errorf("Get(Black) = %q, %v; want B, true", v, ok)
	}
	if _, ok := h.Get(ResultTag); ok {
		t.Error("Get(Result) ok = true; want false")
	}

	h.Delete("Missing")
	if h.Len() != 3 {
		t.Errorf("Len() = %d; want 3", h.Len())
	}

	h.Clear()
	if h.Len() != 0 || len(h.Tags()) != 0 {
		t.Errorf("after Clear, Len() = %d; want 0", h.Len())
	}
}
