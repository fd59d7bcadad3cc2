package cpuinfo

import "testing"

func TestFromStringUnknownMapsToNone(t *testing.T) {
	if got := FromString("bogus"); got != None {
		t.Errorf("FromString(bogus) = %v, want None", got)
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	for _, c := range []Class{None, Auto, SSE2, SSE41, AVX, F16C, AVX2} {
		if got := FromString(c.String()); got != c {
			t.Errorf("FromString(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestResolveAutoNeverReturnsAuto(t *testing.T) {
	if got := Resolve(Auto); got == Auto {
		t.Error("Resolve(Auto) returned Auto")
	}
	if got := Resolve(SSE2); got != SSE2 {
		t.Errorf("Resolve(SSE2) = %v, want SSE2", got)
	}
}

func TestSetAndCurrent(t *testing.T) {
	prev := Class(selected.Load())
	defer Set(prev)

	Set(None)
	if got := Current(); got != None {
		t.Errorf("Current() = %v, want None", got)
	}
}
