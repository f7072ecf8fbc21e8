package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"brawler/internal/character"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSynthesizeIsDeterministic(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		a, b := Synthesize(c), Synthesize(c)
		if len(a) == 0 {
			t.Errorf("Expected samples for %s, got none", c)
			continue
		}
		if len(a) != len(b) {
			t.Fatalf("Expected equal lengths for %s, got %d and %d", c, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("Expected identical sample %d for %s, got %v and %v", i, c, a[i], b[i])
				break
			}
		}
	}
}

func TestSynthesizeIsBounded(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		peak := float32(0)
		for _, s := range Synthesize(c) {
			if s < -1 || s > 1 || math.IsNaN(float64(s)) {
				t.Fatalf("Expected %s samples in [-1, 1], got %v", c, s)
			}
			peak = max(peak, float32(math.Abs(float64(s))))
		}
		if peak < 0.05 {
			t.Errorf("Expected %s to be audible, got peak %v", c, peak)
		}
	}
}

func TestSynthesizeUnknownCue(t *testing.T) {
	if s := Synthesize(cueCount); s != nil {
		t.Errorf("Expected nil for unknown cue, got %d samples", len(s))
	}
	if Cue(-1).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", Cue(-1))
	}
}

func TestSpatializePansTowardSource(t *testing.T) {
	l := NewListener(rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{Y: 1})
	if l.Right != (rl.Vector3{X: 1}) {
		t.Fatalf("Expected right +X, got %v", l.Right)
	}

	left, right := Spatialize(l, rl.Vector3{X: 1}, 50)
	if right <= left {
		t.Errorf("Expected source on the right to be louder in the right ear, got L=%v R=%v", left, right)
	}
	left, right = Spatialize(l, rl.Vector3{X: -1}, 50)
	if left <= right {
		t.Errorf("Expected source on the left to be louder in the left ear, got L=%v R=%v", left, right)
	}
	left, right = Spatialize(l, rl.Vector3{Z: -1}, 50)
	if left != right {
		t.Errorf("Expected centered source to be balanced, got L=%v R=%v", left, right)
	}
}

func TestSpatializeAttenuatesWithDistance(t *testing.T) {
	l := NewListener(rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{Y: 1})
	nearL, _ := Spatialize(l, rl.Vector3{Z: -1}, 50)
	farL, _ := Spatialize(l, rl.Vector3{Z: -20}, 50)
	goneL, goneR := Spatialize(l, rl.Vector3{Z: -60}, 50)
	if nearL != 1 {
		t.Errorf("Expected full gain inside the reference distance, got %v", nearL)
	}
	if farL >= nearL {
		t.Errorf("Expected far source quieter, got near %v far %v", nearL, farL)
	}
	if goneL != 0 || goneR != 0 {
		t.Errorf("Expected silence beyond max distance, got L=%v R=%v", goneL, goneR)
	}
}

func TestCueReaderStreamsStereo(t *testing.T) {
	r := &cueReader{samples: []float32{0.5, -0.5, 0.25}, left: 1, right: 0.5}
	buf := make([]byte, 64)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != 24 {
		t.Fatalf("Expected 24 bytes, got %d", n)
	}
	l := math.Float32frombits(binary.LittleEndian.Uint32(buf[8:]))
	rr := math.Float32frombits(binary.LittleEndian.Uint32(buf[12:]))
	if l != -0.5 || rr != -0.25 {
		t.Errorf("Expected frame (-0.5, -0.25), got (%v, %v)", l, rr)
	}
	if _, err := r.Read(buf); err != io.EOF {
		t.Errorf("Expected EOF after the last frame, got %v", err)
	}
}

func TestCueFor(t *testing.T) {
	cases := []struct {
		event character.Event
		cue   Cue
		ok    bool
	}{
		{character.Event{Kind: character.EventHit, Amount: 15}, CueHit, true},
		{character.Event{Kind: character.EventHit, Amount: 35}, CueHeavyHit, true},
		{character.Event{Kind: character.EventKnockedOut}, CueKnockout, true},
		{character.Event{Kind: character.EventThrown}, CueThrow, true},
		{character.Event{Kind: character.EventBoosted}, CueBoost, true},
		{character.Event{Kind: character.EventGrabbed}, 0, false},
	}
	for _, tc := range cases {
		c, intensity, ok := CueFor(tc.event)
		if ok != tc.ok || (ok && c != tc.cue) {
			t.Errorf("%s: expected (%s, %v), got (%s, %v)", tc.event.Kind, tc.cue, tc.ok, c, ok)
		}
		if ok && (intensity <= 0 || intensity > 1) {
			t.Errorf("%s: expected intensity in (0, 1], got %v", tc.event.Kind, intensity)
		}
	}
}

func TestThudIntensity(t *testing.T) {
	if ThudIntensity(1) != 0 {
		t.Errorf("Expected soft contact to be silent, got %v", ThudIntensity(1))
	}
	if ThudIntensity(50) != 1 {
		t.Errorf("Expected hard contact capped at 1, got %v", ThudIntensity(50))
	}
}
