package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shared oto context; oto allows only one per process.
var (
	otoContext     *oto.Context
	otoContextOnce sync.Once
	otoContextErr  error
)

func initOtoContext() error {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
		}
		var ready chan struct{}
		otoContext, ready, otoContextErr = oto.NewContext(op)
		if otoContextErr != nil {
			otoContextErr = fmt.Errorf("audio: create oto context: %w", otoContextErr)
			return
		}
		<-ready
		log.Println("Audio: oto context initialized")
	})
	return otoContextErr
}

// Manager plays one-shot cues positioned in the world.
type Manager struct {
	mu          sync.Mutex
	listener    Listener
	players     []*oto.Player
	Volume      float32
	MaxDistance float32
	enabled     bool
}

// NewManager opens the audio device. The returned error is non-nil when no
// device is available; callers run without sound in that case.
func NewManager() (*Manager, error) {
	if err := initOtoContext(); err != nil {
		return nil, err
	}
	return &Manager{
		listener:    Listener{Forward: rl.Vector3{Z: -1}, Right: rl.Vector3{X: 1}},
		Volume:      0.8,
		MaxDistance: 60,
		enabled:     true,
	}, nil
}

// SetEnabled mutes or unmutes new cues. Cues already playing finish.
func (m *Manager) SetEnabled(enabled bool) {
	m.mu.Lock()
	m.enabled = enabled
	m.mu.Unlock()
}

func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// SetListener updates the listener position and orientation
func (m *Manager) SetListener(pos, forward, up rl.Vector3) {
	m.mu.Lock()
	m.listener = NewListener(pos, forward, up)
	m.mu.Unlock()
}

// Play starts cue at pos scaled by intensity (0..1).
func (m *Manager) Play(c Cue, pos rl.Vector3, intensity float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled || otoContext == nil || c < 0 || c >= cueCount {
		return
	}
	left, right := Spatialize(m.listener, pos, m.MaxDistance)
	g := m.Volume * min(max(intensity, 0), 1)
	if left*g < 0.001 && right*g < 0.001 {
		return
	}
	p := otoContext.NewPlayer(&cueReader{samples: samples(c), left: left * g, right: right * g})
	p.Play()
	m.players = append(m.players, p)
	m.prune()
}

// Update releases finished players. Call once per frame.
func (m *Manager) Update() {
	m.mu.Lock()
	m.prune()
	m.mu.Unlock()
}

func (m *Manager) prune() {
	live := m.players[:0]
	for _, p := range m.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	for i := len(live); i < len(m.players); i++ {
		m.players[i] = nil
	}
	m.players = live
}

// Playing reports how many cues are still sounding.
func (m *Manager) Playing() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.players)
}

// Close stops every cue.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		p.Close()
	}
	m.players = nil
}

// cueReader streams mono samples as stereo float32 frames with fixed gains.
type cueReader struct {
	samples     []float32
	playhead    int
	left, right float32
}

func (r *cueReader) Read(buf []byte) (int, error) {
	frames := len(buf) / 8
	n := 0
	for ; n < frames && r.playhead < len(r.samples); n++ {
		s := r.samples[r.playhead]
		r.playhead++
		writeFloat32LE(buf[n*8:], s*r.left)
		writeFloat32LE(buf[n*8+4:], s*r.right)
	}
	if n == 0 && frames > 0 {
		return 0, io.EOF
	}
	return n * 8, nil
}

func writeFloat32LE(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
