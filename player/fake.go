package player

import "sync"

// Fake records playback requests instead of shelling out. For tests.
type Fake struct {
	mu     sync.Mutex
	played []string
}

func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) Backend() string { return "fake" }

func (f *Fake) Play(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, name)
}

// Played returns the sound names played so far, in order.
func (f *Fake) Played() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.played))
	copy(out, f.played)
	return out
}
