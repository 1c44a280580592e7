// Package tone synthesizes the canonical notification sounds as 16-bit
// stereo PCM and persists them as WAV assets.
//
// Assets are cached by filename only: once a <name>.wav exists it is reused
// forever, even if the canonical table changes. Delete the file to force a
// regeneration.
package tone

import (
	"math"
	"os"
	"path/filepath"

	"tars/log"
)

const (
	SampleRate = 44100
	Channels   = 2

	bytesPerSample = 2 // 16-bit signed little-endian
)

// Shape selects the amplitude envelope and frequency law of a tone.
type Shape int

const (
	Beep Shape = iota
	Success
	Error
	Ping
	Complete
)

// Spec describes one synthesizable tone.
type Spec struct {
	Name     string
	Freq     float64 // base frequency, Hz
	Duration float64 // seconds
	Shape    Shape
}

// Canonical is the fixed tone table. Not user-extensible at runtime.
var Canonical = []Spec{
	{Name: "success", Freq: 880, Duration: 0.4, Shape: Success},
	{Name: "error", Freq: 440, Duration: 0.5, Shape: Error},
	{Name: "ping", Freq: 1200, Duration: 0.15, Shape: Ping},
	{Name: "complete", Freq: 660, Duration: 0.6, Shape: Complete},
}

// Names returns the known sound names in table order.
func Names() []string {
	names := make([]string, len(Canonical))
	for i, s := range Canonical {
		names[i] = s.Name
	}
	return names
}

// Path returns the asset path for a sound name inside dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+".wav")
}

// Synthesize renders interleaved stereo samples for the given tone. Both
// channels carry the same mono content. Deterministic: identical inputs
// produce identical samples.
func Synthesize(freq, duration float64, shape Shape) []int16 {
	n := int(duration * float64(SampleRate))
	samples := make([]int16, n*Channels)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(SampleRate)
		f, envelope, peak := shapeAt(shape, freq, duration, t)
		v := math.Round(32767 * peak * envelope * math.Sin(2*math.Pi*f*t))
		s := clamp16(v)
		samples[i*2] = s
		samples[i*2+1] = s
	}
	return samples
}

// shapeAt returns the instantaneous frequency, envelope and peak scale at
// time t for a shape.
func shapeAt(shape Shape, freq, duration, t float64) (f, envelope, peak float64) {
	switch shape {
	case Beep:
		// Full volume for the first 10%, then half.
		envelope = 0.5
		if t < duration*0.1 {
			envelope = 1.0
		}
		return freq, envelope, 0.3
	case Success:
		// Ascending two-tone with linear decay.
		f = freq
		if t >= duration/2 {
			f = freq * 1.5
		}
		return f, 1 - t/duration, 0.3
	case Error:
		// Downward sweep, constant volume.
		return freq * (1 - 0.5*t/duration), 1.0, 0.3
	case Ping:
		// Short high ping with fast decay.
		return freq, math.Max(0, 1-3*t/duration), 0.2
	case Complete:
		// Three rising steps with linear decay.
		step := math.Floor(3 * t / duration)
		return freq * (1 + 0.5*step), 1 - t/duration, 0.25
	default:
		return freq, 0, 0
	}
}

func clamp16(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// Render synthesizes a tone and wraps it in a WAV container.
func Render(s Spec) []byte {
	return WAV(Synthesize(s.Freq, s.Duration, s.Shape))
}

// EnsureAll generates any missing canonical assets under dir. Existing
// files are left untouched regardless of content.
func EnsureAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, s := range Canonical {
		path := Path(dir, s.Name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, Render(s), 0644); err != nil {
			return err
		}
		log.Infof("generated %s", path)
	}
	return nil
}
