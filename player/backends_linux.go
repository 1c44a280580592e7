//go:build linux

package player

// Probe order matches availability on typical desktops: ALSA first, then
// PulseAudio, then vorbis-tools.
func candidates() []candidate {
	plain := func(bin string) candidate {
		return candidate{bin: bin, argv: func(path string) []string {
			return []string{bin, path}
		}}
	}
	return []candidate{
		plain("aplay"),
		plain("paplay"),
		plain("ogg123"),
	}
}
