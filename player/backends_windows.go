//go:build windows

package player

// Windows plays through the bundled scripting host; Media.SoundPlayer
// blocks until done, which the detached wait absorbs.
func candidates() []candidate {
	return []candidate{
		{bin: "powershell", argv: func(path string) []string {
			return []string{
				"powershell", "-NoProfile", "-c",
				"(New-Object Media.SoundPlayer '" + path + "').PlaySync()",
			}
		}},
	}
}
