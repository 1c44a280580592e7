//go:build darwin

package player

func candidates() []candidate {
	return []candidate{
		{bin: "afplay", argv: func(path string) []string {
			return []string{"afplay", path}
		}},
	}
}
