package tone

import "encoding/binary"

// HeaderSize is the fixed byte length of the RIFF/fmt/data preamble.
const HeaderSize = 44

// WAV wraps interleaved 16-bit stereo samples in a canonical little-endian
// PCM WAVE container.
func WAV(samples []int16) []byte {
	dataSize := len(samples) * bytesPerSample
	buf := make([]byte, HeaderSize+dataSize)

	le := binary.LittleEndian
	copy(buf[0:4], "RIFF")
	le.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	le.PutUint32(buf[16:20], 16) // PCM fmt chunk size
	le.PutUint16(buf[20:22], 1)  // PCM
	le.PutUint16(buf[22:24], Channels)
	le.PutUint32(buf[24:28], SampleRate)
	le.PutUint32(buf[28:32], SampleRate*Channels*bytesPerSample) // byte rate
	le.PutUint16(buf[32:34], Channels*bytesPerSample)            // block align
	le.PutUint16(buf[34:36], 16)                                 // bits per sample

	copy(buf[36:40], "data")
	le.PutUint32(buf[40:44], uint32(dataSize))

	for i, s := range samples {
		le.PutUint16(buf[HeaderSize+i*2:], uint16(s))
	}
	return buf
}
