// Package synth renders short square-wave blips as 16-bit stereo PCM.
package synth

import (
	"encoding/binary"
	"math"
	"time"
)

const SampleRate = 44100

// Square returns a square wave at freq Hz lasting d, fading linearly to
// silence, as little-endian 16-bit stereo frames at SampleRate.
func Square(freq float64, d time.Duration, volume float64) []byte {
	n := int(d.Seconds() * SampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		val := volume
		if int(float64(i)*freq*2/SampleRate)%2 == 1 {
			val = -volume
		}
		val *= 1 - float64(i)/float64(n)

		v := uint16(int16(math.Round(val * math.MaxInt16)))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}
