// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// rawAIFF builds a minimal AIFF with a COMM and an SSND chunk holding
// frames of silence. The sample rate is 44100 as an 80-bit extended float.
func rawAIFF(channels, bits, frames int) []byte {
	var b bytes.Buffer
	dataBytes := frames * channels * bits / 8

	b.WriteString("FORM")
	_ = binary.Write(&b, binary.BigEndian, uint32(4+8+18+8+8+dataBytes))
	b.WriteString("AIFF")

	b.WriteString("COMM")
	_ = binary.Write(&b, binary.BigEndian, uint32(18))
	_ = binary.Write(&b, binary.BigEndian, uint16(channels))
	_ = binary.Write(&b, binary.BigEndian, uint32(frames))
	_ = binary.Write(&b, binary.BigEndian, uint16(bits))
	b.Write([]byte{0x40, 0x0E, 0xAC, 0x44, 0, 0, 0, 0, 0, 0})

	b.WriteString("SSND")
	_ = binary.Write(&b, binary.BigEndian, uint32(8+dataBytes))
	_ = binary.Write(&b, binary.BigEndian, uint32(0)) // offset
	_ = binary.Write(&b, binary.BigEndian, uint32(0)) // block size
	b.Write(make([]byte, dataBytes))

	return b.Bytes()
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not AIFF data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestDecoder_Silence(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(rawAIFF(2, 16, 100)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Errorf("SampleRate/Channels = %d/%d, want 44100/2", src.SampleRate(), src.Channels())
	}

	buf := make([]float32, 64)
	total := 0
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			if v != 0 {
				t.Fatalf("non-zero sample %v", v)
			}
		}
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if total != 200 {
		t.Errorf("read %d samples, want 200", total)
	}
}

func TestDecoder_UnsupportedBitDepth(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(rawAIFF(1, 12, 16)))
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Decode(12-bit) error = %v, want ErrUnsupportedBitDepth", err)
	}
}
