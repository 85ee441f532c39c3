// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// rawWAV builds a canonical 44-byte header followed by dataBytes zero bytes.
func rawWAV(format, channels, sampleRate, bits, dataBytes int) []byte {
	blockAlign := channels * bits / 8
	header := make([]byte, 44+dataBytes)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataBytes))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], uint16(format))
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bits))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataBytes))

	return header
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"text", []byte("This is not WAV data at all, not even close."), ErrNotWavFile},
		{"empty", nil, ErrNotWavFile},
		{"float", rawWAV(3, 2, 48000, 32, 16), ErrUnsupportedEncoding},
		{"8-bit", rawWAV(formatPCM, 1, 8000, 8, 16), ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_SilentStereo(t *testing.T) {
	t.Parallel()

	// 100 frames of 16-bit stereo silence
	src, err := Decoder{}.Decode(bytes.NewReader(rawWAV(formatPCM, 2, 22050, 16, 400)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("SampleRate/Channels = %d/%d, want 22050/2", src.SampleRate(), src.Channels())
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

// onlyReader hides Seek so Decode has to buffer.
type onlyReader struct{ r io.Reader }

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

func TestDecoder_NonSeekableInput(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(onlyReader{bytes.NewReader(rawWAV(formatPCM, 1, 8000, 24, 30))})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 1 || src.SampleRate() != 8000 {
		t.Errorf("SampleRate/Channels = %d/%d", src.SampleRate(), src.Channels())
	}
}
