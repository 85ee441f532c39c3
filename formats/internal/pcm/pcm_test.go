// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader simulates a go-audio decoder: it fills buffers from samples
// and returns a short read with a nil error at the end.
type mockReader struct {
	samples []int
	offset  int
	err     error
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

var stereo = &goaudio.Format{SampleRate: 44100, NumChannels: 2}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := NewSource(&mockReader{}, stereo, 24)
	if s.SampleRate() != 44100 || s.Channels() != 2 || s.BitDepth() != 24 {
		t.Errorf("SampleRate/Channels/BitDepth = %d/%d/%d", s.SampleRate(), s.Channels(), s.BitDepth())
	}
	if s.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096 before the first read", s.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		samples  []int
		want     []float32
	}{
		{"16-bit", 16, []int{0, 16384, -32768, 32767}, []float32{0, 0.5, -1, 32767.0 / 32768}},
		{"24-bit", 24, []int{1 << 22, -(1 << 22)}, []float32{0.5, -0.5}},
		{"32-bit", 32, []int{1 << 30, -(1 << 31)}, []float32{0.5, -1}},
		{"8-bit", 8, []int{64, -128}, []float32{0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSource(&mockReader{samples: tt.samples}, stereo, tt.bitDepth)
			dst := make([]float32, 16)

			n, err := s.ReadSamples(dst)
			if n != len(tt.want) || !errors.Is(err, io.EOF) {
				t.Fatalf("ReadSamples() = %d, %v, want %d, EOF", n, err, len(tt.want))
			}
			for i, w := range tt.want {
				if dst[i] != w {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
				}
			}

			if n, err := s.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
				t.Errorf("ReadSamples() after end = %d, %v", n, err)
			}
		})
	}
}

func TestSource_ChunkedReads(t *testing.T) {
	t.Parallel()

	samples := make([]int, 1000)
	for i := range samples {
		samples[i] = i
	}
	s := NewSource(&mockReader{samples: samples}, stereo, 16)

	dst := make([]float32, 300)
	total := 0
	for {
		n, err := s.ReadSamples(dst)
		for i := range n {
			if want := float32(total+i) / 32768; dst[i] != want {
				t.Fatalf("sample %d = %v, want %v", total+i, dst[i], want)
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
	if total != 1000 {
		t.Errorf("read %d samples, want 1000", total)
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	s := NewSource(&mockReader{err: io.ErrUnexpectedEOF}, stereo, 16)
	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	s := NewSource(&mockReader{samples: []int{1}}, stereo, 16)
	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v", n, err)
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	br := bytes.NewReader([]byte("abc"))
	rs, err := ReadSeeker(br)
	if err != nil || rs != io.ReadSeeker(br) {
		t.Errorf("ReadSeeker(seekable) = %v, %v, want the same reader", rs, err)
	}

	// strings.NewReader is seekable too; hide it behind a plain reader.
	rs, err = ReadSeeker(io.LimitReader(strings.NewReader("hello"), 5))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "ello" {
		t.Errorf("read after seek = %q, want %q", rest, "ello")
	}
}
