package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// ErrUnsupported is returned for fanfare files with an unknown extension.
var ErrUnsupported = errors.New("unsupported audio file type")

// FanfareExts lists the extensions LoadFanfare can decode.
var FanfareExts = []string{".wav", ".mp3", ".flac"}

// SupportedFanfare reports whether path has a decodable extension.
func SupportedFanfare(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range FanfareExts {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadFanfare decodes a whole audio file into memory, resampled to rate.
// The file is closed before returning.
func LoadFanfare(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fanfare: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode fanfare %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	out := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	out.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read fanfare %s: %w", filepath.Base(path), err)
	}
	return out, nil
}
