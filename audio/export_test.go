package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteWAV verifies a written effect decodes as 16-bit mono
func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pop.wav")
	require.NoError(t, WriteWAV(path, EffectPop, 8000))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	s, format, err := wav.Decode(f)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 1, format.NumChannels)
	assert.Equal(t, 2, format.Precision)
	assert.Equal(t, 8000, int(format.SampleRate))
	assert.Equal(t, 640, s.Len())
}

// TestWriteWAVUnknown verifies unknown effects leave no file behind
func TestWriteWAVUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.wav")
	assert.ErrorIs(t, WriteWAV(path, effectCount, 8000), ErrUnknownEffect)
	assert.NoFileExists(t, path)
}

// TestExport verifies the full set lands in a new directory
func TestExport(t *testing.T) {
	if testing.Short() {
		t.Skip("renders the 32s ambient pad")
	}
	dir := filepath.Join(t.TempDir(), "sfx")
	paths, err := Export(dir, 8000)
	require.NoError(t, err)
	require.Len(t, paths, len(Effects()))
	for _, name := range []string{"swoosh", "whoosh", "pop", "ding", "success", "ambient"} {
		assert.FileExists(t, filepath.Join(dir, name+".wav"))
	}
}
