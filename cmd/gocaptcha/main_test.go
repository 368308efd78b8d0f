package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "captcha.png")

	err := run([]string{"-seed", "0020", "-w", "120", "-height", "60", "-o", out})
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 120, img.Bounds().Dx())
	require.Equal(t, 60, img.Bounds().Dy(), "the -height flag must reach the builder")
}

func TestRunRejectsUnknownExtension(t *testing.T) {
	out := filepath.Join(t.TempDir(), "captcha.gif")
	require.Error(t, run([]string{"-seed", "0020", "-o", out}))
}

func TestRunRejectsBadSeed(t *testing.T) {
	require.Error(t, run([]string{"-seed", "not-hex"}))
}

func TestResolveSeed(t *testing.T) {
	seed, err := resolveSeed("00ff12")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff, 0x12}, seed)

	_, err = resolveSeed("zz")
	require.Error(t, err)

	// Empty flag draws fresh entropy.
	a, err := resolveSeed("")
	require.NoError(t, err)
	require.Len(t, a, 16)
}
