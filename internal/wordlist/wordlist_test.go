package wordlist

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	n, err := Write(&buf, slices.Values([]string{"password", "Jöhn1990", "p@ss word"}))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "password\nJöhn1990\np@ss word\n", buf.String())
}

func TestWrite_RejectsLineBreaks(t *testing.T) {
	for _, bad := range []string{"two\nlines", "carriage\rreturn"} {
		var buf bytes.Buffer
		n, err := Write(&buf, slices.Values([]string{"ok", bad, "never"}))
		require.Error(t, err)
		assert.Equal(t, 1, n)

		var wlErr *Error
		require.ErrorAs(t, err, &wlErr)
		assert.Equal(t, 2, wlErr.Line)
	}
}

func TestWriteFileReadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	words := []string{"alpha", "bravo", "charlie"}

	n, err := WriteFile(path, slices.Values(words))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, words, got)

	count, err := CountLines(path)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestWriteFile_ErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	_, err := WriteFile(path, slices.Values([]string{"a\nb"}))

	var wlErr *Error
	require.ErrorAs(t, err, &wlErr)
	assert.Equal(t, path, wlErr.Path)
	assert.Contains(t, err.Error(), path+":1")
}

func TestRead_TrimsAndSkipsBlank(t *testing.T) {
	got, err := Read(strings.NewReader("  one \n\n\ttwo\r\n   \nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
