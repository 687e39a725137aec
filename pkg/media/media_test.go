package media

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestStore_Save(t *testing.T) {
	testCases := []struct {
		name    string
		content []byte
		wantExt string
		wantErr error
	}{
		{
			name:    "png",
			content: append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{1}, 5000)...),
			wantExt: ".png",
		},
		{
			name:    "jpeg",
			content: []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F', 0},
			wantExt: ".jpg",
		},
		{
			name:    "text rejected",
			content: []byte("hello world"),
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "empty rejected",
			content: nil,
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			s, err := NewStore(dir, "http://localhost:8080/")
			require.NoError(t, err)

			url, err := s.Save(bytes.NewReader(tc.content))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				entries, _ := os.ReadDir(dir)
				assert.Empty(t, entries)
				return
			}
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(url, "http://localhost:8080"+URLPath+"/"))
			assert.True(t, strings.HasSuffix(url, tc.wantExt))

			stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
			require.NoError(t, err)
			assert.Equal(t, tc.content, stored)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, "http://localhost:8080")
	require.NoError(t, err)

	url, err := s.Save(bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.NoError(t, s.Delete(url))
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)

	assert.NoError(t, s.Delete(url), "deleting twice is not an error")
	assert.Error(t, s.Delete("http://localhost:8080"+URLPath+"/../secret"))
	assert.Error(t, s.Delete("http://elsewhere/a.png"))
}
