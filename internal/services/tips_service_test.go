package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "career_tips.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"Tailor your CV","body":"Match the job ad."},{"title":"Follow up"}]`), 0o644))

	tips, err := NewTipsService(path).Load()
	require.NoError(t, err)
	require.Len(t, tips, 2)
	assert.Equal(t, "Tailor your CV", tips[0]["title"])
	assert.Equal(t, "Follow up", tips[1]["title"])
}

func TestLoadTipsMissingFile(t *testing.T) {
	tips, err := NewTipsService(filepath.Join(t.TempDir(), "nope.json")).Load()
	require.NoError(t, err)
	assert.NotNil(t, tips)
	assert.Empty(t, tips)
}

func TestLoadTipsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "career_tips.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := NewTipsService(path).Load()
	assert.Error(t, err)
}
