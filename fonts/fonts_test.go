package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(18))

	face := Regular.Get()
	require.NotNil(t, face)
	assert.Positive(t, face.Metrics().Height.Ceil())
	assert.NotNil(t, Bold.Get())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}

func TestGetMissingPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
