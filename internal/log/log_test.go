package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel("info")
	})

	assert.True(t, SetLevel("INFO"))
	Debug("hidden")
	Info("shown", "path", "/usr/lib/clap")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "path=/usr/lib/clap")

	buf.Reset()
	assert.True(t, SetLevel(" debug "))
	Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestSetLevelRejectsUnknownName(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	assert.True(t, SetLevel("warn"))
	assert.False(t, SetLevel("verbose"))
	assert.Equal(t, "warn", GetLogger().GetLevel().String())
}
