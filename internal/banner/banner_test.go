package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestASCIIFallback(t *testing.T) {
	// No external renderer exists in the test working directory, so the
	// embedded art is returned.
	art := ASCII()
	assert.Contains(t, art, "offline Bluetooth troubleshooter")
}

func TestANSIFallback(t *testing.T) {
	out := ANSI()
	assert.Contains(t, out, "btdoctor")
}

func TestInterpreterFor(t *testing.T) {
	assert.Contains(t, []string{"python3", "python"}, interpreterFor("banners/ascii_banner.py"))
	assert.Equal(t, "bash", interpreterFor("banners/ansi_banner.sh"))
	assert.Equal(t, "sh", interpreterFor("banners/other"))
}
