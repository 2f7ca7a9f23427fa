package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText(MIMEPlainText, []byte("Senior Go engineer, eight years."))
	require.NoError(t, err)
	assert.Equal(t, "Senior Go engineer, eight years.", text)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	_, err := ExtractText("image/gif", []byte{0x47, 0x49, 0x46})
	require.Error(t, err)

	var ute *UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "image/gif", ute.MIME)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText(MIMEPDF, []byte("not a pdf"))
	assert.Error(t, err)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText(MIMEDocx, []byte("not a docx"))
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(MIMEPlainText))
	assert.True(t, Supported(MIMEPDF))
	assert.True(t, Supported(MIMEDocx))
	assert.False(t, Supported("application/zip"))
	assert.False(t, Supported(""))
}
