package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mime2ext/errs"
)

func TestParseSource(t *testing.T) {
	t.Run("mime-db document", func(t *testing.T) {
		src, err := ParseSource(strings.NewReader(`{
			"text/html": {"source": "iana", "compressible": true, "extensions": ["html", "htm", "shtml"]},
			"image/avif": {"source": "iana"},
			"text/plain": {"source": "iana", "charset": "UTF-8", "extensions": ["txt"]}
		}`))
		require.NoError(t, err)
		require.Len(t, src, 3)

		html := src["text/html"]
		require.Equal(t, "iana", html.Source)
		require.Equal(t, []string{"html", "htm", "shtml"}, html.Extensions)
		require.NotNil(t, html.Compressible)
		require.True(t, *html.Compressible)

		require.Nil(t, src["image/avif"].Compressible)
		require.Empty(t, src["image/avif"].Extensions)
		require.Equal(t, "UTF-8", src["text/plain"].Charset)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseSource(strings.NewReader(`{"text/html": [}`))
		require.ErrorIs(t, err, errs.ErrInvalidSource)
	})

	t.Run("null", func(t *testing.T) {
		_, err := ParseSource(strings.NewReader(`null`))
		require.ErrorIs(t, err, errs.ErrInvalidSource)
	})
}

func TestParseSourceFile(t *testing.T) {
	src, err := ParseSourceFile(mimeDBPath)
	require.NoError(t, err)
	require.Len(t, src, 2055)
	require.Equal(t, []string{"png"}, src["image/png"].Extensions)

	_, err = ParseSourceFile("testdata/missing.json")
	require.Error(t, err)
}
