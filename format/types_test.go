package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"ZSTD", CompressionZstd},
		{"s2", CompressionS2},
		{"Lz4", CompressionLZ4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompressionType(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, got.IsValid())
		})
	}

	_, err := ParseCompressionType("brotli")
	require.Error(t, err)
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
	require.False(t, CompressionType(0).IsValid())
	require.False(t, CompressionType(5).IsValid())
}
