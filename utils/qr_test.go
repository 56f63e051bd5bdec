package utils

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentQR(t *testing.T) {
	dataURL, err := PaymentQR("0812345678", 199.50)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	require.NoError(t, err)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestPaymentQRDependsOnAmount(t *testing.T) {
	a, err := PaymentQR("0812345678", 100)
	require.NoError(t, err)
	b, err := PaymentQR("0812345678", 200)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
