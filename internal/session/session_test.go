package session

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Sign(map[string]any{"uid": "user-123"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, ok := codec.Verify(token)
	require.True(t, ok)
	assert.Equal(t, "user-123", payload["uid"])
	assert.Contains(t, payload, "iat")
	assert.Contains(t, payload, "nonce")
}

func TestSignProducesDistinctTokens(t *testing.T) {
	codec := NewCodec("test-secret")

	first, err := codec.Sign(map[string]any{"uid": "user-123"})
	require.NoError(t, err)
	second, err := codec.Sign(map[string]any{"uid": "user-123"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	_, ok := codec.Verify(first)
	assert.True(t, ok)
	_, ok = codec.Verify(second)
	assert.True(t, ok)
}

func TestVerifyRejectsMalformedTokens(t *testing.T) {
	codec := NewCodec("test-secret")

	valid, err := codec.Sign(map[string]any{"uid": "user-123"})
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 2)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", parts[0]},
		{"three segments", valid + ".extra"},
		{"tampered payload", base64.RawURLEncoding.EncodeToString([]byte(`{"uid":"other"}`)) + "." + parts[1]},
		{"tampered signature", parts[0] + ".AAAA"},
		{"garbage", "not a token at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, ok := codec.Verify(tt.token)
			assert.False(t, ok)
			assert.Nil(t, payload)
		})
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewCodec("secret-a").Sign(map[string]any{"uid": "user-123"})
	require.NoError(t, err)

	_, ok := NewCodec("secret-b").Verify(token)
	assert.False(t, ok)
}

func TestVerifyRejectsUndecodablePayload(t *testing.T) {
	codec := NewCodec("test-secret")

	// Valid signature over a segment that is not base64url JSON
	encoded := "!!!not-base64!!!"
	token := encoded + "." + codec.signature(encoded)

	_, ok := codec.Verify(token)
	assert.False(t, ok)

	// Valid base64 but not a JSON object
	encoded = base64.RawURLEncoding.EncodeToString([]byte("plain text"))
	token = encoded + "." + codec.signature(encoded)

	_, ok = codec.Verify(token)
	assert.False(t, ok)
}
