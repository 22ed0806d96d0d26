package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// Codec signs and verifies compact session tokens. A token is the base64url
// (unpadded) JSON payload, a dot, and the base64url HMAC-SHA256 signature of
// the encoded segment. The secret is injected once at startup and read-only
// afterwards, so a Codec is safe for concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign serializes the payload together with an issue timestamp (unix millis)
// and a random nonce, so repeated logins never produce identical tokens.
func (c *Codec) Sign(payload map[string]any) (string, error) {
	data := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		data[k] = v
	}
	nonce := make([]byte, 8)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	data["iat"] = time.Now().UnixMilli()
	data["nonce"] = hex.EncodeToString(nonce)

	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	encoded := base64.RawURLEncoding.EncodeToString(raw)
	return encoded + "." + c.signature(encoded), nil
}

// Verify returns the parsed payload and true for a well-formed token with a
// matching signature. Failures are silent: a missing token, wrong segment
// count, signature mismatch or undecodable payload all yield (nil, false).
// No expiry is enforced here; the cookie max-age is the only lifetime bound.
func (c *Codec) Verify(token string) (map[string]any, bool) {
	if token == "" {
		return nil, false
	}
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, false
	}
	encoded, sig := parts[0], parts[1]
	expected := c.signature(encoded)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return nil, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	return payload, true
}

func (c *Codec) signature(encoded string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
