package litepager

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PageToken_Decode(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedPage int
		expectEmpty  bool
		expectError  bool
	}{
		{"empty string", "", FirstPage, true, false},
		{"zero encoded", base64.RawURLEncoding.EncodeToString([]byte("0")), 0, true, false},
		{"non-zero encoded", base64.RawURLEncoding.EncodeToString([]byte("15")), 15, false, false},
		{"not base64", "!!!", 0, false, true},
		{"not a number", base64.RawURLEncoding.EncodeToString([]byte("abc")), 0, false, true},
		{"negative page", base64.RawURLEncoding.EncodeToString([]byte("-3")), 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := DecodePageToken(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectEmpty, tok.IsEmpty())
			require.Equal(t, tt.expectedPage, tok.GetPage())
		})
	}
}

func Test_PageToken_String(t *testing.T) {
	require.Equal(t, "", (*PageToken)(nil).String())
	require.Equal(t, "", NewPageToken(0).String())
	require.Equal(t, "", NewPageToken(PageUnset).String())

	tok := NewPageToken(4)
	decoded, err := DecodePageToken(tok.String())
	require.NoError(t, err)
	require.Equal(t, 4, decoded.GetPage())
}

func Test_PageToken_JSON(t *testing.T) {
	type payload struct {
		Next *PageToken `json:"next"`
	}

	raw, err := json.Marshal(payload{Next: NewPageToken(2)})
	require.NoError(t, err)
	require.JSONEq(t, `{"next":"`+NewPageToken(2).String()+`"}`, string(raw))

	var got payload
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, 2, got.Next.GetPage())
}
