package credential

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/codetutor/internal/common"
	"github.com/stretchr/testify/require"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	cred := Hash([]byte("S3cure!pass"))

	ok, err := Verify(cred, []byte("S3cure!pass"))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerify_WrongPassword(t *testing.T) {
	cred := Hash([]byte("S3cure!pass"))

	ok, err := Verify(cred, []byte("S3cure!pass2"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHash_SaltsDiffer(t *testing.T) {
	a := Hash([]byte("same password"))
	b := Hash([]byte("same password"))
	require.NotEqual(t, a, b, "two hashes of the same password must use different salts")
}

func TestHash_Format(t *testing.T) {
	cred := Hash([]byte("x"))
	parts := strings.Split(cred, ":")
	require.Len(t, parts, 2)
	require.Len(t, parts[0], saltSize*2)
	require.Len(t, parts[1], keySize*2)
}

func TestVerify_MalformedCredential(t *testing.T) {
	tests := []struct {
		name string
		cred string
	}{
		{"missing separator", "deadbeef"},
		{"invalid salt hex", "zz:deadbeef"},
		{"invalid key hex", "deadbeef:zz"},
		{"empty key", "deadbeef:"},
		{"empty string", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Verify(tc.cred, []byte("whatever"))
			require.Error(t, err)
			require.True(t, errors.Is(err, common.ErrCredentialFormat), "got %v", err)
		})
	}
}
