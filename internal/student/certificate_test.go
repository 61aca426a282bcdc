package student

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0, "[----------] 0.0%"},
		{0.5, "[█████-----] 50.0%"},
		{1, "[██████████] 100.0%"},
		{1.5, "[██████████] 100.0%"},
		{-0.1, "[----------] 0.0%"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ProgressBar(tc.ratio, 10))
	}
}

func TestCertificate_Content(t *testing.T) {
	r := sampleRecord(t)
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	text := Certificate(r, date)

	assert.Contains(t, text, "CERTIFICATE OF COMPLETION")
	assert.Contains(t, text, "ALICE SMITH")
	assert.Contains(t, text, "April 1, 2026")
	assert.Contains(t, text, "Chapter 1: 92%")
	assert.Contains(t, text, "Chapter 2: 75%")
	assert.Contains(t, text, "Chapter 1 Master")
	assert.Contains(t, text, "Logins: 3")
	assert.Contains(t, text, "Study time: 45 minutes")
}

func TestWriteCertificate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certificates")
	r := sampleRecord(t)

	path, err := WriteCertificate(dir, r, time.Now())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "certificate_alice1.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ALICE SMITH")
}
