package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "some.conf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestReadCredentials(t *testing.T) {
	path := writeConf(t, `[hi]
user = bob
password = smith
server = dev.ndexbio.org
`)
	creds, err := ReadCredentials(path, "hi")
	require.NoError(t, err)
	require.Equal(t, "bob", creds.User)
	require.Equal(t, "smith", creds.Password)
	require.Equal(t, "dev.ndexbio.org", creds.Server)
}

func TestReadCredentialsMissingFile(t *testing.T) {
	_, err := ReadCredentials(filepath.Join(t.TempDir(), "absent.conf"), "hi")
	require.Error(t, err)
}

func TestReadCredentialsMissingSection(t *testing.T) {
	path := writeConf(t, "[other]\nuser = bob\n")
	_, err := ReadCredentials(path, "hi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "[hi]")
}

func TestReadCredentialsMissingKey(t *testing.T) {
	path := writeConf(t, "[hi]\nuser = bob\npassword = smith\n")
	_, err := ReadCredentials(path, "hi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "server")
}
