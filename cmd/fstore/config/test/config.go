package configtest

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/nspcc-dev/filestorage/cmd/fstore/config"
	"github.com/stretchr/testify/require"
)

func fromFile(t testing.TB, path string) *config.Config {
	c, err := config.New(path)
	require.NoError(t, err)
	return c
}

// ForEachFileType passes configs read from next files:
//   - `<pref>.yaml`;
//   - `<pref>.json`.
func ForEachFileType(t testing.TB, pref string, f func(*config.Config)) {
	for _, p := range []string{pref + ".yaml", pref + ".json"} {
		f(fromFile(t, p))
	}
}

// ForEnvFileType sets environment variables from `<pref>.env` for the test
// duration and passes config read from them.
func ForEnvFileType(t *testing.T, pref string, f func(*config.Config)) {
	loadEnv(t, pref+".env")
	f(EmptyConfig(t))
}

// EmptyConfig returns config without any file.
func EmptyConfig(t testing.TB) *config.Config {
	return fromFile(t, "")
}

func loadEnv(t *testing.T, path string) {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		require.True(t, ok, "invalid env line %q", line)
		t.Setenv(k, strings.Trim(v, `"`))
	}
	require.NoError(t, s.Err())
}
