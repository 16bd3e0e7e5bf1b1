package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nspcc-dev/filestorage/cmd/internal/cmderr"
	"github.com/nspcc-dev/filestorage/pkg/storage/filestorage"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	var out, errOut bytes.Buffer

	cmd := newRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func decodeStats(t *testing.T, s string) filestorage.DataStats {
	var st filestorage.DataStats
	require.NoError(t, json.Unmarshal([]byte(s), &st))
	return st
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	require.Contains(t, out, "fstore")
	require.Contains(t, out, "Version: dev")
}

func TestObjectCommands(t *testing.T) {
	t.Setenv("FSTORE_STORAGE_NO_SYNC", "true")
	root := t.TempDir()

	out, err := execute(t, "data0", "write", "0", "--path", root)
	require.NoError(t, err)
	st := decodeStats(t, out)
	require.Equal(t, "20cd1c30", st.Checksum)
	require.EqualValues(t, 5, st.Size)
	require.Nil(t, st.OriginalSize)

	_, err = os.Stat(filepath.Join(root, "0000", "0000.f"))
	require.NoError(t, err)

	out, err = execute(t, "", "read", "0", "--path", root)
	require.NoError(t, err)
	require.Equal(t, "data0", out)

	out, err = execute(t, "new data", "update", "0", "--path", root, "--checksum", "XXH64")
	require.NoError(t, err)
	st = decodeStats(t, out)
	require.EqualValues(t, 8, st.Size)
	require.NotNil(t, st.OriginalSize)
	require.EqualValues(t, 5, *st.OriginalSize)

	target := filepath.Join(t.TempDir(), "copy")
	_, err = execute(t, "", "read", "0", "--path", root, "-o", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "new data", string(data))

	out, err = execute(t, "", "stat", "0", "--path", root)
	require.NoError(t, err)
	require.Contains(t, out, "0000/0000.f")
	require.Contains(t, out, "8")

	out, err = execute(t, "", "rm", "0", "--path", root)
	require.NoError(t, err)
	require.Equal(t, "Object 0 removed\n", out)

	_, err = execute(t, "", "stat", "0", "--path", root)
	require.Error(t, err)
	require.Equal(t, 2, cmderr.Code(err))

	_, err = execute(t, "", "read", "0", "--path", root)
	require.Equal(t, 2, cmderr.Code(err))
}

func TestWriteFromFile(t *testing.T) {
	t.Setenv("FSTORE_STORAGE_NO_SYNC", "true")
	root := t.TempDir()

	src := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.WriteFile(src, []byte("data0"), 0o600))

	out, err := execute(t, "", "write", "0x10000", src, "--path", root)
	require.NoError(t, err)
	require.Equal(t, "20cd1c30", decodeStats(t, out).Checksum)

	_, err = os.Stat(filepath.Join(root, "0001", "0000.f"))
	require.NoError(t, err)
}

func TestInvalidArguments(t *testing.T) {
	root := t.TempDir()

	_, err := execute(t, "data", "write", "-1", "--path", root)
	require.Error(t, err)

	_, err = execute(t, "data", "write", "1", "--path", root, "--checksum", "MD5")
	require.ErrorContains(t, err, "MD5")

	_, err = execute(t, "", "compress", "1", "--path", root, "--compression", "RAR")
	require.ErrorContains(t, err, "RAR")

	t.Setenv("FSTORE_STORAGE_PATH", "")
	_, err = execute(t, "data", "write", "1")
	require.ErrorIs(t, err, errNoStoragePath)
}

func TestCompress(t *testing.T) {
	t.Setenv("FSTORE_STORAGE_NO_SYNC", "true")
	t.Setenv("FSTORE_STORAGE_MIN_COMPRESS_SIZE", "1000")
	root := t.TempDir()

	payload := strings.Repeat("0123456789", 600)
	_, err := execute(t, payload, "write", "1", "--path", root)
	require.NoError(t, err)
	_, err = execute(t, "small", "write", "2", "--path", root)
	require.NoError(t, err)

	out, err := execute(t, "", "compress", "1", "2", "--path", root,
		"--compression", "ZIP", "--workers", "2", "--no-progress")
	require.NoError(t, err)
	require.Contains(t, out, "compressed")
	require.Contains(t, out, "skipped")

	fi, err := os.Stat(filepath.Join(root, "0000", "0001.f"))
	require.NoError(t, err)
	require.Less(t, fi.Size(), int64(5000))

	out, err = execute(t, "", "read", "1", "--path", root, "--compression", "ZIP")
	require.NoError(t, err)
	require.Equal(t, payload, out)

	out, err = execute(t, "", "compress", "1", "3", "--path", root,
		"--compression", "ZIP", "--no-progress")
	require.ErrorContains(t, err, "1 of 2 objects")
	require.Contains(t, out, "not found")
}

func TestPath(t *testing.T) {
	t.Setenv("FSTORE_STORAGE_PATH", "")

	out, err := execute(t, "", "path", "0", "65536")
	require.NoError(t, err)
	require.Equal(t, "0000/0000.f\n0001/0000.f\n", out)

	out, err = execute(t, "", "path", "--path", "/srv", "0xffffffffffffffff")
	require.NoError(t, err)
	require.Equal(t, filepath.FromSlash("/srv/ffff/ffff/ffff/ffff.f")+"\n", out)

	out, err = execute(t, "", "path", "--from-path", "0001/0000.f")
	require.NoError(t, err)
	require.Equal(t, "65536\n", out)

	_, err = execute(t, "", "path", "--from-path", "0000/0000/0001.f")
	require.Error(t, err)
}

func TestAlgorithms(t *testing.T) {
	out, err := execute(t, "", "algorithms")
	require.NoError(t, err)
	for _, name := range []string{"CRC32", "SHA256", "BLAKE3", "ZIP", "ZSTD", "checksum"} {
		require.Contains(t, out, name)
	}
}

func TestMetricsTextfile(t *testing.T) {
	t.Setenv("FSTORE_STORAGE_NO_SYNC", "true")
	textfile := filepath.Join(t.TempDir(), "fstore.prom")
	t.Setenv("FSTORE_METRICS_TEXTFILE", textfile)

	_, err := execute(t, "data", "write", "7", "--path", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	require.Contains(t, string(data), `filestorage_storage_method_duration_seconds_count{method="Write",success="true"} 1`)
}
