package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config file lookup at an empty temp dir so a developer's
// own ~/.rxd.yaml cannot leak into the tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("RXD_CONFIG_PATH", filepath.Join(dir, "rxd.yaml"))
	t.Setenv("RXD_LOG", "")
	return dir
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func runMain(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Main(context.Background(), args, Streams{Out: &stdout, Err: &stderr})
	return code, stdout.String(), stderr.String()
}

func TestMain_DumpsFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "abc.bin", []byte("ABC"))

	code, stdout, stderr := runMain(t, path)
	require.Equal(t, ExitOK, code, stderr)

	want := "00000000  41 42 43" + strings.Repeat(" ", 39) + "  ABC" + strings.Repeat(" ", 13) + "\n"
	assert.Equal(t, want, stdout)
	assert.Empty(t, stderr)
}

func TestMain_EmptyFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "empty.bin", nil)

	code, stdout, _ := runMain(t, path)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout)
}

func TestMain_ZeroFilledRows(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "zeros.bin", make([]byte, 32))

	code, stdout, _ := runMain(t, path)
	require.Equal(t, ExitOK, code)

	rows := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(rows[0], "00000000  00 00"))
	assert.True(t, strings.HasPrefix(rows[1], "00000010  00 00"))
	for _, row := range rows {
		assert.True(t, strings.HasSuffix(row, "  "+strings.Repeat(".", 16)), row)
	}
}

func TestMain_FlagsShapeOutput(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "seq.bin", []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})

	code, stdout, stderr := runMain(t, "-w", "8", "-g", "4", "-l", "1", "-c", path)
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "00000000  00010203 04050607  ␀␁␂␃␄␅␆␇\n", stdout)
}

func TestMain_LongFlags(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "hi.bin", []byte("hi"))

	code, stdout, _ := runMain(t, "--width=2", "--group=2", "--lines=5", path)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "00000000  6869  hi\n", stdout)
}

func TestMain_Header(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "hi.bin", []byte("hi"))

	code, stdout, _ := runMain(t, "--header", "-w", "4", path)
	require.Equal(t, ExitOK, code)
	assert.Equal(t,
		"          00 01 02 03\n"+
			"--------  -----------  ----\n"+
			"00000000  68 69        hi  \n",
		stdout)
}

func TestMain_JSON(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "hi.bin", []byte("hi"))

	code, stdout, _ := runMain(t, "--json", "-w", "2", path)
	require.Equal(t, ExitOK, code)
	assert.JSONEq(t, `{"offset":0,"length":2,"hex":"68 69","text":"hi"}`, stdout)
}

func TestMain_ConfigErrors(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "data.bin", []byte("data"))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero width", []string{"-w", "0", path}, "invalid line width: 0"},
		{"zero group", []string{"-g", "0", path}, "invalid group length: 0"},
		{"huge width", []string{"-w", "4611686018427387904", path}, "invalid line width: 4611686018427387904"},
		{"width over max", []string{"-w", "1048577", path}, "invalid line width: 1048577"},
		{"zero lines", []string{"-l", "0", path}, "invalid line count: 0"},
		{"negative lines", []string{"-l", "-3", path}, "invalid line count: -3"},
		{"non-numeric width", []string{"-w", "wide", path}, "invalid argument"},
		{"non-numeric lines", []string{"-l", "x", path}, "invalid argument"},
		{"unknown flag", []string{"--colour", path}, "unknown flag"},
		{"missing path", []string{}, "expected exactly one FILE_PATH"},
		{"two paths", []string{path, path}, "expected exactly one FILE_PATH"},
		{"header with json", []string{"--header", "--json", path}, "cannot use --header and --json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runMain(t, tt.args...)
			assert.Equal(t, ExitConfig, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestMain_MissingFile(t *testing.T) {
	dir := isolate(t)

	code, stdout, stderr := runMain(t, filepath.Join(dir, "nope.bin"))
	assert.Equal(t, ExitIO, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "nope.bin")
	assert.Contains(t, stderr, "no such file or directory")
}

func TestMain_Directory(t *testing.T) {
	dir := isolate(t)

	code, _, stderr := runMain(t, dir)
	assert.Equal(t, ExitIO, code)
	assert.Contains(t, stderr, "is a directory")
}

func TestMain_Version(t *testing.T) {
	isolate(t)

	for _, flag := range []string{"-V", "--version"} {
		code, stdout, _ := runMain(t, flag)
		assert.Equal(t, ExitOK, code)
		assert.Equal(t, "rxd "+Version+"\n", stdout)
	}
}

func TestMain_Help(t *testing.T) {
	isolate(t)

	for _, flag := range []string{"-h", "--help"} {
		code, stdout, _ := runMain(t, flag)
		assert.Equal(t, ExitOK, code)
		assert.Contains(t, stdout, "Usage:")
		assert.Contains(t, stdout, "-w, --width")
		assert.Contains(t, stdout, "-V, --version")
	}
}

func TestMain_ConfigFileDefaults(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "seq.bin", []byte("abcdefgh"))
	writeFile(t, dir, "rxd.yaml", []byte("width: 4\ngroup: 2\nlines: 1\n"))

	code, stdout, stderr := runMain(t, path)
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "00000000  6162 6364  abcd\n", stdout)

	// Flags win over the file.
	code, stdout, _ = runMain(t, "-w", "8", "-l", "2", path)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "00000000  6162 6364 6566 6768  abcdefgh\n", stdout)
}

func TestMain_MalformedConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "x.bin", []byte("x"))
	writeFile(t, dir, "rxd.yaml", []byte("width: [not, a, number\n"))

	code, stdout, stderr := runMain(t, path)
	assert.Equal(t, ExitConfig, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "config file")
}

func TestMain_DebugLogging(t *testing.T) {
	dir := isolate(t)
	t.Setenv("RXD_LOG", "debug")
	path := writeFile(t, dir, "x.bin", make([]byte, 2048))

	code, _, stderr := runMain(t, path)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, "opened input")
	assert.Contains(t, stderr, "2.0 KiB")
	assert.Contains(t, stderr, "dump complete")
}

func TestRun_CanceledContext(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "x.bin", make([]byte, 64))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	cfg.Path = path
	var stdout bytes.Buffer
	err := Run(ctx, cfg, &stdout, NewLogger(&bytes.Buffer{}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitInterrupted, exitCode(err))
	assert.Equal(t, 1, strings.Count(stdout.String(), "\n"), "the row in flight is still written")
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = "x"
	require.NoError(t, cfg.Validate())

	cfg.LineLimitSet = true
	cfg.LineLimit = 3
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.DumpConfig().LineLimit)

	cfg.LineLimitSet = false
	assert.Equal(t, 0, cfg.DumpConfig().LineLimit)
}
