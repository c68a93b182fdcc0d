package fsops

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haywardlabs/groundwork/gw/config"
	"github.com/haywardlabs/groundwork/gw/diagnostics"
	"github.com/haywardlabs/groundwork/gw/logging"
	"github.com/haywardlabs/groundwork/gw/paths"
)

func newTestOps() *Ops {
	log := logging.New(config.LoggingConfig{Level: "error", NoColor: true}, io.Discard)
	return NewOps(log)
}

func TestPathPresent(t *testing.T) {
	ops := newTestOps()
	dir := t.TempDir()

	present, ok := ops.PathPresent(paths.FromString(dir)).GetOk(discardSink())
	require.True(t, ok)
	assert.True(t, present)

	present, ok = ops.PathPresent(paths.FromString(filepath.Join(dir, "missing"))).GetOk(discardSink())
	require.True(t, ok)
	assert.False(t, present)
}

func TestMakeDirAndRemake(t *testing.T) {
	ops := newTestOps()
	dir := paths.FromString(filepath.Join(t.TempDir(), "a", "b", "c"))

	require.True(t, ops.MakeDir(dir).IsOk())

	// Idempotent on existing directories.
	require.True(t, ops.MakeDir(dir).IsOk())

	marker := filepath.Join(dir.Filepath(), "marker")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))

	require.True(t, ops.RemakeDir(dir).IsOk())
	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err), "remake must empty the directory")
}

func TestMakeFile(t *testing.T) {
	ops := newTestOps()
	target := paths.FromString(filepath.Join(t.TempDir(), "created.txt"))

	created, ok := ops.MakeFile(target).GetOk(discardSink())
	require.True(t, ok)
	assert.True(t, created)

	created, ok = ops.MakeFile(target).GetOk(discardSink())
	require.True(t, ok)
	assert.False(t, created, "second create must report the file already present")
}

func TestRemoveFileAbsentWarns(t *testing.T) {
	ops := newTestOps()
	sink := &countingSink{}

	result := ops.RemoveFile(paths.FromString(filepath.Join(t.TempDir(), "ghost")))
	require.True(t, result.IsOk())

	removed, _ := result.GetOk(sink)
	assert.False(t, removed)
	assert.Equal(t, 1, sink.warns, "absent file must surface a warning")
}

func TestRemoveFilePresent(t *testing.T) {
	ops := newTestOps()
	target := filepath.Join(t.TempDir(), "victim")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	sink := &countingSink{}
	removed, ok := ops.RemoveFile(paths.FromString(target)).GetOk(sink)
	require.True(t, ok)
	assert.True(t, removed)
	assert.Zero(t, sink.warns)

	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenFileAppends(t *testing.T) {
	ops := newTestOps()
	target := paths.FromString(filepath.Join(t.TempDir(), "log.txt"))

	file, ok := ops.OpenFile(target, true).GetOk(discardSink())
	require.True(t, ok)
	_, err := file.WriteString("first\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	file, ok = ops.OpenFile(target, false).GetOk(discardSink())
	require.True(t, ok)
	_, err = file.WriteString("second\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	data, err := os.ReadFile(target.Filepath())
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestOpenFileMissingWithoutCreate(t *testing.T) {
	ops := newTestOps()
	result := ops.OpenFile(paths.FromString(filepath.Join(t.TempDir(), "missing")), false)
	require.True(t, result.IsErr())

	item := result.GetErr(discardSink())
	require.NotNil(t, item)
	assert.Equal(t, diagnostics.KindOpeningFile, item.Kind)
}

func TestStringInFile(t *testing.T) {
	ops := newTestOps()
	target := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(target, []byte("the quick brown fox"), 0o644))

	found, ok := ops.StringInFile(paths.FromString(target), "quick").GetOk(discardSink())
	require.True(t, ok)
	assert.True(t, found)

	found, ok = ops.StringInFile(paths.FromString(target), "slow").GetOk(discardSink())
	require.True(t, ok)
	assert.False(t, found)
}

func TestHashing(t *testing.T) {
	ops := newTestOps()

	// Known sha256 of the empty string.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashString(""))

	target := filepath.Join(t.TempDir(), "hashed")
	require.NoError(t, os.WriteFile(target, []byte("payload"), 0o644))

	fileSum, ok := ops.HashFile(paths.FromString(target)).GetOk(discardSink())
	require.True(t, ok)
	assert.Equal(t, HashString("payload"), fileSum)
}

func TestRandomString(t *testing.T) {
	a, err := RandomString(32)
	require.NoError(t, err)
	b, err := RandomString(32)
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abcdef", Truncate("abcdef", 10))
	assert.Equal(t, "", Truncate("abcdef", 0))
	assert.Equal(t, "", Truncate("abcdef", -1))
}

func TestLoadIgnoreFile(t *testing.T) {
	ops := newTestOps()
	dir := t.TempDir()

	checker, err := ops.LoadIgnoreFile(dir, ".gwignore")
	require.NoError(t, err)
	assert.Nil(t, checker, "missing ignore file yields a nil checker")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gwignore"), []byte("*.tmp\nbuild/\n"), 0o644))

	checker, err = ops.LoadIgnoreFile(dir, ".gwignore")
	require.NoError(t, err)
	require.NotNil(t, checker)
	assert.True(t, checker.MatchesPath("scratch.tmp"))
	assert.True(t, checker.MatchesPath("build/out.bin"))
	assert.False(t, checker.MatchesPath("main.go"))
}

// countingSink tallies sink calls for warning assertions.
type countingSink struct {
	errs  int
	warns int
	code  int
}

func (s *countingSink) Error(string)  { s.errs++ }
func (s *countingSink) Warn(string)   { s.warns++ }
func (s *countingSink) Exit(code int) { s.code = code }

func discardSink() diagnostics.Sink { return &countingSink{} }
