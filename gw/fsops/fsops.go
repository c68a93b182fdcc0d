// Package fsops provides filesystem helpers with failures mapped into the
// diagnostics taxonomy at the OS boundary.
package fsops

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	assert "github.com/ZanzyTHEbar/assert-lib"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/haywardlabs/groundwork/gw/diagnostics"
	"github.com/haywardlabs/groundwork/gw/logging"
	"github.com/haywardlabs/groundwork/gw/paths"
)

// IgnoreChecker reports whether a path matches an ignore pattern set.
// *ignore.GitIgnore satisfies it.
type IgnoreChecker interface {
	MatchesPath(path string) bool
}

// OpStats counts operations performed by an Ops instance.
type OpStats struct {
	DirsCreated  int64
	DirsRemoved  int64
	FilesCreated int64
	FilesRemoved int64
	Archives     int64
	ChownedPaths int64
}

// Ops bundles filesystem operations with a logger and an assert handler.
type Ops struct {
	log        *logging.Logger
	asserts    *assert.AssertHandler
	maxWorkers int
	stats      OpStats
}

// NewOps creates an Ops with worker parallelism capped at the CPU count.
func NewOps(log *logging.Logger) *Ops {
	return &Ops{
		log:        log,
		asserts:    assert.NewAssertHandler(),
		maxWorkers: runtime.NumCPU(),
	}
}

// Stats returns a snapshot of the operation counters.
func (o *Ops) Stats() OpStats {
	return OpStats{
		DirsCreated:  atomic.LoadInt64(&o.stats.DirsCreated),
		DirsRemoved:  atomic.LoadInt64(&o.stats.DirsRemoved),
		FilesCreated: atomic.LoadInt64(&o.stats.FilesCreated),
		FilesRemoved: atomic.LoadInt64(&o.stats.FilesRemoved),
		Archives:     atomic.LoadInt64(&o.stats.Archives),
		ChownedPaths: atomic.LoadInt64(&o.stats.ChownedPaths),
	}
}

// PathPresent reports whether the path exists on disk.
func (o *Ops) PathPresent(path paths.PathValue) diagnostics.Result[bool] {
	_, err := os.Stat(path.Filepath())
	if err == nil {
		return diagnostics.Ok(true)
	}
	if os.IsNotExist(err) {
		return diagnostics.Ok(false)
	}
	return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindReadingFile, err))
}

// MakeDir creates the directory and any missing parents. Returns true even
// when the directory already existed.
func (o *Ops) MakeDir(path paths.PathValue) diagnostics.Result[bool] {
	return o.MakeDirPerm(path, 0o755)
}

// MakeDirPerm is MakeDir with an explicit permission mode.
func (o *Ops) MakeDirPerm(path paths.PathValue, perm os.FileMode) diagnostics.Result[bool] {
	if err := os.MkdirAll(path.Filepath(), perm); err != nil {
		return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindCreatingDirectory, err))
	}
	atomic.AddInt64(&o.stats.DirsCreated, 1)
	return diagnostics.Ok(true)
}

// RemakeDir removes the directory tree if present, then recreates it empty.
func (o *Ops) RemakeDir(path paths.PathValue) diagnostics.Result[bool] {
	if result := o.RemoveDir(path); result.IsErr() {
		return result
	}
	return o.MakeDir(path)
}

// MakeFile creates an empty file. Returns false without error when the file
// already exists.
func (o *Ops) MakeFile(path paths.PathValue) diagnostics.Result[bool] {
	file, err := os.OpenFile(path.Filepath(), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return diagnostics.Ok(false)
		}
		return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindCreatingFile, err))
	}
	file.Close()
	atomic.AddInt64(&o.stats.FilesCreated, 1)
	return diagnostics.Ok(true)
}

// RemoveDir deletes a directory tree. An absent directory is success.
func (o *Ops) RemoveDir(path paths.PathValue) diagnostics.Result[bool] {
	if err := os.RemoveAll(path.Filepath()); err != nil {
		return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindDeletingDirectory, err))
	}
	atomic.AddInt64(&o.stats.DirsRemoved, 1)
	return diagnostics.Ok(true)
}

// RemoveFile deletes a file. Deleting an absent file succeeds but carries a
// FileNotDeleted warning.
func (o *Ops) RemoveFile(path paths.PathValue) diagnostics.Result[bool] {
	if err := os.Remove(path.Filepath()); err != nil {
		if os.IsNotExist(err) {
			warnings := diagnostics.SingleWarning(diagnostics.NewWarningDetail(
				diagnostics.WarnFileNotDeleted, path.Filepath()))
			return diagnostics.OkWith(false, warnings)
		}
		return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindDeletingFile, err))
	}
	atomic.AddInt64(&o.stats.FilesRemoved, 1)
	return diagnostics.Ok(true)
}

// OpenFile opens a file for appending reads and writes. With create set the
// file is created when missing.
func (o *Ops) OpenFile(path paths.PathValue, create bool) diagnostics.Result[*os.File] {
	flags := os.O_APPEND | os.O_RDWR
	if create {
		flags |= os.O_CREATE
	}
	file, err := os.OpenFile(path.Filepath(), flags, 0o644)
	if err != nil {
		return diagnostics.Fail[*os.File](diagnostics.FromError(diagnostics.KindOpeningFile, err))
	}
	return diagnostics.Ok(file)
}

// LoadIgnoreFile compiles an ignore-pattern file in dir. A missing file is
// not an error; the returned checker is nil.
func (o *Ops) LoadIgnoreFile(dir, name string) (IgnoreChecker, error) {
	ignorePath := filepath.Join(dir, name)

	if _, err := os.Stat(ignorePath); err == nil {
		ignored, err := ignore.CompileIgnoreFile(ignorePath)
		if err != nil {
			return nil, fmt.Errorf("error reading %s file: %w", name, err)
		}
		return ignored, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error checking for %s file: %w", name, err)
	}

	return nil, nil
}

// StringInFile reports whether the file contains the needle.
func (o *Ops) StringInFile(path paths.PathValue, needle string) diagnostics.Result[bool] {
	data, err := os.ReadFile(path.Filepath())
	if err != nil {
		return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindReadingFile, err))
	}
	return diagnostics.Ok(strings.Contains(string(data), needle))
}

// HashString returns the hex sha256 digest of a string.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashFile returns the hex sha256 digest of a file's contents, streamed.
func (o *Ops) HashFile(path paths.PathValue) diagnostics.Result[string] {
	file, err := os.Open(path.Filepath())
	if err != nil {
		return diagnostics.Fail[string](diagnostics.FromError(diagnostics.KindOpeningFile, err))
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return diagnostics.Fail[string](diagnostics.FromError(diagnostics.KindReadingFile, err))
	}
	return diagnostics.Ok(hex.EncodeToString(hasher.Sum(nil)))
}

const randomAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns n characters drawn from a crypto-grade source.
func RandomString(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range raw {
		raw[i] = randomAlphabet[int(b)%len(randomAlphabet)]
	}
	return string(raw), nil
}

// Truncate shortens a string to at most max bytes.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}
