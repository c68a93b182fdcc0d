package fsops

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/haywardlabs/groundwork/gw/diagnostics"
	"github.com/haywardlabs/groundwork/gw/paths"
)

// Tarball packs sourceDir into a gzip-compressed tar archive at targetPath.
// The archive is staged under a unique temp name and renamed into place so a
// failed run never leaves a partial archive at the target. Entries matching
// the checker are skipped; a nil checker skips nothing.
func (o *Ops) Tarball(ctx context.Context, sourceDir, targetPath paths.PathValue, checker IgnoreChecker) diagnostics.Result[string] {
	src := sourceDir.Filepath()
	dst := targetPath.Filepath()
	o.asserts.Assert(ctx, src != "" && dst != "", "tarball source and target paths must not be empty")

	staging := filepath.Join(filepath.Dir(dst), fmt.Sprintf(".%s.tar.gz.partial", uuid.NewString()))

	out, err := os.Create(staging)
	if err != nil {
		return diagnostics.Fail[string](diagnostics.FromError(diagnostics.KindCreatingFile, err))
	}

	gzw := gzip.NewWriter(out)
	tw := tar.NewWriter(gzw)

	walkErr := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if checker != nil {
			// Directory patterns like "build/" only match with the
			// trailing slash.
			if info.IsDir() && checker.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			if checker.MatchesPath(rel) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)

		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(tw, file)
		return err
	})

	closeErr := tw.Close()
	if gzErr := gzw.Close(); closeErr == nil {
		closeErr = gzErr
	}
	if outErr := out.Close(); closeErr == nil {
		closeErr = outErr
	}

	if walkErr == nil {
		walkErr = closeErr
	}
	if walkErr != nil {
		os.Remove(staging)
		return diagnostics.Fail[string](diagnostics.FromError(diagnostics.KindInputOutput, walkErr))
	}

	if err := os.Rename(staging, dst); err != nil {
		os.Remove(staging)
		return diagnostics.Fail[string](diagnostics.FromError(diagnostics.KindCreatingFile, err))
	}

	atomic.AddInt64(&o.stats.Archives, 1)
	o.log.Debug(fmt.Sprintf("archived %s to %s", src, dst))
	return diagnostics.Ok(dst)
}

// Untar unpacks a gzip-compressed tar archive into targetDir. Entries that
// would escape targetDir are rejected.
func (o *Ops) Untar(ctx context.Context, archivePath, targetDir paths.PathValue) diagnostics.Result[bool] {
	dst := targetDir.Filepath()

	file, err := os.Open(archivePath.Filepath())
	if err != nil {
		return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindOpeningFile, err))
	}
	defer file.Close()

	gzr, err := gzip.NewReader(file)
	if err != nil {
		return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindUntaringFile, err))
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)

	for {
		if err := ctx.Err(); err != nil {
			return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindUntaringFile, err))
		}

		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindUntaringFile, err))
		}

		target, err := securePath(dst, header.Name)
		if err != nil {
			return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindUntaringFile, err))
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(header.Mode)); err != nil {
				return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindCreatingDirectory, err))
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindCreatingDirectory, err))
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(header.Mode))
			if err != nil {
				return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindCreatingFile, err))
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return diagnostics.Fail[bool](diagnostics.FromError(diagnostics.KindUntaringFile, err))
			}
			out.Close()
		default:
			// Symlinks and special files are not restored.
		}
	}

	return diagnostics.Ok(true)
}

// securePath joins name under base, rejecting entries that escape it.
func securePath(base, name string) (string, error) {
	target := filepath.Join(base, filepath.FromSlash(name))
	if target != base && !strings.HasPrefix(target, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes target directory", name)
	}
	return target, nil
}
