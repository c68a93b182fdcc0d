package fsops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"

	"github.com/haywardlabs/groundwork/gw/diagnostics"
	"github.com/haywardlabs/groundwork/gw/paths"
)

// ChownRecursive changes ownership of root and everything under it,
// returning the number of paths changed. Paths are collected first so the
// walk is not racing the ownership changes, then chowned concurrently.
func (o *Ops) ChownRecursive(ctx context.Context, root paths.PathValue, uid, gid int) diagnostics.Result[int] {
	o.asserts.Assert(ctx, root.Filepath() != "", "chown root path must not be empty")

	targets := make([]string, 0, 64)
	walkErr := filepath.Walk(root.Filepath(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		targets = append(targets, path)
		return nil
	})
	if walkErr != nil {
		return diagnostics.Fail[int](diagnostics.FromError(diagnostics.KindInputOutput, walkErr))
	}

	var changed int64
	p := pool.New().WithMaxGoroutines(o.maxWorkers).WithContext(ctx)
	for _, target := range targets {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.Chown(target, uid, gid); err != nil {
				return err
			}
			atomic.AddInt64(&changed, 1)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return diagnostics.Fail[int](diagnostics.FromError(diagnostics.KindSettingPermissionsFile, err))
	}

	atomic.AddInt64(&o.stats.ChownedPaths, changed)
	o.log.Debug(fmt.Sprintf("chowned %d paths under %s", changed, root.Filepath()))
	return diagnostics.Ok(int(changed))
}
