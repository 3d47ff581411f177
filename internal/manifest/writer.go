package manifest

import (
	"context"
	"fmt"

	"github.com/indaco/pomsync/internal/core"
)

// WriteFile truncates path and writes text in full, keeping the existing
// permission bits when the file is already there.
func WriteFile(ctx context.Context, fs core.FileSystem, path, text string) error {
	perm := core.PermOwnerRW
	if info, err := fs.Stat(ctx, path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := fs.WriteFile(ctx, path, []byte(text), perm); err != nil {
		return fmt.Errorf("%w: failed to write file %q: %w", core.ErrIO, path, err)
	}
	return nil
}
