package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/JaimeStill/dpi-lab/pkg/lifecycle"
)

var errNotStarted = errors.New("storage: not started")

// filesystem keeps blobs under basePath. All file access goes through an
// os.Root opened on startup, so keys cannot reach outside the base path.
type filesystem struct {
	basePath string
	root     atomic.Pointer[os.Root]
	logger   *slog.Logger
}

// New creates filesystem-backed storage rooted at cfg.BasePath. The
// directory is created and opened when the lifecycle starts.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	if cfg.BasePath == "" {
		return nil, errors.New("base_path required")
	}

	abs, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		basePath: abs,
		logger:   logger.With("system", "storage", "base_path", abs),
	}, nil
}

func (f *filesystem) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		if err := os.MkdirAll(f.basePath, 0o755); err != nil {
			f.logger.Error("create storage directory", "error", err)
			return
		}
		root, err := os.OpenRoot(f.basePath)
		if err != nil {
			f.logger.Error("open storage root", "error", err)
			return
		}
		f.root.Store(root)
		f.logger.Info("storage ready")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if root := f.root.Swap(nil); root != nil {
			root.Close()
		}
	})
	return nil
}

func (f *filesystem) Store(ctx context.Context, key string, data []byte) error {
	root, name, err := f.resolve(key)
	if err != nil {
		return err
	}

	if err := root.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return mapFSError(err, "create directory")
	}

	tmp := name + ".tmp"
	if err := root.WriteFile(tmp, data, 0o644); err != nil {
		return mapFSError(err, "write blob")
	}
	if err := root.Rename(tmp, name); err != nil {
		root.Remove(tmp)
		return mapFSError(err, "commit blob")
	}
	return nil
}

func (f *filesystem) Retrieve(ctx context.Context, key string) ([]byte, error) {
	root, name, err := f.resolve(key)
	if err != nil {
		return nil, err
	}

	data, err := root.ReadFile(name)
	if err != nil {
		return nil, mapFSError(err, "read blob")
	}
	return data, nil
}

// Delete also removes directories the blob leaves empty.
func (f *filesystem) Delete(ctx context.Context, key string) error {
	root, name, err := f.resolve(key)
	if err != nil {
		return err
	}

	if err := root.Remove(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return mapFSError(err, "remove blob")
	}

	for dir := filepath.Dir(name); dir != "."; dir = filepath.Dir(dir) {
		if root.Remove(dir) != nil {
			break
		}
	}
	return nil
}

func (f *filesystem) Validate(ctx context.Context, key string) (bool, error) {
	root, name, err := f.resolve(key)
	if err != nil {
		return false, err
	}

	_, err = root.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, mapFSError(err, "stat blob")
	}
}

func (f *filesystem) Path(ctx context.Context, key string) (string, error) {
	name, err := localName(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.basePath, name), nil
}

func (f *filesystem) resolve(key string) (*os.Root, string, error) {
	name, err := localName(key)
	if err != nil {
		return nil, "", err
	}
	root := f.root.Load()
	if root == nil {
		return nil, "", errNotStarted
	}
	return root, name, nil
}

// localName converts a slash separated key into a path local to the root.
func localName(key string) (string, error) {
	name := filepath.FromSlash(key)
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Clean(name), nil
}

func mapFSError(err error, op string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
