package locator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/pomsync/internal/core"
	"github.com/indaco/pomsync/internal/testutils"
)

func TestService_SearchFile(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/proj/app/package.json", []byte("{}"))
	fs.SetFile("/proj/build/Pom.xml", []byte("<project/>"))
	fs.SetFile("/proj/README.md", []byte("readme"))

	svc := NewService(fs)
	ctx := context.Background()

	got, err := svc.SearchFile(ctx, "package.json", "/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join("/proj", "app", "package.json") {
		t.Errorf("SearchFile() = %q, want /proj/app/package.json", got)
	}

	if _, err := svc.SearchFile(ctx, "Cargo.toml", "/proj"); !errors.Is(err, core.ErrFileNotFound) {
		t.Errorf("error = %v, want ErrFileNotFound", err)
	}
}

func TestService_SearchFile_SubstringMatch(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/proj/old-package.json.bak", []byte("{}"))

	svc := NewService(fs)
	got, err := svc.SearchFile(context.Background(), "package.json", "/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(got) != "old-package.json.bak" {
		t.Errorf("SearchFile() = %q, want substring match", got)
	}
}

func TestService_SearchFile_DepthFirstOrder(t *testing.T) {
	fs := core.NewMockFileSystem()
	// "a" is listed before "z-package.json", so its subtree is searched first.
	fs.SetFile("/proj/a/deep/package.json", []byte("{}"))
	fs.SetFile("/proj/z-package.json", []byte("{}"))

	svc := NewService(fs)
	got, err := svc.SearchFile(context.Background(), "package.json", "/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join("/proj", "a", "deep", "package.json") {
		t.Errorf("SearchFile() = %q, want the first entry in traversal order", got)
	}
}

func TestService_SearchFile_SkipsDirectoriesAndUnreadable(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetDir("/proj/package.json.d")
	fs.SetFile("/proj/locked/package.json", []byte("{}"))
	fs.SetReadError("/proj/locked", os.ErrPermission)
	fs.SetFile("/proj/web/package.json", []byte("{}"))

	svc := NewService(fs)
	got, err := svc.SearchFile(context.Background(), "package.json", "/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join("/proj", "web", "package.json") {
		t.Errorf("SearchFile() = %q, want /proj/web/package.json", got)
	}
}

func TestService_SearchFile_RootErrors(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/proj/file.txt", []byte("x"))
	svc := NewService(fs)
	ctx := context.Background()

	if _, err := svc.SearchFile(ctx, "package.json", "/missing"); !errors.Is(err, core.ErrFileNotFound) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing root error = %v, want ErrFileNotFound wrapping ErrNotExist", err)
	}

	fs.SetReadError("/proj", os.ErrPermission)
	if _, err := svc.SearchFile(ctx, "package.json", "/proj"); !errors.Is(err, os.ErrPermission) {
		t.Errorf("unreadable root error = %v, want ErrPermission", err)
	}

	if _, err := svc.SearchFile(ctx, "", "/proj"); !errors.Is(err, core.ErrBadParams) {
		t.Errorf("empty name error = %v, want ErrBadParams", err)
	}
}

func TestService_SearchFile_RootIsFile(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/proj/Pom.xml", []byte("<project/>"))

	svc := NewService(fs)
	got, err := svc.SearchFile(context.Background(), "Pom.xml", "/proj/Pom.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/proj/Pom.xml" {
		t.Errorf("SearchFile() = %q, want the root itself", got)
	}
}

func TestService_SearchFile_Cancelled(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/proj/package.json", []byte("{}"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(fs).SearchFile(ctx, "package.json", "/proj")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestService_Locate(t *testing.T) {
	tests := []struct {
		name      string
		files     []string
		wantErr   error
		wantInOut []string
	}{
		{
			name:      "both found",
			files:     []string{"/proj/app/package.json", "/proj/build/Pom.xml"},
			wantInOut: []string{"package.json", "Pom.xml", "found at"},
		},
		{
			name:      "neither found",
			files:     []string{"/proj/README.md"},
			wantErr:   core.ErrFileNotFound,
			wantInOut: []string{"either file", "source:", "target:", "path searched: /proj"},
		},
		{
			name:      "target missing",
			files:     []string{"/proj/app/package.json"},
			wantErr:   core.ErrTargetNotFound,
			wantInOut: []string{"Target file not found", "source: found", "path searched: /proj"},
		},
		{
			name:      "source missing",
			files:     []string{"/proj/build/Pom.xml"},
			wantErr:   core.ErrSourceNotFound,
			wantInOut: []string{"Source file not found", "target: found", "path searched: /proj"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			for _, f := range tt.files {
				fs.SetFile(f, []byte("x"))
			}
			svc := NewService(fs)

			var paths Paths
			var err error
			output, captureErr := testutils.CaptureStdout(func() {
				paths, err = svc.Locate(context.Background(), "package.json", "Pom.xml", "/proj")
			})
			if captureErr != nil {
				t.Fatalf("CaptureStdout: %v", captureErr)
			}

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if paths.Source != tt.files[0] || paths.Target != tt.files[1] {
					t.Errorf("Locate() = %+v", paths)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}

			for _, want := range tt.wantInOut {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestService_Locate_KindsAreDistinct(t *testing.T) {
	kinds := []error{core.ErrFileNotFound, core.ErrTargetNotFound, core.ErrSourceNotFound}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v must not match %v", a, b)
			}
		}
	}
}

func TestService_Locate_OSFileSystem(t *testing.T) {
	root := t.TempDir()
	src := testutils.WriteTempFile(t, root, filepath.Join("app", "package.json"), "{}\n")
	tgt := testutils.WriteTempFile(t, root, filepath.Join("build", "Pom.xml"), "<project/>\n")

	var paths Paths
	var err error
	_, _ = testutils.CaptureStdout(func() {
		paths, err = NewService(core.NewOSFileSystem()).Locate(context.Background(), "package.json", "Pom.xml", root)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paths.Source != src || paths.Target != tgt {
		t.Errorf("Locate() = %+v, want {%s %s}", paths, src, tgt)
	}
}
