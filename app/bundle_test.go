package app

import (
	"bufio"
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/simukka/sonosphere"

// browserImportAllowed lists what the GopherJS bundle may pull in besides
// the standard library and its own packages.
var browserImportAllowed = []string{
	"github.com/gopherjs/gopherjs/",
	"github.com/go-gl/mathgl/",
}

func TestBrowserBundleImports(t *testing.T) {
	root, err := filepath.Abs("..")
	if err != nil {
		t.Fatal(err)
	}

	ctx := build.Default
	ctx.GOOS = "js"
	ctx.GOARCH = "wasm"
	ctx.CgoEnabled = false

	seen := map[string]bool{}
	queue := []string{modulePath}
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		if seen[path] {
			continue
		}
		seen[path] = true

		if strings.HasPrefix(path, modulePath+"/cmd/") {
			t.Errorf("Expected the bundle to stay out of %s", path)
			continue
		}

		dir := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(path, modulePath)))
		pkg, err := ctx.ImportDir(dir, 0)
		if err != nil {
			t.Fatalf("Import %s: %v", path, err)
		}

		for _, imp := range pkg.Imports {
			switch {
			case imp == modulePath || strings.HasPrefix(imp, modulePath+"/"):
				queue = append(queue, imp)
			case !strings.Contains(strings.SplitN(imp, "/", 2)[0], "."):
				// standard library
			case !allowedBrowserImport(imp):
				t.Errorf("Expected %s not to import %s in the browser build", path, imp)
			}
		}
	}

	for _, want := range []string{modulePath + "/app", modulePath + "/audio", modulePath + "/render"} {
		if !seen[want] {
			t.Errorf("Expected the bundle to reach %s", want)
		}
	}
}

func allowedBrowserImport(imp string) bool {
	for _, prefix := range browserImportAllowed {
		if strings.HasPrefix(imp+"/", prefix) {
			return true
		}
	}
	return false
}

func TestModuleGoVersion(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "go.mod"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	version := ""
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if fields := strings.Fields(sc.Text()); len(fields) == 2 && fields[0] == "go" {
			version = fields[1]
		}
	}
	if version != "1.20" {
		t.Errorf("Expected go 1.20 for the GopherJS toolchain, got %q", version)
	}
}
