package tests

import (
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
)

type walkFunc func(string) error

// Walk walks through every non-test code file in project.
func Walk(t *testing.T, baseDir string, excludes []string, wf walkFunc) {
	baseDir = path.Join("../", baseDir)

	err := filepath.Walk(baseDir, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		p := strings.TrimPrefix(path, "../")

		if f.IsDir() {
			if strings.HasPrefix(f.Name(), ".") && path != baseDir {
				return filepath.SkipDir
			}
			if isExcluded(p+"/", excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		if isExcluded(p, excludes) {
			return nil
		}

		return wf(path)
	})

	if err != nil {
		t.Fatal(err)
	}
}

func isExcluded(p string, excludes []string) bool {
	for _, exclude := range excludes {
		if strings.HasPrefix(p, exclude) {
			return true
		}
	}
	return false
}

// ReadFile reads code file from disk.
func ReadFile(path string) []string {
	codeBytes, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}

	codes := strings.Split(string(codeBytes), "\n")
	return codes
}
