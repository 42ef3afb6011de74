package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("BANKASSIST_RUNTIME_PATH"))
}

// resolveRuntimePath anchors a relative runtime path at the user's home
// directory so the location does not depend on the working directory.
func resolveRuntimePath(path string) string {
	if path == "" {
		path = ".bankassist"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
