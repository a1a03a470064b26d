// Package web holds the static pages of the diagnostics server.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DevEnv names the variable that makes the server read the pages from the
// source tree instead of the binary.
const DevEnv = "DSISIM_MONITOR_DEV"

//go:embed dist/*
var staticAssets embed.FS

// GetAssets returns the static pages.
func GetAssets() http.FileSystem {
	if dir, ok := sourceDir(); ok {
		return http.Dir(dir)
	}

	dist, err := fs.Sub(staticAssets, "dist")
	if err != nil {
		panic(err)
	}

	return http.FS(dist)
}

func sourceDir() (string, bool) {
	switch strings.ToLower(os.Getenv(DevEnv)) {
	case "1", "true":
	default:
		return "", false
	}

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot locate the web sources")
	}

	return filepath.Join(filepath.Dir(file), "dist"), true
}
