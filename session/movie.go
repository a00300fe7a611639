package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	movieTimeLayout = "060102-150405"
	movieExt        = ".mov"
	moviesDir       = "Movies"
)

// MovieName returns prefix followed by the local timestamp of t and the movie extension.
func MovieName(prefix string, t time.Time) string {
	return prefix + t.Format(movieTimeLayout) + movieExt
}

// MovieFolder returns preferred when it is an existing directory, otherwise the Movies
// folder of the user's home, otherwise the home itself.
func MovieFolder(preferred string) (string, error) {
	if preferred != "" && isDir(preferred) {
		return preferred, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("movie folder: %w", err)
	}
	if movies := filepath.Join(home, moviesDir); isDir(movies) {
		return movies, nil
	}
	return home, nil
}

// MoviePath joins the movie folder resolved from preferred with a movie name for t.
func MoviePath(preferred, prefix string, t time.Time) (string, error) {
	folder, err := MovieFolder(preferred)
	if err != nil {
		return "", err
	}
	return filepath.Join(folder, MovieName(prefix, t)), nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
