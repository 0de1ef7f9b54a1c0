package exportsvc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// versionLayout renders the wall clock into a sortable UTC tag.
const versionLayout = "20060102T150405Z"

// reserveVersion derives a version tag from now and claims it by creating
// <dir>/<tag>, retrying with -1, -2, ... while the directory already exists.
// Creation is the reservation, so concurrent exports in the same second (and
// reruns across restarts onto the same directory) never share a tag.
func reserveVersion(dir string, now time.Time) (tag, path string, err error) {
	base := now.UTC().Format(versionLayout)
	tag = base
	for n := 1; ; n++ {
		path = filepath.Join(dir, tag)
		err = os.Mkdir(path, 0o755)
		if err == nil {
			return tag, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", err
		}
		tag = fmt.Sprintf("%s-%d", base, n)
	}
}
