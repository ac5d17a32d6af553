package render

import (
	"os"
	"path/filepath"

	"github.com/ardnew/mung"

	"github.com/ardnew/stencil/pkg"
)

// Ext is the file extension tried when a template name has none.
const Ext = ".tmpl"

// PathEnv is the environment variable holding the default template search
// path, a list separated by [os.PathListSeparator].
const PathEnv = pkg.EnvPrefix + "PATH"

// SearchPath returns the template search path formed by prefixing dirs onto
// the list in env. Empty and duplicate entries are removed; the first
// occurrence wins.
func SearchPath(dirs []string, env string) []string {
	joined := mung.Make(
		mung.WithSubjectItems(env),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
	).String()

	seen := make(map[string]struct{})

	var path []string

	for _, dir := range filepath.SplitList(joined) {
		if dir == "" {
			continue
		}

		dir = filepath.Clean(dir)
		if _, ok := seen[dir]; ok {
			continue
		}

		seen[dir] = struct{}{}
		path = append(path, dir)
	}

	return path
}

// Resolve returns the file naming template name.
//
// A name that refers to an existing regular file is used as is. Otherwise
// each directory of path is searched in order for name and then for name
// with [Ext] appended, and finally name with [Ext] is tried as is.
func Resolve(name string, path []string) (string, error) {
	if isFile(name) {
		return name, nil
	}

	if !filepath.IsAbs(name) {
		for _, dir := range path {
			for _, cand := range candidates(filepath.Join(dir, name)) {
				if isFile(cand) {
					return cand, nil
				}
			}
		}
	}

	if filepath.Ext(name) != Ext && isFile(name+Ext) {
		return name + Ext, nil
	}

	return "", pkg.ErrTemplateNotFound.Wrap(pkg.Text(name))
}

func candidates(file string) []string {
	if filepath.Ext(file) == Ext {
		return []string{file}
	}

	return []string{file, file + Ext}
}

func isFile(name string) bool {
	info, err := os.Stat(name)

	return err == nil && info.Mode().IsRegular()
}
