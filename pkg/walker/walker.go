// Copyright 2026 sepilot
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package walker enumerates candidate source files under migration roots.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🚶 Walker walks directory trees collecting files that match an extension
// predicate and are not excluded by an ignore pattern.
type Walker struct {
	extensions []string
	ignores    []string
}

// 🏭 New creates a walker. Extensions are compared against filepath.Ext;
// ignores are doublestar glob patterns matched against slash-separated paths.
func New(extensions, ignores []string) *Walker {
	return &Walker{
		extensions: extensions,
		ignores:    ignores,
	}
}

// 🔍 Walk returns every candidate file under root in lexical order. A root
// that does not exist yields (nil, false, nil): the caller reports it, the
// walker does not treat it as an error.
func (w *Walker) Walk(root string) ([]string, bool, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Errorf("checking root %s: %w", root, err)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !w.matchesExtension(path) {
			return nil
		}
		ignored, err := w.isIgnored(path)
		if err != nil {
			return err
		}
		if ignored {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, true, err
	}
	return files, true, nil
}

// matchesExtension checks the file against the extension predicate.
func (w *Walker) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range w.extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// isIgnored checks the file against the ignore globs.
func (w *Walker) isIgnored(path string) (bool, error) {
	slashed := filepath.ToSlash(path)
	for _, pattern := range w.ignores {
		matched, err := doublestar.Match(pattern, slashed)
		if err != nil {
			return false, errors.Errorf("matching ignore pattern %s: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
