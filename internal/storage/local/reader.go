// Copyright 2025 ShittyApps, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package local

import (
	"fmt"
	"io"
	"os"
)

// Reader reads the settings file from the local filesystem.
type Reader struct {
	path string
}

// NewReader creates a reader for the file at path.
func NewReader(path string) (*Reader, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}

	return &Reader{path: path}, nil
}

// Check verifies that the file exists and is a regular file.
// It is called before any network operation is attempted.
func (r *Reader) Check() error {
	info, err := os.Stat(r.path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", r.path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", r.path)
	}

	return nil
}

// Open opens the file and returns its reader together with its size.
// The caller is responsible for closing the reader.
func (r *Reader) Open() (io.ReadCloser, int64, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to stat %s: %w", r.path, err)
	}

	if info.IsDir() {
		return nil, 0, fmt.Errorf("%s is a directory, not a file", r.path)
	}

	file, err := os.Open(r.path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open %s: %w", r.path, err)
	}

	return file, info.Size(), nil
}

// Path returns the path the reader was created with.
func (r *Reader) Path() string {
	return r.path
}
