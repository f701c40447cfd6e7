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

package models

import (
	"fmt"
	"strings"
)

// Upload represents the target of a single settings upload.
type Upload struct {
	// AppID is the application whose settings file is uploaded.
	// It drives the default file name and remote key.
	AppID string
	// LocalFilePath is the path of the settings file on the invoking machine.
	LocalFilePath string
	// RemoteKey is the destination key inside the bucket.
	RemoteKey string
	// ContentType is the MIME type set on the uploaded object.
	ContentType string
}

// Validate internal validation for struct params.
func (u *Upload) Validate() error {
	if u.LocalFilePath == "" {
		return fmt.Errorf("local file path is required")
	}

	if u.RemoteKey == "" {
		return fmt.Errorf("remote key is required")
	}

	if strings.HasPrefix(u.RemoteKey, "/") {
		return fmt.Errorf("remote key must not start with /")
	}

	if u.ContentType == "" {
		return fmt.Errorf("content type is required")
	}

	return nil
}
