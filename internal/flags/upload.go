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

package flags

import (
	"github.com/shittyapps/configpush/internal/models"
	"github.com/spf13/pflag"
)

type Upload struct {
	models.Upload
}

func NewUpload() *Upload {
	return &Upload{}
}

func (f *Upload) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}

	flagSet.StringVar(&f.AppID, "app-id",
		"",
		"Application id whose settings are uploaded. Drives the default file name and key.")
	flagSet.StringVar(&f.LocalFilePath, "file",
		"",
		"Path to the local settings file. Defaults to <app-id>.json.")
	flagSet.StringVar(&f.RemoteKey, "key",
		"",
		"Destination key inside the bucket. Defaults to app-settings/<app-id>.json.")
	flagSet.StringVar(&f.ContentType, "content-type",
		"",
		"Content type set on the uploaded object.")

	return flagSet
}

func (f *Upload) GetUpload() *models.Upload {
	return &f.Upload
}
