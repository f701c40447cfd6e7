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

import "fmt"

// AwsS3 represents the configuration of the destination S3 storage.
type AwsS3 struct {
	BucketName string
	Region     string
	Profile    string
	// Endpoint is an alternate url to send S3 API calls to, e.g. a minio instance.
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// Validate internal validation for struct params.
func (a *AwsS3) Validate() error {
	if a.BucketName == "" {
		return fmt.Errorf("bucket name is required")
	}

	if a.Region == "" {
		return fmt.Errorf("region is required")
	}

	if a.AccessKeyID != "" && a.SecretAccessKey == "" {
		return fmt.Errorf("secret access key is required when access key id is set")
	}

	if a.AccessKeyID == "" && a.SecretAccessKey != "" {
		return fmt.Errorf("access key id is required when secret access key is set")
	}

	return nil
}
