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

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shittyapps/configpush/internal/models"
)

// Compiled-in defaults. Running the tool with no flags uploads the
// dating coach settings, same as the ops scripts always did.
const (
	DefaultAppID       = "dating_coach"
	DefaultBucketName  = "shittyapps-config"
	DefaultRegion      = "us-east-1"
	DefaultContentType = "application/json"

	remoteKeyPrefix = "app-settings/"
)

// Environment variables recognized by the tool. A .env file in the working
// directory is loaded first, matching the behavior of the platform services.
const (
	envAppID           = "CONFIGPUSH_APP_ID"
	envFile            = "CONFIGPUSH_FILE"
	envKey             = "CONFIGPUSH_KEY"
	envContentType     = "CONFIGPUSH_CONTENT_TYPE"
	envBucketName      = "CONFIGPUSH_S3_BUCKET"
	envRegion          = "CONFIGPUSH_S3_REGION"
	envProfile         = "CONFIGPUSH_S3_PROFILE"
	envEndpoint        = "CONFIGPUSH_S3_ENDPOINT"
	envAccessKeyID     = "CONFIGPUSH_S3_ACCESS_KEY_ID"
	envSecretAccessKey = "CONFIGPUSH_S3_SECRET_ACCESS_KEY"
)

// Params is a container that holds the resolved configuration of a run.
type Params struct {
	App    *models.App
	Upload *models.Upload
	AwsS3  *models.AwsS3
}

// fileParams mirrors Params for YAML decoding.
type fileParams struct {
	AppID       string         `yaml:"app-id"`
	File        string         `yaml:"file"`
	Key         string         `yaml:"key"`
	ContentType string         `yaml:"content-type"`
	S3          fileParamsToS3 `yaml:"s3"`
}

type fileParamsToS3 struct {
	BucketName      string `yaml:"bucket-name"`
	Region          string `yaml:"region"`
	Profile         string `yaml:"profile"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access-key-id"`
	SecretAccessKey string `yaml:"secret-access-key"`
}

// NewParams resolves the configuration of a run by layering, from lowest to
// highest precedence: compiled-in defaults, the YAML config file, environment
// variables, command line flags. Returns validated params or an error.
func NewParams(app *models.App, upload *models.Upload, awsS3 *models.AwsS3) (*Params, error) {
	params := &Params{
		App: app,
		Upload: &models.Upload{
			AppID:       DefaultAppID,
			ContentType: DefaultContentType,
		},
		AwsS3: &models.AwsS3{
			BucketName: DefaultBucketName,
			Region:     DefaultRegion,
		},
	}

	if app.ConfigFilePath != "" {
		fp := &fileParams{}
		if err := decodeFromFile(app.ConfigFilePath, fp); err != nil {
			return nil, err
		}

		params.applyFile(fp)
	}

	params.applyEnv()
	params.applyFlags(upload, awsS3)

	// The file name and key follow the app id unless set explicitly.
	if params.Upload.LocalFilePath == "" {
		params.Upload.LocalFilePath = params.Upload.AppID + ".json"
	}

	if params.Upload.RemoteKey == "" {
		params.Upload.RemoteKey = remoteKeyPrefix + params.Upload.AppID + ".json"
	}

	if err := params.validate(); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *Params) applyFile(fp *fileParams) {
	setIfNotEmpty(&p.Upload.AppID, fp.AppID)
	setIfNotEmpty(&p.Upload.LocalFilePath, fp.File)
	setIfNotEmpty(&p.Upload.RemoteKey, fp.Key)
	setIfNotEmpty(&p.Upload.ContentType, fp.ContentType)
	setIfNotEmpty(&p.AwsS3.BucketName, fp.S3.BucketName)
	setIfNotEmpty(&p.AwsS3.Region, fp.S3.Region)
	setIfNotEmpty(&p.AwsS3.Profile, fp.S3.Profile)
	setIfNotEmpty(&p.AwsS3.Endpoint, fp.S3.Endpoint)
	setIfNotEmpty(&p.AwsS3.AccessKeyID, fp.S3.AccessKeyID)
	setIfNotEmpty(&p.AwsS3.SecretAccessKey, fp.S3.SecretAccessKey)
}

func (p *Params) applyEnv() {
	// A missing .env file is fine, variables may come from the environment itself.
	_ = godotenv.Load()

	setIfNotEmpty(&p.Upload.AppID, os.Getenv(envAppID))
	setIfNotEmpty(&p.Upload.LocalFilePath, os.Getenv(envFile))
	setIfNotEmpty(&p.Upload.RemoteKey, os.Getenv(envKey))
	setIfNotEmpty(&p.Upload.ContentType, os.Getenv(envContentType))
	setIfNotEmpty(&p.AwsS3.BucketName, os.Getenv(envBucketName))
	setIfNotEmpty(&p.AwsS3.Region, os.Getenv(envRegion))
	setIfNotEmpty(&p.AwsS3.Profile, os.Getenv(envProfile))
	setIfNotEmpty(&p.AwsS3.Endpoint, os.Getenv(envEndpoint))
	setIfNotEmpty(&p.AwsS3.AccessKeyID, os.Getenv(envAccessKeyID))
	setIfNotEmpty(&p.AwsS3.SecretAccessKey, os.Getenv(envSecretAccessKey))
}

func (p *Params) applyFlags(upload *models.Upload, awsS3 *models.AwsS3) {
	setIfNotEmpty(&p.Upload.AppID, upload.AppID)
	setIfNotEmpty(&p.Upload.LocalFilePath, upload.LocalFilePath)
	setIfNotEmpty(&p.Upload.RemoteKey, upload.RemoteKey)
	setIfNotEmpty(&p.Upload.ContentType, upload.ContentType)
	setIfNotEmpty(&p.AwsS3.BucketName, awsS3.BucketName)
	setIfNotEmpty(&p.AwsS3.Region, awsS3.Region)
	setIfNotEmpty(&p.AwsS3.Profile, awsS3.Profile)
	setIfNotEmpty(&p.AwsS3.Endpoint, awsS3.Endpoint)
	setIfNotEmpty(&p.AwsS3.AccessKeyID, awsS3.AccessKeyID)
	setIfNotEmpty(&p.AwsS3.SecretAccessKey, awsS3.SecretAccessKey)
}

func (p *Params) validate() error {
	if err := p.Upload.Validate(); err != nil {
		return fmt.Errorf("invalid upload params: %w", err)
	}

	if err := p.AwsS3.Validate(); err != nil {
		return fmt.Errorf("invalid s3 params: %w", err)
	}

	return nil
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
