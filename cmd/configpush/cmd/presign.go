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

package cmd

import (
	"log/slog"
	"time"

	"github.com/shittyapps/configpush/internal/app"
	"github.com/shittyapps/configpush/internal/config"
	"github.com/spf13/cobra"
)

const defaultPresignExpiresSeconds = 300

// newPresignCmd returns the presign subcommand. It prints a presigned HTTP
// PUT url for the settings object instead of uploading it.
func newPresignCmd(c *Cmd) *cobra.Command {
	var expiresSeconds int

	presignCmd := &cobra.Command{
		Use:   "presign",
		Short: "Generate a presigned PUT url for the settings object",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := app.NewLogger(c.flagsApp.LogLevel, c.flagsApp.Verbose, c.flagsApp.LogJSON)
			if err != nil {
				return err
			}

			params, err := config.NewParams(c.flagsApp.GetApp(), c.flagsUpload.GetUpload(), c.flagsAws.GetAwsS3())
			if err != nil {
				return err
			}

			expires := time.Duration(expiresSeconds) * time.Second

			svc, err := app.NewPresignService(cmd.Context(), params, expires, logger)
			if err != nil {
				return err
			}

			if err = svc.Run(cmd.Context()); err != nil {
				logger.Error("presign failed", slog.Any("error", err))

				return err
			}

			return nil
		},
	}

	presignCmd.Flags().IntVar(&expiresSeconds, "expires",
		defaultPresignExpiresSeconds,
		"Expiration of the presigned url in seconds.")

	return presignCmd
}
