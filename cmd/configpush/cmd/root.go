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
	"fmt"
	"log/slog"

	"github.com/shittyapps/configpush/internal/app"
	"github.com/shittyapps/configpush/internal/config"
	"github.com/shittyapps/configpush/internal/flags"
	"github.com/spf13/cobra"
)

const VersionDev = "dev"

// Cmd represents the base command when called without any subcommands.
type Cmd struct {
	// Version params.
	appVersion string
	commitHash string

	// Root flags.
	flagsApp    *flags.App
	flagsUpload *flags.Upload
	flagsAws    *flags.AwsS3
}

func NewCmd(appVersion, commitHash string) *cobra.Command {
	c := &Cmd{
		appVersion: appVersion,
		commitHash: commitHash,

		flagsApp:    flags.NewApp(),
		flagsUpload: flags.NewUpload(),
		flagsAws:    flags.NewAwsS3(),
	}

	rootCmd := &cobra.Command{
		Use:   "configpush",
		Short: "Config Service settings upload tool",
		RunE:  c.run,
	}

	// Disable sorting
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.SilenceUsage = true

	appFlagSet := c.flagsApp.NewFlagSet()
	uploadFlagSet := c.flagsUpload.NewFlagSet()
	awsFlagSet := c.flagsAws.NewFlagSet()

	rootCmd.PersistentFlags().AddFlagSet(appFlagSet)
	rootCmd.PersistentFlags().AddFlagSet(uploadFlagSet)
	rootCmd.PersistentFlags().AddFlagSet(awsFlagSet)

	// Add sub command.
	rootCmd.AddCommand(newPresignCmd(c))

	// Beautify help and usage.
	helpFunc := func() {
		fmt.Println("Upload an app settings file to the Config Service bucket.")
		fmt.Println("----------------------------------------------------------")
		fmt.Println("\nUsage:")
		fmt.Println("  configpush [flags]")
		fmt.Println("  configpush presign [flags]")

		// Print section: App Flags
		fmt.Println("\nGeneral Flags:")
		appFlagSet.PrintDefaults()

		// Print section: Upload Flags
		fmt.Println("\nUpload Flags:\n" +
			"Without flags the compiled-in defaults are used: the dating_coach settings\n" +
			"file from the working directory goes to app-settings/dating_coach.json.")
		uploadFlagSet.PrintDefaults()

		// Print section: AWS Flags
		fmt.Println("\nAWS Flags:\n" +
			"Credentials are resolved by the SDK default chain (env, shared config, IAM role)\n" +
			"unless --s3-profile or the key pair flags are set.\n" +
			"--s3-endpoint-override is used in case you want to use minio, instead of AWS.")
		awsFlagSet.PrintDefaults()
	}

	rootCmd.SetUsageFunc(func(_ *cobra.Command) error {
		helpFunc()
		return nil
	})
	rootCmd.SetHelpFunc(func(_ *cobra.Command, _ []string) {
		helpFunc()
	})

	return rootCmd
}

func (c *Cmd) run(cmd *cobra.Command, _ []string) error {
	// Show version.
	if c.flagsApp.Version {
		c.printVersion()

		return nil
	}

	// Init logger.
	logger, err := app.NewLogger(c.flagsApp.LogLevel, c.flagsApp.Verbose, c.flagsApp.LogJSON)
	if err != nil {
		return err
	}

	// Resolve params. Running without flags uploads the defaults.
	params, err := config.NewParams(c.flagsApp.GetApp(), c.flagsUpload.GetUpload(), c.flagsAws.GetAwsS3())
	if err != nil {
		return err
	}

	svc, err := app.NewUploadService(cmd.Context(), params, logger)
	if err != nil {
		return err
	}

	if err = svc.Run(cmd.Context()); err != nil {
		logger.Error("upload failed", slog.Any("error", err))

		return err
	}

	return nil
}

func (c *Cmd) printVersion() {
	version := c.appVersion
	if c.appVersion == VersionDev {
		version += " (" + c.commitHash + ")"
	}

	fmt.Printf("version: %s\n", version)
}
