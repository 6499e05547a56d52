package main

import (
	"fmt"
	"os"

	"github.com/Divkix/Logwell/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const version = "0.1.0"

var configPath *string

func main() {
	rootCmd := &cobra.Command{
		Use:     "logwell-check --config <FILE_PATH>",
		Short:   "Validates a Logwell SDK config file and prints the normalized result",
		Version: version,
		RunE:    run,
	}

	setupCommandFlags(rootCmd)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setupCommandFlags(rootCmd *cobra.Command) {
	configPath = rootCmd.Flags().StringP("config", "c", "", "[required]The path for the config file")
	err := rootCmd.MarkFlagRequired("config")
	if err != nil {
		panic(fmt.Sprintf("err on flags setup: %v", err))
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	confData, err := os.ReadFile(*configPath)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	conf, err := config.FromYAML(confData)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	rendered, err := yaml.Marshal(conf.AsMap())
	if err != nil {
		return fmt.Errorf("error rendering normalized config: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(rendered))
	return nil
}
