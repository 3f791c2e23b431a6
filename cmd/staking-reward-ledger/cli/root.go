package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/staking-reward-ledger/pkg"
)

const (
	defaultConfigFileName = "config.yml"
	configPathEnv         = "LEDGER_CONFIG_PATH"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:           "staking-reward-ledger",
		Short:         "Checkpoint based staking reward ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := pkg.Getenv(configPathEnv, getDefaultConfigFile(homePath, defaultConfigFileName))

	rootCmd.AddCommand(StartServerCmd())
	rootCmd.AddCommand(ClaimableCmd())
	rootCmd.AddCommand(HistoryCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))
	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}
