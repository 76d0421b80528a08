package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gogeomine/internal/config"
	"github.com/dbsmedya/gogeomine/internal/verifier"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display build details and the mining defaults compiled into this binary.

The defaults apply when neither the configuration file nor a flag sets them.`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	defaults := config.DefaultConfig().Mining

	cmd.Printf("gogeomine version %s\n", Version)
	cmd.Printf("  Commit: %s\n", Commit)
	cmd.Printf("  Go version: %s\n", runtime.Version())
	cmd.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	cmd.Printf("  Default min_sup: %g (%s)\n", defaults.MinSup, defaults.MinSupMode)
	cmd.Printf("  Default verification: %s (available: %s, %s)\n",
		defaults.Verification, verifier.MethodIndex, verifier.MethodScan)
}
