// Command mlkem-cli exposes ML-KEM key generation, encapsulation, and
// decapsulation, plus an ML-DSA-signed "seal" capsule and a throughput
// benchmark, as a small cobra-based tool.
package main

import (
	"fmt"
	"os"

	"github.com/shadowmesh/mlkem-core/pkg/logging"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	paramSetFlag string
	encodingFlag string
	logLevelFlag string
	logger       *logging.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "mlkem-cli",
		Short:   "ML-KEM (FIPS 203) key encapsulation from the command line",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New("mlkem-cli", parseLevel(logLevelFlag), os.Stderr)
		},
	}
	root.PersistentFlags().StringVar(&paramSetFlag, "param-set", "ML-KEM-768", "parameter set: ML-KEM-512, ML-KEM-768, or ML-KEM-1024")
	root.PersistentFlags().StringVar(&encodingFlag, "encoding", "hex", "output encoding: hex or base64")
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newKeyGenCmd())
	root.AddCommand(newEncapsCmd())
	root.AddCommand(newDecapsCmd())
	root.AddCommand(newSealCmd())
	root.AddCommand(newBenchCmd())
	return root
}

func parseLevel(s string) logging.LogLevel {
	switch s {
	case "debug":
		return logging.DEBUG
	case "warn":
		return logging.WARN
	case "error":
		return logging.ERROR
	default:
		return logging.INFO
	}
}
