// package cli implements the oaps-proof command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/oaps-proof/internal/config"
	"github.com/information-sharing-networks/oaps-proof/internal/crypto"
	"github.com/information-sharing-networks/oaps-proof/internal/logger"
	"github.com/information-sharing-networks/oaps-proof/internal/proof"
	"github.com/information-sharing-networks/oaps-proof/internal/version"
)

// exit codes
const (
	exitOK       = 0
	exitFailure  = 1
	exitParse    = 2
	exitMalform  = 3
	exitIO       = 4
	exitEncoding = 5
)

const defaultPreviewLength = 200

// app holds the state shared by the commands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg       *config.Environment
	appLogger *slog.Logger

	// flags
	profileName  string
	outputFormat string
	previewLen   int
}

// Execute runs the command line with the process arguments and exits with the command's status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code.
// A failure is reported as a single "Error: <message>" line on stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}

	newPrinter(stderr).errorLine(err)
	return exitCode(err)
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "oaps-proof <proof.json>",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "OAPS proof hash generator",
		Long: `Canonicalize a JSON proof document and compute its Keccak-256 proof hash.

Object names are sorted, insignificant whitespace is removed and numbers are normalized,
so documents with the same content always produce the same hash.

Profiles:
  oaps    default canonical form (names sorted by UTF-8 bytes, exact numbers)
  jcs     RFC 8785 JSON Canonicalization Scheme
  legacy  Python json.dumps(sort_keys=True, separators=(",", ":")) compatible

Example:
  oaps-proof proof.json
  oaps-proof --profile legacy --output json proof.json`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHash(args[0])
		},
	}

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.profileName, "profile", "", "canonicalization profile: oaps, jcs or legacy (default from CANONICAL_PROFILE)")
	flags.StringVarP(&a.outputFormat, "output", "o", outputText, "output format: text or json")
	rootCmd.Flags().IntVar(&a.previewLen, "preview", defaultPreviewLength, "number of canonical JSON characters to show (0 hides the preview, -1 shows all)")

	rootCmd.AddCommand(
		newVerifyCmd(a),
		newCanonicalizeCmd(a),
		newBatchCmd(a),
		newDiffCmd(a),
	)
	return rootCmd
}

// init loads the configuration and the logger and validates the global flags.
func (a *app) init() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	a.appLogger = logger.InitLogger(a.stderr, logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	if a.outputFormat != outputText && a.outputFormat != outputJSON {
		return fmt.Errorf("invalid --output %q (must be %s or %s)", a.outputFormat, outputText, outputJSON)
	}

	if a.profileName != "" {
		if _, err := crypto.ParseProfile(a.profileName); err != nil {
			return fmt.Errorf("invalid --profile: %w", err)
		}
	}

	a.appLogger.Debug("configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.String("CANONICAL_PROFILE", cfg.CanonicalProfile),
		slog.Int64("MAX_DOCUMENT_SIZE", cfg.MaxDocumentSize),
		slog.Int("BATCH_WORKERS", cfg.BatchWorkers),
	)
	return nil
}

// profile returns the --profile flag if set, otherwise the configured default.
func (a *app) profile() crypto.Profile {
	if a.profileName != "" {
		p, _ := crypto.ParseProfile(a.profileName)
		return p
	}
	return a.cfg.Profile()
}

func (a *app) generator() *proof.Generator {
	return proof.NewGenerator(a.profile(), a.cfg.MaxDocumentSize, a.appLogger)
}

func (a *app) runHash(path string) error {
	result, err := a.generator().GenerateFromFile(path)
	if err != nil {
		return err
	}

	if a.outputFormat == outputJSON {
		return writeJSON(a.stdout, newHashOutput(result))
	}

	p := newPrinter(a.stdout)
	p.header("OAPS Proof Hash Generated:")
	p.field("Input File", result.Source)
	p.field("Keccak256 Hash", result.Hash)
	switch {
	case a.previewLen < 0:
		p.field("Canonical JSON", string(result.Canonical))
	case a.previewLen > 0:
		preview, truncated := result.Preview(a.previewLen)
		if truncated {
			preview += "..."
		}
		p.field(fmt.Sprintf("Canonical JSON (first %d chars)", a.previewLen), preview)
	}
	return p.err
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, proof.ErrHashMismatch) {
		return exitFailure
	}

	switch crypto.CodeOf(err) {
	case crypto.ErrCodeParse:
		return exitParse
	case crypto.ErrCodeMalformedInput:
		return exitMalform
	case crypto.ErrCodeIO:
		return exitIO
	case crypto.ErrCodeEncoding:
		return exitEncoding
	default:
		return exitFailure
	}
}
