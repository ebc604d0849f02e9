package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stripcomments/internal/config"
	"stripcomments/internal/filelock"
	"stripcomments/internal/fileutil"
	"stripcomments/internal/logger"
)

// ErrUnsupportedFileType is returned when a file type is not supported
type ErrUnsupportedFileType struct {
	Extension string
}

func (e *ErrUnsupportedFileType) Error() string {
	return fmt.Sprintf("unsupported file type: %q", e.Extension)
}

// Summary counts what a run did.
type Summary struct {
	Visited    int
	Recognized int
	Rewritten  int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "stripcomments",
		Short: "Strip comments from the source tree next to this executable",
		Long: `stripcomments walks the directory that contains the executable and
removes comments in place from C-like (.js .jsx .ts .tsx .cs .c .cpp .h .mjs),
markup (.xaml .xml .csproj .resx .config .axml) and hash-style
(.ps1 .sh .bash) files. String literals are left untouched.

The directories .git, bin, obj, node_modules, .vs, .vscode and __pycache__
are skipped. Settings may also be read from ` + config.FileName + ` in that directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := executableDir()
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfigFromDir(root)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Only flags given on the command line override the file
			var levelFlag *string
			var dryRunFlag *bool
			if cmd.Flags().Changed("log-level") {
				levelFlag = &logLevel
			}
			if cmd.Flags().Changed("dry-run") {
				dryRunFlag = &dryRun
			}
			cfg.MergeWithFlags(levelFlag, dryRunFlag)

			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)
			_, err = run(root, cfg, log)
			return err
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", config.DefaultConfig().LogLevel, "Log verbosity: trace, debug, info, warn, error")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report files that would change without rewriting them")

	return cmd
}

// executableDir returns the directory holding the running binary, with
// symlinks resolved, which is the fixed root of every run.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	return filepath.Dir(resolved), nil
}

func run(root string, cfg *config.Config, log *logger.ConsoleLogger) (*Summary, error) {
	lock := filelock.ForRoot(root)
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("another run is already stripping %s (lock %s)", root, lock.Path())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.LogWarn(err.Error())
		}
	}()

	if cfg.DryRun {
		log.LogInfo("Dry run: no files will be rewritten")
	}

	summary := &Summary{}
	err = walkTree(root, func(path string) error {
		summary.Visited++

		changed, err := processFile(path, cfg.DryRun)
		if err != nil {
			var unsupportedErr *ErrUnsupportedFileType
			if errors.As(err, &unsupportedErr) {
				log.LogTrace(fmt.Sprintf("Skipping (unsupported): %s", relativeTo(root, path)))
				return nil
			}
			return fmt.Errorf("%s: %w", path, err)
		}

		summary.Recognized++
		if !changed {
			log.LogTrace(fmt.Sprintf("Unchanged: %s", relativeTo(root, path)))
			return nil
		}

		summary.Rewritten++
		if cfg.DryRun {
			log.LogDebug(fmt.Sprintf("Would remove comments from: %s", relativeTo(root, path)))
		} else {
			log.LogDebug(fmt.Sprintf("Removed comments from: %s", relativeTo(root, path)))
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	log.LogInfo(fmt.Sprintf("Visited %d files, %d supported, %d with comments removed",
		summary.Visited, summary.Recognized, summary.Rewritten))

	return summary, nil
}

// processFile strips comments from a single file according to its extension.
// Unsupported files are not opened and yield *ErrUnsupportedFileType. The file
// is only rewritten when stripping changed it, and never in dry-run mode.
func processFile(inputPath string, dryRun bool) (bool, error) {
	style, ok := styleFor(inputPath)
	if !ok {
		return false, &ErrUnsupportedFileType{Extension: fileExtension(inputPath)}
	}

	content, err := fileutil.ReadText(inputPath)
	if err != nil {
		return false, err
	}

	cleaned := style.strip(content)
	if cleaned == content {
		return false, nil
	}

	if dryRun {
		return true, nil
	}

	if err := fileutil.WriteText(inputPath, cleaned); err != nil {
		return false, fmt.Errorf("failed to write file: %w", err)
	}

	return true, nil
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
