package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wagoodman/go-partybus"

	"github.com/runjot/runjot/internal/ui"
	"github.com/runjot/runjot/internal/util"
	"github.com/runjot/runjot/runjot"
	"github.com/runjot/runjot/runjot/presenter"
)

// params key that always carries the executed command line
const commandParamKey = "command"

var (
	runName   string
	runParams []string
)

var rootCmd = &cobra.Command{
	Use:   "runjot [flags] -- COMMAND [ARGS...]",
	Short: "Run a command and append one JSON line describing the run to a log file",
	Long: `Runjot runs COMMAND, times it, and appends one JSON line for the run (parameters,
exit metrics, timestamp, duration, name) to an append-only log file. A command that
fails is not recorded.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if appConfig.Dev.ProfileCPU {
			defer profile.Start(profile.CPUProfile).Stop()
		}

		if err := runCommand(args); err != nil {
			log.Errorf(err.Error())
			os.Exit(exitCode(err))
		}
	},
}

func init() {
	// let everything after the first positional arg belong to the child command
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().StringVarP(&runName, "name", "n", "", "name the run is recorded under (default: the command basename)")

	rootCmd.Flags().StringArrayVarP(&runParams, "param", "p", nil, "run parameter as key=value (repeatable); values that parse as JSON keep their type")

	flag := "log-file"
	rootCmd.Flags().StringP(flag, "f", runjot.DefaultLogFile, "file the run record is appended to")
	if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "output"
	rootCmd.Flags().StringP(flag, "o", presenter.JSONPresenter.String(), fmt.Sprintf("how to show the recorded run, options=%v", presenter.Options))
	if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}
}

func runCommand(args []string) error {
	name := runName
	if name == "" {
		name = filepath.Base(args[0])
	}

	params, err := util.ParseKeyValues(runParams)
	if err != nil {
		return fmt.Errorf("invalid --param: %w", err)
	}
	if _, ok := params[commandParamKey]; ok {
		return fmt.Errorf("param key %q is reserved", commandParamKey)
	}
	params[commandParamKey] = strings.Join(args, " ")

	recorderOptions := []runjot.Option{runjot.WithLogFile(appConfig.LogFile)}
	if appConfig.RunIDs {
		recorderOptions = append(recorderOptions, runjot.WithRunIDs())
	}
	recorder := runjot.NewRecorder(recorderOptions...)

	eventBus := partybus.NewBus()
	subscription := eventBus.Subscribe()
	runjot.SetBus(eventBus)

	return ui.LoggerUI(startRun(recorder, name, params, args), subscription, appConfig)
}

// startRun executes the child command with stdio passed through and, when it
// succeeds, records the run. Failures of any kind land on the returned channel.
func startRun(recorder *runjot.Recorder, name string, params map[string]interface{}, args []string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		var stdoutBytes, stderrBytes int64
		child := exec.Command(args[0], args[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = io.MultiWriter(os.Stdout, countWriter{&stdoutBytes})
		child.Stderr = io.MultiWriter(os.Stderr, countWriter{&stderrBytes})

		start := time.Now()
		if err := child.Run(); err != nil {
			// a failed run is never recorded
			errs <- fmt.Errorf("command %q failed: %w", strings.Join(args, " "), err)
			return
		}
		elapsed := time.Since(start)

		log.Debugf("command wrote %s to stdout and %s to stderr",
			humanize.Bytes(uint64(stdoutBytes)), humanize.Bytes(uint64(stderrBytes)))

		metrics := map[string]interface{}{
			"exit_code":    0,
			"stdout_bytes": stdoutBytes,
			"stderr_bytes": stderrBytes,
		}
		if _, err := recorder.Record(name, params, metrics, start, elapsed); err != nil {
			errs <- fmt.Errorf("run completed but was not logged: %w", err)
		}
	}()
	return errs
}

// exitCode propagates the child's exit code when it had one
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

type countWriter struct {
	n *int64
}

func (w countWriter) Write(p []byte) (int, error) {
	*w.n += int64(len(p))
	return len(p), nil
}
