package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/stencil/log"
	"github.com/ardnew/stencil/pkg"
)

// Command is the hidden subcommand a worker process runs.
const Command = "exec"

// Job names a template file and the data file it is rendered with.
type Job struct {
	Template string
	Data     string
	// Flags are passed to the worker command before the template.
	Flags []string
}

// Runner spawns worker processes.
type Runner struct {
	logger *log.Logger

	// Executable is the program run for each job.
	Executable string
	// Args precede the worker arguments on the command line.
	Args []string
	// Env is appended to the environment of the current process.
	Env []string
}

// NewRunner returns a Runner that re-executes the current binary with the
// channel flags of logger and relays worker messages to it. A nil logger
// selects [log.Default].
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}

	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	return &Runner{logger: logger, Executable: exe, Args: ChannelFlags(logger)}
}

// Run renders job in a new worker process and returns the content.
//
// The worker buffers its messages and returns them in a [Result], and each
// one is forwarded to the logger of r. A worker that exits unsuccessfully
// yields [pkg.ErrWorker] wrapping the text it wrote to standard error, and
// nothing else is reported. Canceling ctx kills the worker.
func (r *Runner) Run(ctx context.Context, job Job) ([]byte, error) {
	defer r.logger.Measure("worker " + job.Template)()

	cmd := exec.CommandContext(ctx, r.Executable, r.args(job)...)
	cmd.Env = append(os.Environ(), r.Env...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Verbose("spawning worker for " + job.Template)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		text := strings.TrimSpace(stderr.String())
		if text == "" {
			text = err.Error()
		}

		return nil, pkg.ErrWorker.Wrap(pkg.Text(text))
	}

	var res Result
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		return nil, pkg.ErrWorker.Wrap(err)
	}

	for _, msg := range res.Messages {
		r.logger.Forward(msg)
	}

	return []byte(res.Content), nil
}

func (r *Runner) args(job Job) []string {
	args := append([]string{}, r.Args...)
	args = append(args, "--dry-run", "--role="+log.RoleTemplateWorker.String(), Command)

	if job.Data != "" {
		args = append(args, "--data", job.Data)
	}

	args = append(args, job.Flags...)

	return append(args, job.Template)
}
