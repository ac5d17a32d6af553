package log

import (
	"strconv"
	"strings"
)

// Level represents the verbosity threshold of a [Logger].
// Lower values are more severe and remain visible at stricter thresholds.
type Level int

const (
	LevelErrors   Level = iota // errors
	LevelWarnings              // warnings
	LevelInfo                  // info
	LevelVerbose               // verbose
)

// DefaultLevel is the threshold of a [Logger] that has not been set up.
const DefaultLevel = LevelWarnings

var levelName = [...]string{
	LevelErrors:   "errors",
	LevelWarnings: "warnings",
	LevelInfo:     "info",
	LevelVerbose:  "verbose",
}

func (l Level) String() string {
	if l < LevelErrors || l > LevelVerbose {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}

	return levelName[l]
}

// Enables reports whether a message of severity s passes threshold l.
func (l Level) Enables(s Level) bool { return s <= l }

// Role identifies which process a [Logger] is running in.
type Role int

const (
	RoleMain           Role = iota // main
	RoleTemplateWorker             // worker
)

func (r Role) String() string {
	switch r {
	case RoleMain:
		return "main"
	case RoleTemplateWorker:
		return "worker"
	default:
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
}

// ParseRole parses a role name. Unrecognized names yield [RoleMain].
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "worker", "template-worker", "templateworker":
		return RoleTemplateWorker
	default:
		return RoleMain
	}
}

// Configuration is supplied once at startup to [Logger.Setup].
type Configuration struct {
	// DryRun buffers emitted messages instead of printing them.
	DryRun bool
	// Quiet suppresses everything except error-level messages.
	Quiet bool
	// Verbose raises the threshold to [LevelVerbose] when not quiet.
	Verbose bool
	// LogBenchmark enables benchmark messages independently of Verbose.
	LogBenchmark bool
	// LogAST enables the AST warning and error channel.
	LogAST bool
	// Role selects the process role. Template workers also surface errors
	// on the error output.
	Role Role
}

// level returns the threshold derived from c.
func (c Configuration) level() Level {
	switch {
	case c.Quiet:
		return LevelErrors
	case c.Verbose:
		return LevelVerbose
	default:
		return LevelInfo
	}
}
