package log

import (
	"testing"
)

func TestLevel_Ordering(t *testing.T) {
	t.Parallel()

	if !(LevelErrors < LevelWarnings && LevelWarnings < LevelInfo && LevelInfo < LevelVerbose) {
		t.Fatal("expected errors < warnings < info < verbose")
	}

	tests := []struct {
		name      string
		threshold Level
		severity  Level
		want      bool
	}{
		{"errors_at_errors", LevelErrors, LevelErrors, true},
		{"warnings_at_errors", LevelErrors, LevelWarnings, false},
		{"info_at_warnings", LevelWarnings, LevelInfo, false},
		{"warnings_at_info", LevelInfo, LevelWarnings, true},
		{"verbose_at_info", LevelInfo, LevelVerbose, false},
		{"verbose_at_verbose", LevelVerbose, LevelVerbose, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.threshold.Enables(tt.severity); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	for l, want := range map[Level]string{
		LevelErrors:   "errors",
		LevelWarnings: "warnings",
		LevelInfo:     "info",
		LevelVerbose:  "verbose",
		Level(9):      "Level(9)",
	} {
		if got := l.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestRole_StringAndParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Role
	}{
		{"main", RoleMain},
		{"worker", RoleTemplateWorker},
		{" Worker ", RoleTemplateWorker},
		{"template-worker", RoleTemplateWorker},
		{"", RoleMain},
		{"other", RoleMain},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if RoleTemplateWorker.String() != "worker" || RoleMain.String() != "main" {
		t.Error("unexpected role names")
	}
}
