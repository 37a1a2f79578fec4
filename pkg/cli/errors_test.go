package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("watch.schedule", "invalid cron expression")

	if !strings.Contains(err.Error(), "watch.schedule") {
		t.Errorf("Error() = %q, want field name included", err.Error())
	}
	if !strings.Contains(err.Error(), "invalid cron expression") {
		t.Errorf("Error() = %q, want message included", err.Error())
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("2 of 3 template(s) failed validation")
	err := NewCommandError("lint", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() does not reach the wrapped cause")
	}
	if !strings.Contains(err.Error(), "lint") {
		t.Errorf("Error() = %q, want command name included", err.Error())
	}
}
