package utils_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danuarts/staffdesk/internal/constants"
	"github.com/danuarts/staffdesk/internal/utils"
)

// captureOutput captures log output for testing
func captureOutput(fn func()) string {
	original := log.Logger

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).With().Timestamp().Logger()

	fn()

	log.Logger = original
	return buf.String()
}

func TestLogAuth(t *testing.T) {
	t.Run("Successful event", func(t *testing.T) {
		output := captureOutput(func() {
			utils.LogAuth(constants.LogEventLogin, "42", "testuser", true, "")
		})

		if !strings.Contains(output, constants.LogEventLogin) {
			t.Errorf("LogAuth output missing event name: %s", output)
		}
		if !strings.Contains(output, "testuser") {
			t.Errorf("LogAuth output missing username: %s", output)
		}
		if !strings.Contains(output, `"success":true`) {
			t.Errorf("LogAuth output missing success flag: %s", output)
		}
	})

	t.Run("Failed event logs at warn with reason", func(t *testing.T) {
		output := captureOutput(func() {
			utils.LogAuth(constants.LogEventLogin, "", "", false, "invalid credentials")
		})

		if !strings.Contains(output, `"level":"warn"`) {
			t.Errorf("Failed auth event should log at warn level: %s", output)
		}
		if !strings.Contains(output, "invalid credentials") {
			t.Errorf("LogAuth output missing reason: %s", output)
		}
	})
}

func TestLogError(t *testing.T) {
	output := captureOutput(func() {
		utils.LogError(errors.New("something broke"), map[string]interface{}{
			"user_id": int64(42),
			"path":    "/api/employees",
		})
	})

	if !strings.Contains(output, "something broke") {
		t.Errorf("LogError output missing error message: %s", output)
	}
	if !strings.Contains(output, "/api/employees") {
		t.Errorf("LogError output missing context value: %s", output)
	}
}

func TestLogDBQuery_RedactsSensitiveArgs(t *testing.T) {
	output := captureOutput(func() {
		// Queries touching password columns must never log argument values
		utils.LogDBQuery(
			"UPDATE users SET password_hash = $1 WHERE user_id = $2",
			[]interface{}{"plaintext-would-be-here", int64(42)},
			time.Millisecond,
			errors.New("forced error to log at error level"),
		)
	})

	if strings.Contains(output, "plaintext-would-be-here") {
		t.Errorf("LogDBQuery leaked a sensitive argument: %s", output)
	}
	if !strings.Contains(output, constants.LogRedactedValue) {
		t.Errorf("LogDBQuery output missing redaction marker: %s", output)
	}
}

func TestSetLogLevel(t *testing.T) {
	original := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(original)

	if err := utils.SetLogLevel("warn"); err != nil {
		t.Fatalf("SetLogLevel(warn) error = %v", err)
	}

	if got := utils.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %v, want warn", got)
	}

	if err := utils.SetLogLevel("verbose"); err == nil {
		t.Error("SetLogLevel(verbose) should return an error")
	}
}
