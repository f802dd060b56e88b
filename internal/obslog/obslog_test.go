package obslog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "chess.log")
	cfg := config.LogConfig{Level: "info", Format: config.LogFormatJSON, File: path}

	logger, err := New(cfg)
	testutil.AssertNoError(t, err)
	logger.Debug("hidden")
	logger.Info("move played", zap.String("move", "e2e4"), zap.Int("ply", 1))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	testutil.AssertEqual(t, len(lines), 1)

	var entry map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	testutil.AssertEqual(t, entry["msg"], "move played")
	testutil.AssertEqual(t, entry["move"], "e2e4")
	testutil.AssertEqual(t, entry["level"], "info")
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty", Format: config.LogFormatJSON})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestNew_NoOutputsFallsBackToConsole(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "warn", Format: config.LogFormatConsole})
	testutil.AssertNoError(t, err)
	testutil.AssertNotNil(t, logger)
	testutil.AssertFalse(t, logger.Core().Enabled(zapcore.InfoLevel))
	testutil.AssertTrue(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" INFO ", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"other", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, parseLevel(tt.in), tt.want, "level %q", tt.in)
	}
}
