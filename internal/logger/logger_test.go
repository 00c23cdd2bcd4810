package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Domenick1991/vehiclerental/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(config.LogConfig{Level: "debug", Format: "json"}, &buf)

	l.WithField("reference", "abc").Debug("submitted")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "submitted", entry["msg"])
	assert.Equal(t, "abc", entry["reference"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(config.LogConfig{Level: "loud"}, &buf)

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	l.Debug("hidden")
	assert.Empty(t, buf.String())
	l.Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
