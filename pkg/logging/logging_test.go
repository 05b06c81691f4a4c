package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kheobs/labsite/pkg/envs"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, parseLevel("verbose"))
}

func TestGetLoggerFallback(t *testing.T) {
	// 未初始化时均回退到系统日志
	if accessLogger == nil {
		assert.Same(t, GetSystemLogger(), GetAccessLogger())
	}
	if sqlLogger == nil {
		assert.Same(t, GetSystemLogger(), GetSqlLogger())
	}
}

func TestGetFileWriter(t *testing.T) {
	origin := envs.LogFileBaseDir
	envs.LogFileBaseDir = t.TempDir()
	defer func() { envs.LogFileBaseDir = origin }()

	writer, err := getFileWriter(LogTypeWeb)
	require.NoError(t, err)
	require.NotNil(t, writer)

	info, err := os.Stat(filepath.Join(envs.LogFileBaseDir, LogTypeWeb))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetWriterStdoutOnly(t *testing.T) {
	origin, originDir := envs.LogToFile, envs.LogFileBaseDir
	envs.LogToFile, envs.LogFileBaseDir = false, t.TempDir()
	defer func() { envs.LogToFile, envs.LogFileBaseDir = origin, originDir }()

	writer, err := getWriter(LogTypeAccess)
	require.NoError(t, err)
	assert.Same(t, os.Stdout, writer)

	// 不创建日志目录
	_, err = os.Stat(filepath.Join(envs.LogFileBaseDir, LogTypeAccess))
	assert.True(t, os.IsNotExist(err))
}
