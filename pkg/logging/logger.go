package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kheobs/labsite/pkg/envs"
)

// 获取日志 Writer：始终输出到 stdout，开启文件日志时同时写入按类型分目录的切割文件
func getWriter(logType string) (io.Writer, error) {
	if !envs.LogToFile {
		return os.Stdout, nil
	}
	fileWriter, err := getFileWriter(logType)
	if err != nil {
		return nil, err
	}
	return io.MultiWriter(os.Stdout, fileWriter), nil
}

func getFileWriter(logType string) (io.Writer, error) {
	dir := filepath.Join(envs.LogFileBaseDir, logType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// lumberjack 负责切割归档
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, logType+".log"),
		MaxSize:    envs.LogMaxSizeMB,
		MaxBackups: envs.LogMaxBackups,
		MaxAge:     envs.LogMaxAgeDays,
		LocalTime:  true,
	}, nil
}
