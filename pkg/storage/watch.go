package storage

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/kheobs/labsite/pkg/logging"
)

// DefaultDebounce 文件变更后等待的时间，合并编辑器产生的连续事件
const DefaultDebounce = 300 * time.Millisecond

// Watch 监听内容目录，变更后重新加载，阻塞直到 ctx 结束
func (s *Store) Watch(ctx context.Context, debounce time.Duration) error {
	if s.baseDir == "" {
		return errors.New("store has no content directory to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	err = filepath.WalkDir(s.baseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "watch %s", s.baseDir)
	}

	logger := logging.GetSystemLogger()
	logger.Infof("watching content directory %s", s.baseDir)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("content watcher error: %s", err)
		case <-timer.C:
			if err := s.Reload(); err != nil {
				logger.Errorf("failed to reload content, keep previous snapshot: %s", err)
				continue
			}
			logger.Infof("content reloaded at %s", s.Snapshot().LoadedAt.Format(time.DateTime))
		}
	}
}
