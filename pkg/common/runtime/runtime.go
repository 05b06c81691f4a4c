package runtime

import (
	"github.com/kheobs/labsite/pkg/common/runmode"
)

// 以下变量值可通过 --ldflags 的方式修改
var (
	// RunMode 运行模式，可选值为 release，test，debug
	RunMode = runmode.Debug
)

// IsDebug 是否为调试模式（调试模式下会监听内容目录变更）
func IsDebug() bool {
	return RunMode == runmode.Debug
}
