// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 只有 data/ 下的配置文件会被嵌入；其他路径（以及未初始化时的
// 全部路径）回退到磁盘读取，测试可以直接加载临时文件。
package embedded

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化 embed.FS 变量
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径分隔符并去掉 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// embeddedPath 判断路径是否应从嵌入文件系统读取
func embeddedPath(path string) bool {
	return initialized && strings.HasPrefix(path, "data/")
}

// Open 打开文件，data/ 前缀的路径优先走嵌入文件系统
func Open(path string) (fs.File, error) {
	path = normalize(path)
	if embeddedPath(path) {
		if f, err := dataFS.Open(path); err == nil {
			return f, nil
		}
	}
	return os.Open(path)
}

// ReadFile 读取文件内容，data/ 前缀的路径优先走嵌入文件系统
// 嵌入文件系统中不存在时回退到磁盘，便于本地覆盖配置
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)
	if embeddedPath(path) {
		if data, err := fs.ReadFile(dataFS, path); err == nil {
			return data, nil
		}
	}
	return os.ReadFile(path)
}

// Exists 检查文件是否存在（嵌入文件系统或磁盘）
func Exists(path string) bool {
	path = normalize(path)
	if embeddedPath(path) {
		if f, err := dataFS.Open(path); err == nil {
			f.Close()
			return true
		}
	}
	_, err := os.Stat(path)
	return err == nil
}
