package world

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bwo_world "github.com/TriM-Organization/bedrock-world-operator/world"
	"github.com/mholt/archiver/v3"
)

// Open 打开一个基岩版世界。
// path 为世界目录时直接打开；为 .mcworld 压缩包时先展开到临时目录，
// 关闭时把修改重新打包回原文件
func Open(path string) (*MCWorld, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &AccessError{Op: "打开世界", Err: err}
	}

	if info.IsDir() {
		bw, err := bwo_world.Open(path, nil)
		if err != nil {
			return nil, &AccessError{Op: "打开世界", Err: err}
		}
		return newMCWorld(bw), nil
	}

	if !strings.HasSuffix(path, ".mcworld") {
		return nil, &AccessError{Op: "打开世界", Err: fmt.Errorf("%s 不是世界目录或 .mcworld 文件", path)}
	}

	tempDir, err := os.MkdirTemp("", "mcworld_*")
	if err != nil {
		return nil, &AccessError{Op: "创建临时目录", Err: err}
	}

	z := archiver.Zip{}
	if err := z.Unarchive(path, tempDir); err != nil {
		os.RemoveAll(tempDir)
		return nil, &AccessError{Op: "解压 .mcworld", Err: err}
	}

	bw, err := bwo_world.Open(tempDir, nil)
	if err != nil {
		os.RemoveAll(tempDir)
		return nil, &AccessError{Op: "打开世界", Err: err}
	}

	m := newMCWorld(bw)
	m.sourcePath = path
	m.tempDir = tempDir
	return m, nil
}

// Create 在 path 处新建一个空世界目录并命名
func Create(path, name string) (*MCWorld, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, &AccessError{Op: "创建世界目录", Err: err}
	}
	bw, err := bwo_world.Open(path, nil)
	if err != nil {
		return nil, &AccessError{Op: "创建世界", Err: err}
	}
	if name != "" {
		bw.LevelDat().LevelName = name
	}
	return newMCWorld(bw), nil
}

// repack 把临时目录中的世界内容打包回 .mcworld 文件
func (m *MCWorld) repack() error {
	entries, err := os.ReadDir(m.tempDir)
	if err != nil {
		return &AccessError{Op: "读取临时目录", Err: err}
	}
	sources := make([]string, 0, len(entries))
	for _, entry := range entries {
		sources = append(sources, filepath.Join(m.tempDir, entry.Name()))
	}

	// archiver 按 .zip 扩展名识别格式且要求目标不存在，
	// 先写到同目录的临时 zip 再替换
	target := m.sourcePath + ".zip"
	os.Remove(target)
	z := archiver.Zip{}
	if err := z.Archive(sources, target); err != nil {
		return &AccessError{Op: "打包 .mcworld", Err: err}
	}
	if err := os.Rename(target, m.sourcePath); err != nil {
		return &AccessError{Op: "替换 .mcworld", Err: err}
	}
	return nil
}

func (m *MCWorld) cleanTempDir() {
	if m.tempDir != "" {
		os.RemoveAll(m.tempDir)
		m.tempDir = ""
	}
}
