// Package world 提供方块世界的读写抽象。
// MCWorld 直接操作基岩版存档，MemoryWorld 在内存中模拟同一套接口
package world

import (
	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
)

// World 可读写方块的世界。
// 实现必须保证同一位置写入后立刻读取能得到等价的方块
type World interface {
	// ReadBlock 读取指定位置的方块。
	// 位置从未写入过时返回空气而非错误
	ReadBlock(pos define.BlockPos) (*command.BlockSpec, error)
	// WriteBlock 将方块写入指定位置，block 为 nil 时写入空气
	WriteBlock(pos define.BlockPos, block *command.BlockSpec) error
	// Close 释放底层资源，之后不得再读写
	Close() error
}
