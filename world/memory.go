package world

import (
	"errors"
	"sort"
	"sync"

	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
)

var errWorldClosed = errors.New("世界已关闭")

// MemoryWorld 纯内存的世界实现，用于试运行、测试与导出前的暂存。
// 只记录写入过的位置，未写入的位置读取时一律视为空气
type MemoryWorld struct {
	mu     sync.Mutex
	blocks map[define.BlockPos]*command.BlockSpec
	closed bool
}

// NewMemoryWorld ...
func NewMemoryWorld() *MemoryWorld {
	return &MemoryWorld{
		blocks: make(map[define.BlockPos]*command.BlockSpec),
	}
}

// ReadBlock 读取指定位置的方块，未写入过的位置返回空气
func (m *MemoryWorld) ReadBlock(pos define.BlockPos) (*command.BlockSpec, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, &AccessError{Op: "读取方块", Err: errWorldClosed}
	}
	spec, ok := m.blocks[pos]
	if !ok {
		return command.Air(), nil
	}
	return spec.Clone(), nil
}

// WriteBlock 将方块写入指定位置，block 为 nil 时写入空气。
// 这里不查注册表，方块名校验发生在写入存档或导出时
func (m *MemoryWorld) WriteBlock(pos define.BlockPos, block *command.BlockSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return &AccessError{Op: "写入方块", Err: errWorldClosed}
	}
	if block == nil {
		block = command.Air()
	}
	m.blocks[pos] = block
	return nil
}

// Close ...
func (m *MemoryWorld) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Len 记录过的位置总数，含写入空气的位置
func (m *MemoryWorld) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blocks)
}

// BlockCount 非空气方块数量
func (m *MemoryWorld) BlockCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, spec := range m.blocks {
		if !spec.IsAir() {
			count++
		}
	}
	return count
}

// Bounds 全部非空气方块的最小包围盒。
// 没有非空气方块时 ok 为 false
func (m *MemoryWorld) Bounds() (minPos, maxPos define.BlockPos, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for pos, spec := range m.blocks {
		if spec.IsAir() {
			continue
		}
		if !ok {
			minPos, maxPos = pos, pos
			ok = true
			continue
		}
		for axis := 0; axis < 3; axis++ {
			minPos[axis] = min(minPos[axis], pos[axis])
			maxPos[axis] = max(maxPos[axis], pos[axis])
		}
	}
	return minPos, maxPos, ok
}

// Scan 按 y、z、x 的顺序遍历全部记录过的位置。
// 回调返回 false 时停止遍历，回调期间允许回读世界
func (m *MemoryWorld) Scan(f func(pos define.BlockPos, block *command.BlockSpec) bool) {
	type entry struct {
		pos   define.BlockPos
		block *command.BlockSpec
	}
	m.mu.Lock()
	entries := make([]entry, 0, len(m.blocks))
	for pos, spec := range m.blocks {
		entries = append(entries, entry{pos: pos, block: spec})
	}
	m.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].pos, entries[j].pos
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		if a[2] != b[2] {
			return a[2] < b[2]
		}
		return a[0] < b[0]
	})

	for _, e := range entries {
		if !f(e.pos, e.block) {
			return
		}
	}
}
