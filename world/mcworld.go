package world

import (
	"fmt"
	"sync"
	"time"

	"github.com/TriM-Organization/bedrock-world-operator/block"
	"github.com/TriM-Organization/bedrock-world-operator/chunk"
	bwo_define "github.com/TriM-Organization/bedrock-world-operator/define"
	bwo_world "github.com/TriM-Organization/bedrock-world-operator/world"

	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
)

// overworldRange 主世界的可建造高度范围
var overworldRange = bwo_define.Dimension(bwo_define.DimensionIDOverworld).Range()

// MCWorld 基岩版存档的读写适配。
// 区块按需加载并缓存在内存中，写入先落在缓存里，
// Flush 时按子区块保存到存档
type MCWorld struct {
	mu sync.Mutex
	bw *bwo_world.BedrockWorld

	chunkCache   map[bwo_define.ChunkPos]*chunk.Chunk
	missingChunk map[bwo_define.ChunkPos]struct{}
	dirtyChunk   map[bwo_define.ChunkPos]struct{}

	// blockNBT 待保存的方块 NBT，按区块聚合，键为方块绝对坐标
	blockNBT map[bwo_define.ChunkPos]map[define.BlockPos]map[string]any

	// sourcePath 非空时表示从 .mcworld 压缩包展开，关闭时需要回写
	sourcePath string
	tempDir    string

	stopFlush chan struct{}
	closed    bool
}

func newMCWorld(bw *bwo_world.BedrockWorld) *MCWorld {
	return &MCWorld{
		bw:           bw,
		chunkCache:   make(map[bwo_define.ChunkPos]*chunk.Chunk),
		missingChunk: make(map[bwo_define.ChunkPos]struct{}),
		dirtyChunk:   make(map[bwo_define.ChunkPos]struct{}),
		blockNBT:     make(map[bwo_define.ChunkPos]map[define.BlockPos]map[string]any),
	}
}

// chunkPosOf 方块坐标所在的区块
func chunkPosOf(pos define.BlockPos) bwo_define.ChunkPos {
	return bwo_define.ChunkPos{
		int32(define.FloorDiv(pos.X(), 16)),
		int32(define.FloorDiv(pos.Z(), 16)),
	}
}

// checkRange 判断 y 是否落在主世界高度范围内
func checkRange(pos define.BlockPos) error {
	if pos.Y() < overworldRange.Min() || pos.Y() > overworldRange.Max() {
		return &AccessError{
			Op:  "访问方块",
			Err: fmt.Errorf("坐标 %v 超出世界高度范围 [%d, %d]", pos, overworldRange.Min(), overworldRange.Max()),
		}
	}
	return nil
}

// loadChunk 取出区块，缓存未命中时从存档加载。
// 存档中不存在的区块记入缺失表，避免重复查询
func (m *MCWorld) loadChunk(pos bwo_define.ChunkPos) (*chunk.Chunk, error) {
	if c, ok := m.chunkCache[pos]; ok {
		return c, nil
	}
	if _, ok := m.missingChunk[pos]; ok {
		return nil, nil
	}

	chunkData, exists, err := m.bw.LoadChunk(bwo_define.DimensionIDOverworld, pos)
	if err != nil {
		return nil, &AccessError{Op: "加载区块", Err: err}
	}
	if !exists {
		m.missingChunk[pos] = struct{}{}
		return nil, nil
	}

	m.chunkCache[pos] = chunkData
	return chunkData, nil
}

// ensureChunk 取出区块，不存在时新建全空气区块
func (m *MCWorld) ensureChunk(pos bwo_define.ChunkPos) (*chunk.Chunk, error) {
	c, err := m.loadChunk(pos)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = chunk.NewChunk(block.AirRuntimeID, overworldRange)
		m.chunkCache[pos] = c
		delete(m.missingChunk, pos)
	}
	return c, nil
}

// ReadBlock 读取指定位置的方块，未生成的区块一律视为空气
func (m *MCWorld) ReadBlock(pos define.BlockPos) (*command.BlockSpec, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, &AccessError{Op: "读取方块", Err: errWorldClosed}
	}
	if err := checkRange(pos); err != nil {
		return nil, err
	}

	c, err := m.loadChunk(chunkPosOf(pos))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return command.Air(), nil
	}

	localX := uint8(define.FloorMod(pos.X(), 16))
	localZ := uint8(define.FloorMod(pos.Z(), 16))
	runtimeID := c.Block(localX, int16(pos.Y()), localZ, 0)
	if runtimeID == block.AirRuntimeID {
		return command.Air(), nil
	}
	return FromRuntimeID(runtimeID)
}

// WriteBlock 写入方块，block 为 nil 时写入空气。
// 方块名与状态在这里经注册表换算为运行时 ID，失败返回 ValidationError
func (m *MCWorld) WriteBlock(pos define.BlockPos, spec *command.BlockSpec) error {
	runtimeID := block.AirRuntimeID
	if spec != nil {
		var err error
		runtimeID, err = RuntimeID(spec)
		if err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return &AccessError{Op: "写入方块", Err: errWorldClosed}
	}
	if err := checkRange(pos); err != nil {
		return err
	}

	chunkPos := chunkPosOf(pos)
	c, err := m.ensureChunk(chunkPos)
	if err != nil {
		return err
	}

	localX := uint8(define.FloorMod(pos.X(), 16))
	localZ := uint8(define.FloorMod(pos.Z(), 16))
	c.SetBlock(localX, int16(pos.Y()), localZ, 0, runtimeID)
	m.dirtyChunk[chunkPos] = struct{}{}

	if spec != nil && spec.NBT != "" {
		if err := m.stageBlockNBT(chunkPos, pos, spec.NBT); err != nil {
			return err
		}
	} else {
		// 覆盖写入会解除原有的方块 NBT 关联
		if nbts, ok := m.blockNBT[chunkPos]; ok {
			delete(nbts, pos)
		}
	}
	return nil
}

// stageBlockNBT 解码 SNBT 文本并记入待保存队列，坐标注入 x/y/z 字段
func (m *MCWorld) stageBlockNBT(chunkPos bwo_define.ChunkPos, pos define.BlockPos, snbt string) error {
	data, err := command.DecodeSNBT(snbt)
	if err != nil {
		return &ValidationError{Field: "方块 NBT", Value: snbt}
	}
	data["x"] = int32(pos.X())
	data["y"] = int32(pos.Y())
	data["z"] = int32(pos.Z())

	nbts, ok := m.blockNBT[chunkPos]
	if !ok {
		nbts = make(map[define.BlockPos]map[string]any)
		m.blockNBT[chunkPos] = nbts
	}
	nbts[pos] = data
	return nil
}

// Flush 把全部缓存中的修改落盘。
// 每个脏区块按子区块保存，跳过空的子区块以减少无效 IO
func (m *MCWorld) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushLocked()
}

func (m *MCWorld) flushLocked() error {
	for chunkPos := range m.dirtyChunk {
		c, ok := m.chunkCache[chunkPos]
		if !ok {
			continue
		}
		for subIndex, sub := range c.Sub() {
			if sub == nil || sub.Empty() {
				continue
			}
			subChunkPos := bwo_define.SubChunkPos{
				chunkPos.X(),
				int32(c.SubY(int16(subIndex))) >> 4,
				chunkPos.Z(),
			}
			if err := m.bw.SaveSubChunk(bwo_define.DimensionIDOverworld, subChunkPos, sub); err != nil {
				return &AccessError{Op: fmt.Sprintf("保存子区块 %v", subChunkPos), Err: err}
			}
		}
		delete(m.dirtyChunk, chunkPos)
	}

	for chunkPos, staged := range m.blockNBT {
		if len(staged) == 0 {
			delete(m.blockNBT, chunkPos)
			continue
		}
		merged, err := m.mergeChunkNBT(chunkPos, staged)
		if err != nil {
			return err
		}
		if err := m.bw.SaveNBT(bwo_define.Dimension(bwo_define.DimensionIDOverworld), chunkPos, merged); err != nil {
			return &AccessError{Op: fmt.Sprintf("保存区块 %v 的方块 NBT", chunkPos), Err: err}
		}
		delete(m.blockNBT, chunkPos)
	}
	return nil
}

// mergeChunkNBT 把待保存的方块 NBT 与存档中已有的合并，同一坐标以新数据为准
func (m *MCWorld) mergeChunkNBT(chunkPos bwo_define.ChunkPos, staged map[define.BlockPos]map[string]any) ([]map[string]any, error) {
	existing, err := m.bw.LoadNBT(bwo_define.DimensionIDOverworld, chunkPos)
	if err != nil {
		return nil, &AccessError{Op: fmt.Sprintf("加载区块 %v 的方块 NBT", chunkPos), Err: err}
	}

	merged := make([]map[string]any, 0, len(existing)+len(staged))
	for _, data := range existing {
		x, xok := toInt(data["x"])
		y, yok := toInt(data["y"])
		z, zok := toInt(data["z"])
		if xok && yok && zok {
			if _, replaced := staged[define.BlockPos{x, y, z}]; replaced {
				continue
			}
		}
		merged = append(merged, data)
	}
	for _, data := range staged {
		merged = append(merged, data)
	}
	return merged, nil
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// AutoFlush 启动定时落盘，直到世界关闭
func (m *MCWorld) AutoFlush(interval time.Duration) {
	m.mu.Lock()
	if m.closed || m.stopFlush != nil {
		m.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	m.stopFlush = stop
	m.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Flush()
			case <-stop:
				return
			}
		}
	}()
}

// Close 落盘全部修改并关闭存档。
// 从 .mcworld 打开的世界在这里重新打包回原文件
func (m *MCWorld) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	flushErr := m.flushLocked()
	m.closed = true
	if m.stopFlush != nil {
		close(m.stopFlush)
		m.stopFlush = nil
	}
	m.mu.Unlock()

	m.bw.CloseWorld()
	m.bw.Close()

	if flushErr != nil {
		m.cleanTempDir()
		return flushErr
	}
	if m.sourcePath != "" {
		if err := m.repack(); err != nil {
			return err
		}
	}
	m.cleanTempDir()
	return nil
}
