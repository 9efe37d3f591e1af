package world

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TriM-Organization/bedrock-world-operator/block"
	"github.com/TriM-Organization/bedrock-world-operator/chunk"
	bwo_define "github.com/TriM-Organization/bedrock-world-operator/define"

	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
)

// Layer 超平坦世界的一层，自下而上铺设
type Layer struct {
	Block     *command.BlockSpec
	Thickness int
}

// DefaultFlatLayers 经典超平坦分层:基岩、两层泥土、一层草方块
func DefaultFlatLayers() []Layer {
	return []Layer{
		{Block: command.NewBlockSpec("bedrock"), Thickness: 1},
		{Block: command.NewBlockSpec("dirt"), Thickness: 2},
		{Block: command.NewBlockSpec("grass"), Thickness: 1},
	}
}

// ParseLayers 解析 "方块名:厚度,方块名:厚度,..." 形式的分层描述
func ParseLayers(s string) ([]Layer, error) {
	layers := make([]Layer, 0, 4)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx := strings.LastIndex(part, ":")
		if idx < 0 {
			return nil, fmt.Errorf("分层 %q 缺少厚度，应为 方块名:厚度", part)
		}
		name, thicknessStr := part[:idx], part[idx+1:]
		// 带命名空间的方块名里冒号可能出现两次
		if _, err := strconv.Atoi(thicknessStr); err != nil {
			return nil, fmt.Errorf("分层 %q 的厚度无效: %q", part, thicknessStr)
		}
		thickness, _ := strconv.Atoi(thicknessStr)
		if thickness <= 0 {
			return nil, fmt.Errorf("分层 %q 的厚度必须为正数", part)
		}
		layers = append(layers, Layer{Block: command.NewBlockSpec(name), Thickness: thickness})
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("分层描述为空")
	}
	return layers, nil
}

// CreateFlat 新建超平坦世界，size 为 x、z 方向的区块数，
// 分层从世界底部开始自下而上铺设
func CreateFlat(path, name string, sizeX, sizeZ int, layers []Layer) (*MCWorld, error) {
	if sizeX <= 0 || sizeZ <= 0 {
		return nil, fmt.Errorf("世界尺寸无效: %d×%d 区块", sizeX, sizeZ)
	}
	if len(layers) == 0 {
		layers = DefaultFlatLayers()
	}

	// 先把全部分层换算成运行时 ID，方块名有误时在写入前报错
	runtimeIDs := make([]uint32, len(layers))
	for i, layer := range layers {
		id, err := RuntimeID(layer.Block)
		if err != nil {
			return nil, err
		}
		runtimeIDs[i] = id
	}

	m, err := Create(path, name)
	if err != nil {
		return nil, err
	}

	for chunkX := 0; chunkX < sizeX; chunkX++ {
		for chunkZ := 0; chunkZ < sizeZ; chunkZ++ {
			chunkPos := bwo_define.ChunkPos{int32(chunkX), int32(chunkZ)}
			c := chunk.NewChunk(block.AirRuntimeID, overworldRange)
			y := overworldRange.Min()
			for i, layer := range layers {
				for t := 0; t < layer.Thickness; t++ {
					for x := uint8(0); x < 16; x++ {
						for z := uint8(0); z < 16; z++ {
							c.SetBlock(x, int16(y), z, 0, runtimeIDs[i])
						}
					}
					y++
				}
			}
			m.mu.Lock()
			m.chunkCache[chunkPos] = c
			m.dirtyChunk[chunkPos] = struct{}{}
			m.mu.Unlock()
		}
	}

	if err := m.Flush(); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// CreateVoid 新建虚空世界，可选在 (0,64,0) 附近生成 3×3 的石头出生平台
func CreateVoid(path, name string, spawnPlatform bool) (*MCWorld, error) {
	m, err := Create(path, name)
	if err != nil {
		return nil, err
	}

	if spawnPlatform {
		stone := command.NewBlockSpec("stone")
		for x := -1; x <= 1; x++ {
			for z := -1; z <= 1; z++ {
				if err := m.WriteBlock(define.BlockPos{x, 64, z}, stone); err != nil {
					m.Close()
					return nil, err
				}
			}
		}
		if err := m.Flush(); err != nil {
			m.Close()
			return nil, err
		}
	}
	return m, nil
}
