// Package export 把内存世界中的建筑编译为 BDX v3 结构文件，
// 便于与 FastBuilder 系的工具交换建筑
package export

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/TriM-Organization/bedrock-world-operator/block"
	bdump_command "github.com/Yeah114/bdump/command"
	"github.com/andybalholm/brotli"
	"github.com/sandertv/gophertunnel/minecraft/protocol"

	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
	"github.com/suibian-sun/SunScript/utils"
	"github.com/suibian-sun/SunScript/world"
)

// Result 一次导出的汇总
type Result struct {
	// Blocks 写入文件的非空气方块数
	Blocks int
	// Start End 建筑在源世界中的包围盒对角点
	Start protocol.BlockPos
	End   protocol.BlockPos
}

// ExportFile 把内存世界导出为 path 处的 BDX 文件
func ExportFile(path string, mem *world.MemoryWorld) (*Result, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("创建 BDX 文件失败: %w", err)
	}
	defer file.Close()
	return Write(file, mem)
}

// Write 把内存世界中的全部非空气方块写入 BDX 命令流。
// 坐标以建筑最小角为原点，写入顺序与 MemoryWorld.Scan 一致
func Write(target io.Writer, mem *world.MemoryWorld) (*Result, error) {
	minPos, maxPos, ok := mem.Bounds()
	if !ok {
		return nil, fmt.Errorf("没有可导出的方块")
	}

	if _, err := target.Write([]byte("BD@")); err != nil {
		return nil, err
	}
	bw := brotli.NewWriter(target)
	defer bw.Close()
	if _, err := bw.Write([]byte("BDX")); err != nil {
		return nil, err
	}
	if _, err := bw.Write([]byte{0}); err != nil {
		return nil, err
	}
	if _, err := bw.Write([]byte{0}); err != nil {
		return nil, err
	}

	w := &writer{bw: bw, palette: make(map[uint32][2]uint16)}

	var scanErr error
	blocks := 0
	mem.Scan(func(pos define.BlockPos, spec *command.BlockSpec) bool {
		if spec.IsAir() {
			return true
		}
		if err := w.movePos(pos.Sub(minPos)); err != nil {
			scanErr = err
			return false
		}
		if err := w.placeBlock(spec); err != nil {
			scanErr = err
			return false
		}
		blocks++
		return true
	})
	if scanErr != nil {
		return nil, scanErr
	}

	if err := bdump_command.WriteCommand(&bdump_command.Terminate{}, bw); err != nil {
		return nil, err
	}
	return &Result{
		Blocks: blocks,
		Start:  protocol.BlockPos{int32(minPos.X()), int32(minPos.Y()), int32(minPos.Z())},
		End:    protocol.BlockPos{int32(maxPos.X()), int32(maxPos.Y()), int32(maxPos.Z())},
	}, nil
}

// writer BDX 命令流的写入状态:画笔位置与常量字符串调色板
type writer struct {
	bw      *brotli.Writer
	pos     define.BlockPos
	palette map[uint32][2]uint16
}

// movePos 以差分命令把画笔移动到目标位置
func (w *writer) movePos(target define.BlockPos) error {
	if err := w.moveAxis(0, target.X()-w.pos.X()); err != nil {
		return err
	}
	if err := w.moveAxis(1, target.Y()-w.pos.Y()); err != nil {
		return err
	}
	if err := w.moveAxis(2, target.Z()-w.pos.Z()); err != nil {
		return err
	}
	w.pos = target
	return nil
}

// moveAxis 单轴移动，±1 用单字节命令，更大的偏移按幅度选最短的整数命令
func (w *writer) moveAxis(axis, move int) error {
	if move == 0 {
		return nil
	}
	var cmd bdump_command.Command
	switch axis {
	case 0:
		switch {
		case move == 1:
			cmd = &bdump_command.AddXValue{}
		case move == -1:
			cmd = &bdump_command.SubtractXValue{}
		case move >= math.MinInt8 && move <= math.MaxInt8:
			cmd = &bdump_command.AddInt8XValue{Value: int8(move)}
		case move >= math.MinInt16 && move <= math.MaxInt16:
			cmd = &bdump_command.AddInt16XValue{Value: int16(move)}
		default:
			cmd = &bdump_command.AddInt32XValue{Value: int32(move)}
		}
	case 1:
		switch {
		case move == 1:
			cmd = &bdump_command.AddYValue{}
		case move == -1:
			cmd = &bdump_command.SubtractYValue{}
		case move >= math.MinInt8 && move <= math.MaxInt8:
			cmd = &bdump_command.AddInt8YValue{Value: int8(move)}
		case move >= math.MinInt16 && move <= math.MaxInt16:
			cmd = &bdump_command.AddInt16YValue{Value: int16(move)}
		default:
			cmd = &bdump_command.AddInt32YValue{Value: int32(move)}
		}
	default:
		switch {
		case move == 1:
			cmd = &bdump_command.AddZValue{}
		case move == -1:
			cmd = &bdump_command.SubtractZValue{}
		case move >= math.MinInt8 && move <= math.MaxInt8:
			cmd = &bdump_command.AddInt8ZValue{Value: int8(move)}
		case move >= math.MinInt16 && move <= math.MaxInt16:
			cmd = &bdump_command.AddInt16ZValue{Value: int16(move)}
		default:
			cmd = &bdump_command.AddInt32ZValue{Value: int32(move)}
		}
	}
	return bdump_command.WriteCommand(cmd, w.bw)
}

// placeBlock 在当前位置放置方块。
// 方块名与状态字符串首次出现时注册为常量字符串，之后复用其编号
func (w *writer) placeBlock(spec *command.BlockSpec) error {
	runtimeID, err := world.RuntimeID(spec)
	if err != nil {
		return err
	}

	ids, ok := w.palette[runtimeID]
	if !ok {
		blockName, blockStates, found := block.RuntimeIDToState(runtimeID)
		if !found {
			return fmt.Errorf("运行时 ID %d 不在存档注册表中", runtimeID)
		}
		if err := bdump_command.WriteCommand(&bdump_command.CreateConstantString{
			ConstantString: blockName,
		}, w.bw); err != nil {
			return err
		}
		if err := bdump_command.WriteCommand(&bdump_command.CreateConstantString{
			ConstantString: utils.PropertiesToStateStr(blockStates),
		}, w.bw); err != nil {
			return err
		}
		blockID := uint16(len(w.palette)) * 2
		ids = [2]uint16{blockID, blockID + 1}
		w.palette[runtimeID] = ids
	}

	if spec.NBT != "" {
		data, err := command.DecodeSNBT(spec.NBT)
		if err != nil {
			return fmt.Errorf("方块 NBT 无效: %w", err)
		}
		return bdump_command.WriteCommand(&bdump_command.PlaceBlockWithNBTData{
			BlockConstantStringID:       ids[0],
			BlockStatesConstantStringID: ids[1],
			BlockNBT:                    data,
		}, w.bw)
	}
	return bdump_command.WriteCommand(&bdump_command.PlaceBlockWithBlockStates{
		BlockConstantStringID:       ids[0],
		BlockStatesConstantStringID: ids[1],
	}, w.bw)
}
