package script

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
	"github.com/suibian-sun/SunScript/region"
	"github.com/suibian-sun/SunScript/world"
)

// Runner 把命令依次应用到一个世界上。
// 命令严格按顺序执行，前一条命令的写入全部完成后才开始下一条，
// keep 与带过滤的 replace 读到的是此前全部写入之后的状态
type Runner struct {
	World  world.World
	Origin define.BlockPos
	// Options 解析命令文本时的默认值
	Options command.Options
	// Validate 执行前先用方块注册表校验目标方块与过滤方块
	Validate bool
	// ContinueOnError 批量执行时单行失败不中断，记录后继续下一行
	ContinueOnError bool
	// ShowProgress 批量执行时显示进度条
	ShowProgress bool
}

// NewRunner ...
func NewRunner(w world.World, origin define.BlockPos) *Runner {
	return &Runner{
		World:           w,
		Origin:          origin,
		Options:         command.DefaultOptions(),
		ContinueOnError: true,
	}
}

// Execute 解析并执行一行命令文本，返回修改的方块数
func (r *Runner) Execute(line string) (int, error) {
	cmd, err := command.ParseWithOptions(line, r.Options)
	if err != nil {
		return 0, err
	}
	return r.ExecuteCommand(cmd)
}

// ExecuteCommand 以 Runner 的原点解析坐标并执行一条命令。
// setblock 成功写入记 1，keep 模式因位置非空而跳过记 0；
// fill 只统计写入目标方块的格子，hollow 内部强制清空的格子不计入
func (r *Runner) ExecuteCommand(cmd command.Command) (int, error) {
	if r.Validate {
		if err := r.validate(cmd); err != nil {
			return 0, err
		}
	}

	switch resolved := command.Resolve(cmd, r.Origin).(type) {
	case *command.ResolvedSetblock:
		return r.executeSetblock(resolved)
	case *command.ResolvedFill:
		return r.executeFill(resolved)
	default:
		return 0, fmt.Errorf("无法执行的命令类型: %T", resolved)
	}
}

func (r *Runner) executeSetblock(c *command.ResolvedSetblock) (int, error) {
	if c.Mode == command.ModeKeep {
		existing, err := r.World.ReadBlock(c.Pos)
		if err != nil {
			return 0, err
		}
		if !existing.IsAir() {
			return 0, nil
		}
	}
	if err := r.World.WriteBlock(c.Pos, c.Block); err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *Runner) executeFill(c *command.ResolvedFill) (int, error) {
	plan, err := region.NewPlan(c, r.World.ReadBlock)
	if err != nil {
		return 0, err
	}
	count := 0
	err = plan.Scan(func(pos define.BlockPos, block *command.BlockSpec) error {
		if err := r.World.WriteBlock(pos, block); err != nil {
			return err
		}
		if block != nil {
			count++
		}
		return nil
	})
	// 中止前已写入的格子保持原样，count 为实际完成的写入数
	return count, err
}

// validate 查注册表确认目标方块与过滤方块都是已知方块
func (r *Runner) validate(cmd command.Command) error {
	var specs []*command.BlockSpec
	switch c := cmd.(type) {
	case *command.Setblock:
		specs = append(specs, c.Block)
	case *command.Fill:
		specs = append(specs, c.Block)
		if c.Filter != nil {
			specs = append(specs, c.Filter)
		}
	}
	for _, spec := range specs {
		if _, err := world.RuntimeID(spec); err != nil {
			return err
		}
	}
	return nil
}

// LineResult 批量执行中一行的结果
type LineResult struct {
	Line     int
	Text     string
	Modified int
	Err      error
}

// ScriptResult 批量执行的汇总
type ScriptResult struct {
	Results []LineResult
	// Total 全部成功行修改的方块总数
	Total int
	// ErrorCount 失败的行数
	ErrorCount int
}

// RunScript 逐行执行脚本中的全部命令。
// 单行失败时记录错误，ContinueOnError 为真则继续后续行，
// 否则立即返回该行错误(已执行行的结果保留在返回值中)
func (r *Runner) RunScript(s *Script) (*ScriptResult, error) {
	result := &ScriptResult{}

	var bar *progressbar.ProgressBar
	if r.ShowProgress {
		bar = progressbar.Default(int64(s.CommandCount()), "📊 执行命令")
	}

	for _, line := range s.Lines {
		if line.IsComment() {
			continue
		}

		lr := LineResult{Line: line.Number, Text: line.Text}
		if line.Err != nil {
			lr.Err = fmt.Errorf("第 %d 行: %w", line.Number, line.Err)
		} else {
			count, err := r.ExecuteCommand(line.Cmd)
			lr.Modified = count
			if err != nil {
				lr.Err = fmt.Errorf("第 %d 行: %w", line.Number, err)
			}
			if bar != nil {
				bar.Add(1)
			}
		}

		result.Results = append(result.Results, lr)
		if lr.Err != nil {
			result.ErrorCount++
			if !r.ContinueOnError {
				return result, lr.Err
			}
			continue
		}
		result.Total += lr.Modified
	}
	return result, nil
}
