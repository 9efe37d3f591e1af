package script

import (
	"strings"
	"testing"

	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
	"github.com/suibian-sun/SunScript/world"
)

func TestExecuteSetblockCounts(t *testing.T) {
	w := world.NewMemoryWorld()
	r := NewRunner(w, define.BlockPos{100, 64, 200})

	count, err := r.Execute("setblock ~5 ~-1 ~10 stone")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("setblock count = %d, want 1", count)
	}

	got, err := w.ReadBlock(define.BlockPos{105, 63, 210})
	if err != nil {
		t.Fatalf("ReadBlock failed: %v", err)
	}
	if got.FullID() != "minecraft:stone" {
		t.Fatalf("read back %s, want minecraft:stone", got.FullID())
	}
}

func TestExecuteSetblockKeepSkipsOccupied(t *testing.T) {
	w := world.NewMemoryWorld()
	pos := define.BlockPos{1, 2, 3}
	if err := w.WriteBlock(pos, command.NewBlockSpec("dirt")); err != nil {
		t.Fatalf("WriteBlock failed: %v", err)
	}

	r := NewRunner(w, define.BlockPos{})
	count, err := r.Execute("setblock 1 2 3 stone keep")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("keep on occupied cell counted %d, want 0", count)
	}
	got, _ := w.ReadBlock(pos)
	if got.ID != "dirt" {
		t.Fatalf("occupied cell overwritten to %s", got.ID)
	}
}

func TestExecuteFillHollowCount(t *testing.T) {
	w := world.NewMemoryWorld()
	r := NewRunner(w, define.BlockPos{})

	// 3×3×3 hollow: 26 个边界格子写方块，内部 1 格强制清空但不计数
	count, err := r.Execute("fill 0 0 0 2 2 2 stone hollow")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if count != 26 {
		t.Fatalf("hollow count = %d, want 26", count)
	}
	center, _ := w.ReadBlock(define.BlockPos{1, 1, 1})
	if !center.IsAir() {
		t.Fatalf("hollow interior should be air, got %s", center.FullID())
	}
}

func TestExecuteFillReplaceFilter(t *testing.T) {
	w := world.NewMemoryWorld()
	w.WriteBlock(define.BlockPos{0, 0, 0}, command.NewBlockSpec("dirt"))
	w.WriteBlock(define.BlockPos{1, 0, 0}, command.NewBlockSpec("stone"))

	r := NewRunner(w, define.BlockPos{})
	count, err := r.Execute("fill 0 0 0 1 0 0 glass replace dirt")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("filtered replace count = %d, want 1", count)
	}
	kept, _ := w.ReadBlock(define.BlockPos{1, 0, 0})
	if kept.ID != "stone" {
		t.Fatalf("non-matching cell overwritten to %s", kept.ID)
	}
}

func TestRunScriptContinueOnError(t *testing.T) {
	text := strings.Join([]string{
		"setblock 0 0 0 stone",
		"setblock 0 64 oops",
		"setblock 1 0 0 dirt",
	}, "\n")
	s, _ := ParseString(text)

	w := world.NewMemoryWorld()
	r := NewRunner(w, define.BlockPos{})
	result, err := r.RunScript(s)
	if err != nil {
		t.Fatalf("RunScript failed: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("total = %d, want 2", result.Total)
	}
	if result.ErrorCount != 1 {
		t.Fatalf("error count = %d, want 1", result.ErrorCount)
	}
	if result.Results[1].Err == nil || !strings.Contains(result.Results[1].Err.Error(), "第 2 行") {
		t.Fatalf("line error should name line 2, got %v", result.Results[1].Err)
	}
}

func TestRunScriptAbortOnError(t *testing.T) {
	s, _ := ParseString("setblock 0 64 oops\nsetblock 1 0 0 dirt\n")
	w := world.NewMemoryWorld()
	r := NewRunner(w, define.BlockPos{})
	r.ContinueOnError = false

	result, err := r.RunScript(s)
	if err == nil {
		t.Fatal("RunScript should fail on first error")
	}
	if len(result.Results) != 1 {
		t.Fatalf("executed %d lines, want 1", len(result.Results))
	}
	if w.Len() != 0 {
		t.Fatal("no block should have been written")
	}
}

// 同一批次内后执行的 keep 必须观察到先前命令的写入
func TestRunScriptSequentialReads(t *testing.T) {
	s, _ := ParseString("setblock 0 0 0 stone\nfill 0 0 0 1 0 0 dirt keep\n")
	w := world.NewMemoryWorld()
	r := NewRunner(w, define.BlockPos{})

	result, err := r.RunScript(s)
	if err != nil {
		t.Fatalf("RunScript failed: %v", err)
	}
	// keep 只写入 (1,0,0)，(0,0,0) 已被第一条命令占据
	if result.Total != 2 {
		t.Fatalf("total = %d, want 2", result.Total)
	}
	got, _ := w.ReadBlock(define.BlockPos{0, 0, 0})
	if got.ID != "stone" {
		t.Fatalf("(0,0,0) = %s, want stone", got.ID)
	}
}
