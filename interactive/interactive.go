// Package interactive 提供交互式控制台:
// 在内存沙盘中试跑命令, 运行脚本到存档, 以及配置管理
package interactive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/suibian-sun/SunScript/config"
	"github.com/suibian-sun/SunScript/define"
	"github.com/suibian-sun/SunScript/export"
	"github.com/suibian-sun/SunScript/script"
	"github.com/suibian-sun/SunScript/utils"
	"github.com/suibian-sun/SunScript/world"
)

// DisplayLogo 显示程序logo
func DisplayLogo(cfg *config.Config) {
	useColor := cfg.UI.ColoredOutput

	logo := []string{
		"╔══════════════════════════════════════════════════╗",
		"║  ███████╗██╗   ██║███╗   ██║                     ║",
		"║  ██╔════╝██║   ██║████╗  ██║                     ║",
		"║  ███████╗██║   ██║██╔██╗ ██║                     ║",
		"║  ╚════██║██║   ██║██║╚██╗██║                     ║",
		"║  ███████║╚██████╔╝██║ ╚████║                     ║",
		"║  ╚══════╝ ╚═════╝ ╚═╝  ╚═══╝                     ║",
		"║        ███████╗ ██████╗██████╗ ██╗██████╗ ████║  ║",
		"║        ██╔════╝██╔════╝██╔══██╗██║██╔══██╗╚██╔╝  ║",
		"║        ███████╗██║     ██████╔╝██║██████╔╝ ██║   ║",
		"║        ╚════██║██║     ██╔══██╗██║██╔═══╝  ██║   ║",
		"║        ███████║╚██████╗██║  ██║██║██║      ██║   ║",
		"║        ╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝╚═╝      ╚═╝   ║",
		"╚══════════════════════════════════════════════════╝",
	}

	if useColor {
		gradient := utils.GetGradientColors256ColorMode(len(logo), useColor)
		for i, line := range logo {
			if i < len(gradient) {
				fmt.Printf("%s%s%s\n", gradient[i], line, utils.Reset)
			} else {
				fmt.Println(line)
			}
		}
	} else {
		for _, line := range logo {
			fmt.Println(line)
		}
	}

	info := []string{
		"┌───────────────────────────────────────────┐",
		"│        Open source - SunScript            │",
		"│ https://github.com/suibian-sun/SunScript  │",
		"└───────────────────────────────────────────┘",
		"Authors: suibian-sun",
	}

	if useColor {
		infoGradient := utils.GetGradientColors256ColorMode(len(info), useColor)
		for i, line := range info {
			if i < len(infoGradient) {
				fmt.Printf("%s%s%s\n", infoGradient[i], line, utils.Reset)
			} else {
				fmt.Println(line)
			}
		}
	} else {
		for _, line := range info {
			fmt.Println(line)
		}
	}
}

// RunInteractiveMode 运行交互式模式
func RunInteractiveMode(resourceMonitor *utils.ResourceMonitor, showLogoAndAnnouncement bool) {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Printf("⚠️  加载配置失败: %v\n", err)
		cfg, _ = config.LoadConfig("")
	}

	fmt.Printf("%s⚙️  使用配置: 语言=%s, 输出目录=%s%s\n", utils.Cyan, cfg.General.Language, cfg.General.OutputDirectory, utils.Reset)

	if showLogoAndAnnouncement {
		DisplayLogo(cfg)
		if cfg.Features.ShowAnnouncement {
			utils.DisplayAnnouncement()
		}
	}

	useColor := cfg.UI.ColoredOutput
	for {
		fmt.Printf("\n%s%s%s\n", utils.Cyan, strings.Repeat("=", 50), utils.Reset)
		fmt.Printf("\n1. 命令沙盘 (在内存世界中试跑命令)\n")
		fmt.Printf("2. 运行脚本到存档\n")
		fmt.Printf("3. 检查脚本\n")
		fmt.Printf("4. 转换脚本为相对坐标\n")
		fmt.Printf("5. 设置\n")
		fmt.Printf("6. 退出\n")
		fmt.Printf("%s%s%s\n", utils.Yellow, strings.Repeat("-", 30), utils.Reset)

		choice := utils.GetUserInput("请选择操作 (1-6)", "1", useColor)
		switch choice {
		case "1":
			runSandbox(cfg)
		case "2":
			runScriptToWorld(cfg)
		case "3":
			checkScript(cfg)
		case "4":
			convertScript(cfg)
		case "5":
			ShowSettingsMenu(cfg)
			useColor = cfg.UI.ColoredOutput
		case "6":
			fmt.Printf("👋 再见!\n")
			resourceMonitor.ShowMaxResourceUsage()
			return
		default:
			fmt.Printf("%s❌ 无效的选择，请重新输入%s\n", utils.Red, utils.Reset)
		}
	}
}

// runSandbox 命令沙盘。
// 所有命令作用在一个内存世界上, 退出时可以导出为 BDX 结构文件
func runSandbox(cfg *config.Config) {
	useColor := cfg.UI.ColoredOutput
	mem := world.NewMemoryWorld()
	runner := script.NewRunner(mem, define.BlockPos(cfg.Execution.DefaultOrigin))
	runner.Validate = true

	fmt.Printf("\n%s🧪 命令沙盘: 输入 setblock/fill 命令, exit 退出%s\n", utils.Yellow, utils.Reset)
	fmt.Printf("原点: %v\n", runner.Origin)

	for {
		line := utils.GetUserInput(">", "", useColor)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		count, err := runner.Execute(line)
		if err != nil {
			fmt.Printf("%s❌ %v%s\n", utils.Red, err, utils.Reset)
			continue
		}
		fmt.Printf("%s✅ 修改 %d 个方块, 沙盘共 %d 个非空气方块%s\n", utils.Green, count, mem.BlockCount(), utils.Reset)
	}

	if mem.BlockCount() == 0 {
		return
	}
	if !utils.GetUserInputBool("💾 导出沙盘为 BDX 文件?", false, useColor) {
		return
	}
	name := utils.GetUserInput("输出文件名", "sandbox.bdx", useColor)
	os.MkdirAll(cfg.General.OutputDirectory, 0755)
	outputPath := filepath.Join(cfg.General.OutputDirectory, name)
	result, err := export.ExportFile(outputPath, mem)
	if err != nil {
		fmt.Printf("%s❌ 导出失败: %v%s\n", utils.Red, err, utils.Reset)
		return
	}
	fmt.Printf("%s✅ 已导出 %d 个方块: %s%s\n", utils.Green, result.Blocks, outputPath, utils.Reset)
}

// runScriptToWorld 把脚本执行到 Bedrock 存档
func runScriptToWorld(cfg *config.Config) {
	useColor := cfg.UI.ColoredOutput

	scriptPath := utils.GetUserInput("📜 脚本路径", "", useColor)
	s, err := script.Load(scriptPath)
	if err != nil {
		fmt.Printf("%s❌ 读取脚本失败: %v%s\n", utils.Red, err, utils.Reset)
		return
	}

	worldPath := utils.GetUserInput("🌍 存档路径 (目录或 .mcworld)", "", useColor)
	origin := define.BlockPos{
		utils.GetUserInputInt("原点 X", cfg.Execution.DefaultOrigin[0], useColor),
		utils.GetUserInputInt("原点 Y", cfg.Execution.DefaultOrigin[1], useColor),
		utils.GetUserInputInt("原点 Z", cfg.Execution.DefaultOrigin[2], useColor),
	}

	w, err := world.Open(worldPath)
	if err != nil {
		fmt.Printf("%s❌ 打开存档失败: %v%s\n", utils.Red, err, utils.Reset)
		return
	}
	if cfg.Execution.FlushIntervalSeconds > 0 {
		w.AutoFlush(time.Duration(cfg.Execution.FlushIntervalSeconds) * time.Second)
	}

	runner := script.NewRunner(w, origin)
	runner.Validate = true
	runner.ContinueOnError = cfg.Execution.ContinueOnError
	runner.ShowProgress = cfg.UI.ProgressBars

	startTime := time.Now()
	result, runErr := runner.RunScript(s)
	if err := w.Close(); err != nil {
		fmt.Printf("%s❌ 保存存档失败: %v%s\n", utils.Red, err, utils.Reset)
		return
	}
	if runErr != nil {
		fmt.Printf("%s❌ 执行中止: %v%s\n", utils.Red, runErr, utils.Reset)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("\n%s✅ 执行完成! 耗时: %.2f秒%s\n", utils.Green, elapsed.Seconds(), utils.Reset)
	fmt.Printf("%s🧱 修改方块: %d 个%s\n", utils.Yellow, result.Total, utils.Reset)
	if result.ErrorCount > 0 {
		fmt.Printf("%s⚠️  失败行数: %d%s\n", utils.Yellow, result.ErrorCount, utils.Reset)
		for _, lr := range result.Results {
			if lr.Err != nil {
				fmt.Printf("  %s❌ %v%s\n", utils.Red, lr.Err, utils.Reset)
			}
		}
	}
}

// checkScript 解析脚本并报告语法错误与坐标范围
func checkScript(cfg *config.Config) {
	useColor := cfg.UI.ColoredOutput

	scriptPath := utils.GetUserInput("📜 脚本路径", "", useColor)
	s, err := script.Load(scriptPath)
	if err != nil {
		fmt.Printf("%s❌ 读取脚本失败: %v%s\n", utils.Red, err, utils.Reset)
		return
	}

	errorCount := 0
	for _, line := range s.Lines {
		if line.Err != nil {
			fmt.Printf("%s❌ 第 %d 行: %v%s\n", utils.Red, line.Number, line.Err, utils.Reset)
			errorCount++
		}
	}
	if errorCount > 0 {
		fmt.Printf("\n%s⚠️  共 %d 处语法错误%s\n", utils.Yellow, errorCount, utils.Reset)
		return
	}

	cmds := s.Commands()
	fmt.Printf("%s✅ 语法检查通过: %d 条命令%s\n", utils.Green, len(cmds), utils.Reset)
	if box, ok := script.Bounds(cmds); ok {
		size := box.Size()
		fmt.Printf("%s📐 坐标范围: %v 到 %v (%s)%s\n", utils.Yellow, box.Min, box.Max, size, utils.Reset)
	}
}

// convertScript 把脚本中的绝对坐标转换为相对基准点的偏移
func convertScript(cfg *config.Config) {
	useColor := cfg.UI.ColoredOutput

	scriptPath := utils.GetUserInput("📜 脚本路径", "", useColor)
	s, err := script.Load(scriptPath)
	if err != nil {
		fmt.Printf("%s❌ 读取脚本失败: %v%s\n", utils.Red, err, utils.Reset)
		return
	}

	detected := script.DetectBase(s.Commands())
	fmt.Printf("%s🔍 自动检测基准点: %v%s\n", utils.Cyan, detected, utils.Reset)
	base := define.BlockPos{
		utils.GetUserInputInt("基准点 X", detected.X(), useColor),
		utils.GetUserInputInt("基准点 Y", detected.Y(), useColor),
		utils.GetUserInputInt("基准点 Z", detected.Z(), useColor),
	}

	baseName := strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
	defaultName := baseName + "_relative" + filepath.Ext(scriptPath)
	name := utils.GetUserInput("💾 输出文件名", defaultName, useColor)

	os.MkdirAll(cfg.General.OutputDirectory, 0755)
	outputPath := filepath.Join(cfg.General.OutputDirectory, name)
	converted := script.ConvertRelative(s, base, name)
	if err := script.Save(converted, outputPath); err != nil {
		fmt.Printf("%s❌ 保存失败: %v%s\n", utils.Red, err, utils.Reset)
		return
	}
	fmt.Printf("%s✅ 转换完成: %s%s\n", utils.Green, outputPath, utils.Reset)
}

// ShowSettingsMenu 显示设置菜单
func ShowSettingsMenu(cfg *config.Config) {
	useColor := cfg.UI.ColoredOutput

	fmt.Println()
	fmt.Printf("%s%s%s\n", utils.Cyan, strings.Repeat("=", 50), utils.Reset)
	if useColor {
		fmt.Printf("%s⚙️  SunScript 设置菜单%s\n", utils.Cyan, utils.Reset)
	} else {
		fmt.Println("⚙️  SunScript 设置菜单")
	}
	fmt.Printf("%s%s%s\n", utils.Cyan, strings.Repeat("=", 50), utils.Reset)

	for {
		fmt.Printf("\n1. 查看当前配置\n")
		fmt.Printf("2. 修改输出目录\n")
		fmt.Printf("3. 切换控制台颜色 (当前: %s)\n", map[bool]string{true: "启用", false: "禁用"}[useColor])
		fmt.Printf("4. 修改默认原点 (当前: %v)\n", cfg.Execution.DefaultOrigin)
		fmt.Printf("5. 切换行错误处理 (当前: %s)\n", map[bool]string{true: "跳过继续", false: "立即中止"}[cfg.Execution.ContinueOnError])
		fmt.Printf("6. 保存并退出\n")
		fmt.Printf("7. 不保存退出\n")
		fmt.Printf("%s%s%s\n", utils.Yellow, strings.Repeat("-", 30), utils.Reset)

		choice := utils.GetUserInput("请选择操作 (1-7)", "", useColor)
		switch choice {
		case "1":
			fmt.Printf("\n%s📋 当前配置:%s\n", utils.Green, utils.Reset)
			fmt.Printf("   输出目录: %s\n", cfg.General.OutputDirectory)
			fmt.Printf("   控制台颜色: %s\n", map[bool]string{true: "启用", false: "禁用"}[useColor])
			fmt.Printf("   默认原点: %v\n", cfg.Execution.DefaultOrigin)
			fmt.Printf("   自动落盘间隔: %d 秒\n", cfg.Execution.FlushIntervalSeconds)
			fmt.Printf("   行错误处理: %s\n", map[bool]string{true: "跳过继续", false: "立即中止"}[cfg.Execution.ContinueOnError])

		case "2":
			newDir := utils.GetUserInput("请输入新的输出目录路径", cfg.General.OutputDirectory, useColor)
			if newDir != "" {
				cfg.General.OutputDirectory = newDir
				fmt.Printf("%s✅ 输出目录已更新为: %s%s\n", utils.Green, newDir, utils.Reset)
			}

		case "3":
			cfg.UI.ColoredOutput = !cfg.UI.ColoredOutput
			useColor = cfg.UI.ColoredOutput
			fmt.Printf("%s✅ 控制台颜色已%s%s\n", utils.Green, map[bool]string{true: "启用", false: "禁用"}[useColor], utils.Reset)

		case "4":
			cfg.Execution.DefaultOrigin = [3]int{
				utils.GetUserInputInt("原点 X", cfg.Execution.DefaultOrigin[0], useColor),
				utils.GetUserInputInt("原点 Y", cfg.Execution.DefaultOrigin[1], useColor),
				utils.GetUserInputInt("原点 Z", cfg.Execution.DefaultOrigin[2], useColor),
			}
			fmt.Printf("%s✅ 默认原点已更新为: %v%s\n", utils.Green, cfg.Execution.DefaultOrigin, utils.Reset)

		case "5":
			cfg.Execution.ContinueOnError = !cfg.Execution.ContinueOnError
			fmt.Printf("%s✅ 行错误处理已切换为: %s%s\n", utils.Green, map[bool]string{true: "跳过继续", false: "立即中止"}[cfg.Execution.ContinueOnError], utils.Reset)

		case "6":
			if err := cfg.SaveConfig("config.json"); err != nil {
				fmt.Printf("❌ 保存配置失败: %v\n", err)
			} else {
				fmt.Printf("✅ 配置已保存\n")
			}
			fmt.Printf("👋 返回主程序...\n")
			return

		case "7":
			loadedCfg, err := config.LoadConfig("config.json")
			if err != nil {
				fmt.Printf("⚠️  重新加载配置失败: %v\n", err)
			} else {
				*cfg = *loadedCfg
			}
			fmt.Printf("⚠️  更改未保存\n")
			fmt.Printf("👋 返回主程序...\n")
			return

		default:
			fmt.Printf("❌ 无效的选择，请重新输入\n")
		}
	}
}
