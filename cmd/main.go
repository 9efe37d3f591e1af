package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/suibian-sun/SunScript/config"
	"github.com/suibian-sun/SunScript/define"
	"github.com/suibian-sun/SunScript/export"
	"github.com/suibian-sun/SunScript/generate"
	"github.com/suibian-sun/SunScript/interactive"
	"github.com/suibian-sun/SunScript/script"
	"github.com/suibian-sun/SunScript/utils"
	"github.com/suibian-sun/SunScript/world"
)

func main() {
	var interactiveMode bool

	var rootCmd = &cobra.Command{
		Use:   "sunscript",
		Short: "SunScript - Minecraft setblock/fill 脚本工具",
		Long:  `SunScript 是一个解析并执行 setblock/fill 命令脚本的工具,支持写入Bedrock存档、批量摆放结构、导出BDX以及从图片生成脚本`,
		Run: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("set") {
				cfg := loadConfig()
				interactive.ShowSettingsMenu(cfg)
				return
			}

			resourceMonitor := utils.NewResourceMonitor()
			resourceMonitor.Start()

			// 无子命令时进入交互模式
			interactive.RunInteractiveMode(resourceMonitor, true)
		},
	}
	rootCmd.Flags().BoolVarP(&interactiveMode, "interactive", "I", false, "启用交互式模式")
	rootCmd.Flags().Bool("set", false, "进入设置模式")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newExtentCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newPlaceCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "interactive",
		Short: "进入交互式控制台",
		Run: func(cmd *cobra.Command, args []string) {
			resourceMonitor := utils.NewResourceMonitor()
			resourceMonitor.Start()
			interactive.RunInteractiveMode(resourceMonitor, true)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("❌ 命令执行失败: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig 读取 config.json, 失败时回退到默认配置
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Printf("⚠️  加载配置失败: %v\n", err)
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// loadScript 读取脚本文件, 失败时中止
func loadScript(path string) *script.Script {
	s, err := script.Load(path)
	if err != nil {
		fmt.Printf("%s❌ 读取脚本失败: %v%s\n", utils.Red, err, utils.Reset)
		os.Exit(1)
	}
	return s
}

// requireNoSyntaxErrors 打印脚本中的全部语法错误, 有错误时中止
func requireNoSyntaxErrors(s *script.Script) {
	errorCount := 0
	for _, line := range s.Lines {
		if line.Err != nil {
			fmt.Printf("%s❌ 第 %d 行: %v%s\n", utils.Red, line.Number, line.Err, utils.Reset)
			errorCount++
		}
	}
	if errorCount > 0 {
		fmt.Printf("%s⚠️  共 %d 处语法错误%s\n", utils.Yellow, errorCount, utils.Reset)
		os.Exit(1)
	}
}

// openWorld 打开存档并按配置启用自动落盘
func openWorld(path string, cfg *config.Config) *world.MCWorld {
	w, err := world.Open(path)
	if err != nil {
		fmt.Printf("%s❌ 打开存档失败: %v%s\n", utils.Red, err, utils.Reset)
		os.Exit(1)
	}
	if cfg.Execution.FlushIntervalSeconds > 0 {
		w.AutoFlush(time.Duration(cfg.Execution.FlushIntervalSeconds) * time.Second)
	}
	return w
}

// closeWorld 落盘并关闭存档, 失败时中止
func closeWorld(w *world.MCWorld) {
	if err := w.Close(); err != nil {
		fmt.Printf("%s❌ 保存存档失败: %v%s\n", utils.Red, err, utils.Reset)
		os.Exit(1)
	}
}

// reportResult 打印批量执行的统计
func reportResult(result *script.ScriptResult, elapsed time.Duration) {
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

func originPos(origin []int, cfg *config.Config) define.BlockPos {
	if len(origin) == 3 {
		return define.BlockPos{origin[0], origin[1], origin[2]}
	}
	return define.BlockPos(cfg.Execution.DefaultOrigin)
}

func newRunCmd() *cobra.Command {
	var scriptPath string
	var worldPath string
	var origin []int
	var dryRun bool
	var noValidate bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "执行脚本,写入存档或在内存中试跑",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			s := loadScript(scriptPath)

			resourceMonitor := utils.NewResourceMonitor()
			resourceMonitor.Start()

			runner := script.NewRunner(nil, originPos(origin, cfg))
			runner.Validate = !noValidate
			runner.ContinueOnError = cfg.Execution.ContinueOnError
			runner.ShowProgress = cfg.UI.ProgressBars

			startTime := time.Now()
			if dryRun || worldPath == "" {
				mem := world.NewMemoryWorld()
				runner.World = mem
				result, runErr := runner.RunScript(s)
				if runErr != nil {
					fmt.Printf("%s❌ 执行中止: %v%s\n", utils.Red, runErr, utils.Reset)
				}
				reportResult(result, time.Since(startTime))
				if minPos, maxPos, ok := mem.Bounds(); ok {
					fmt.Printf("%s📐 影响范围: %v 到 %v%s\n", utils.Yellow, minPos, maxPos, utils.Reset)
				}
				fmt.Printf("%s💡 试跑模式, 未写入任何存档%s\n", utils.Cyan, utils.Reset)
				resourceMonitor.ShowMaxResourceUsage()
				if result.ErrorCount > 0 {
					os.Exit(1)
				}
			} else {
				w := openWorld(worldPath, cfg)
				runner.World = w
				result, runErr := runner.RunScript(s)
				closeWorld(w)
				if runErr != nil {
					fmt.Printf("%s❌ 执行中止: %v%s\n", utils.Red, runErr, utils.Reset)
				}
				reportResult(result, time.Since(startTime))
				resourceMonitor.ShowMaxResourceUsage()
				if result.ErrorCount > 0 {
					os.Exit(1)
				}
			}
		},
	}
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "脚本文件路径")
	cmd.Flags().StringVarP(&worldPath, "world", "w", "", "存档路径(目录或 .mcworld)")
	cmd.Flags().IntSliceVarP(&origin, "origin", "O", nil, "相对坐标的原点, 格式 x,y,z")
	cmd.Flags().BoolVar(&dryRun, "dry", false, "只在内存中试跑, 不写入存档")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "跳过方块注册表校验")
	cmd.MarkFlagRequired("script")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var origin []int

	cmd := &cobra.Command{
		Use:   "batch <存档路径> <脚本>...",
		Short: "把一个或多个脚本依次执行到同一个存档",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			worldPath := args[0]

			scripts := make([]*script.Script, 0, len(args)-1)
			for _, path := range args[1:] {
				scripts = append(scripts, loadScript(path))
			}

			resourceMonitor := utils.NewResourceMonitor()
			resourceMonitor.Start()

			w := openWorld(worldPath, cfg)
			runner := script.NewRunner(w, originPos(origin, cfg))
			runner.Validate = true
			runner.ContinueOnError = cfg.Execution.ContinueOnError
			runner.ShowProgress = cfg.UI.ProgressBars

			startTime := time.Now()
			total := 0
			failed := 0
			for i, s := range scripts {
				fmt.Printf("\n%s📜 [%d/%d] %s%s\n", utils.Cyan, i+1, len(scripts), args[1+i], utils.Reset)
				result, runErr := runner.RunScript(s)
				total += result.Total
				failed += result.ErrorCount
				if runErr != nil {
					fmt.Printf("%s❌ 执行中止: %v%s\n", utils.Red, runErr, utils.Reset)
					break
				}
				fmt.Printf("%s🧱 修改方块: %d 个%s\n", utils.Yellow, result.Total, utils.Reset)
				for _, lr := range result.Results {
					if lr.Err != nil {
						fmt.Printf("  %s❌ %v%s\n", utils.Red, lr.Err, utils.Reset)
					}
				}
			}
			closeWorld(w)

			elapsed := time.Since(startTime)
			fmt.Printf("\n%s✅ 批量执行完成! 共修改 %d 个方块, 耗时: %.2f秒%s\n",
				utils.Green, total, elapsed.Seconds(), utils.Reset)
			resourceMonitor.ShowMaxResourceUsage()
			if failed > 0 {
				fmt.Printf("%s⚠️  失败行数: %d%s\n", utils.Yellow, failed, utils.Reset)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().IntSliceVarP(&origin, "origin", "O", nil, "相对坐标的原点, 格式 x,y,z")
	return cmd
}

func newParseCmd() *cobra.Command {
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "检查脚本语法",
		Run: func(cmd *cobra.Command, args []string) {
			s := loadScript(scriptPath)
			requireNoSyntaxErrors(s)
			fmt.Printf("%s✅ 语法检查通过: %d 条命令%s\n", utils.Green, s.CommandCount(), utils.Reset)
		},
	}
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "脚本文件路径")
	cmd.MarkFlagRequired("script")
	return cmd
}

func newExtentCmd() *cobra.Command {
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "extent",
		Short: "计算脚本的坐标范围与结构尺寸",
		Run: func(cmd *cobra.Command, args []string) {
			s := loadScript(scriptPath)
			requireNoSyntaxErrors(s)

			cmds := s.Commands()
			box, ok := script.Bounds(cmds)
			if !ok {
				fmt.Printf("%s⚠️  脚本中没有命令%s\n", utils.Yellow, utils.Reset)
				return
			}
			size := box.Size()
			fmt.Printf("%s📐 坐标范围: %v 到 %v%s\n", utils.Yellow, box.Min, box.Max, utils.Reset)
			fmt.Printf("%s📏 结构尺寸: %s (%d 格)%s\n", utils.Yellow, size, box.Volume(), utils.Reset)
			fmt.Printf("%s🧾 命令数量: %d%s\n", utils.Yellow, len(cmds), utils.Reset)
		},
	}
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "脚本文件路径")
	cmd.MarkFlagRequired("script")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var scriptPath string
	var outputPath string
	var base []int

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "把脚本的绝对坐标转换为相对基准点的偏移",
		Run: func(cmd *cobra.Command, args []string) {
			s := loadScript(scriptPath)
			requireNoSyntaxErrors(s)

			var basePos define.BlockPos
			if len(base) == 3 {
				basePos = define.BlockPos{base[0], base[1], base[2]}
			} else {
				basePos = script.DetectBase(s.Commands())
				fmt.Printf("%s🔍 自动检测基准点: %v%s\n", utils.Cyan, basePos, utils.Reset)
			}

			if outputPath == "" {
				baseName := strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
				outputPath = baseName + "_relative" + filepath.Ext(scriptPath)
			}
			converted := script.ConvertRelative(s, basePos, filepath.Base(outputPath))
			if err := script.Save(converted, outputPath); err != nil {
				fmt.Printf("%s❌ 保存失败: %v%s\n", utils.Red, err, utils.Reset)
				os.Exit(1)
			}
			fmt.Printf("%s✅ 转换完成: %s%s\n", utils.Green, outputPath, utils.Reset)
		},
	}
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "脚本文件路径")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "输出文件路径")
	cmd.Flags().IntSliceVarP(&base, "base", "b", nil, "基准点, 格式 x,y,z (省略则自动检测)")
	cmd.MarkFlagRequired("script")
	return cmd
}

func newPlaceCmd() *cobra.Command {
	var scriptPath string
	var worldPath string
	var at []int
	var anchorName string
	var adjacent string
	var refPath string
	var gap int
	var grid []int
	var spacing []int

	cmd := &cobra.Command{
		Use:   "place",
		Short: "把相对坐标脚本摆放到存档中的指定位置",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			s := loadScript(scriptPath)
			requireNoSyntaxErrors(s)

			anchor, err := define.ParseAnchor(anchorName)
			if err != nil {
				fmt.Printf("%s❌ %v%s\n", utils.Red, err, utils.Reset)
				os.Exit(1)
			}
			target := originPos(at, cfg)

			w := openWorld(worldPath, cfg)
			runner := script.NewRunner(w, target)
			runner.Validate = true
			runner.ContinueOnError = false
			placer := script.NewPlacer(runner)

			startTime := time.Now()
			switch {
			case len(grid) == 2:
				spacingX, spacingZ := 1, 1
				if len(spacing) == 2 {
					spacingX, spacingZ = spacing[0], spacing[1]
				}
				results, err := placer.PlaceGrid(s, target, grid[0], grid[1], spacingX, spacingZ, anchor)
				if err != nil {
					closeWorld(w)
					fmt.Printf("%s❌ 摆放失败: %v%s\n", utils.Red, err, utils.Reset)
					os.Exit(1)
				}
				closeWorld(w)
				total := 0
				for _, r := range results {
					total += r.BlocksPlaced
				}
				fmt.Printf("%s✅ 网格摆放完成! %d 份, 共 %d 个方块, 耗时: %.2f秒%s\n",
					utils.Green, len(results), total, time.Since(startTime).Seconds(), utils.Reset)

			case adjacent != "":
				dir, err := define.ParseDirection(adjacent)
				if err != nil {
					closeWorld(w)
					fmt.Printf("%s❌ %v%s\n", utils.Red, err, utils.Reset)
					os.Exit(1)
				}
				ref := s
				if refPath != "" {
					ref = loadScript(refPath)
					requireNoSyntaxErrors(ref)
				}
				result, err := placer.PlaceAdjacent(s, target, dir, gap, ref)
				if err != nil {
					closeWorld(w)
					fmt.Printf("%s❌ 摆放失败: %v%s\n", utils.Red, err, utils.Reset)
					os.Exit(1)
				}
				closeWorld(w)
				fmt.Printf("%s✅ 摆放完成! %d 个方块, 原点 %v, 耗时: %.2f秒%s\n",
					utils.Green, result.BlocksPlaced, result.Origin, time.Since(startTime).Seconds(), utils.Reset)

			default:
				result, err := placer.PlaceAt(s, target, anchor)
				if err != nil {
					closeWorld(w)
					fmt.Printf("%s❌ 摆放失败: %v%s\n", utils.Red, err, utils.Reset)
					os.Exit(1)
				}
				closeWorld(w)
				fmt.Printf("%s✅ 摆放完成! %d 个方块, 范围 %v 到 %v, 耗时: %.2f秒%s\n",
					utils.Green, result.BlocksPlaced, result.Box.Min, result.Box.Max, time.Since(startTime).Seconds(), utils.Reset)
			}
		},
	}
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "脚本文件路径")
	cmd.Flags().StringVarP(&worldPath, "world", "w", "", "存档路径(目录或 .mcworld)")
	cmd.Flags().IntSliceVarP(&at, "at", "a", nil, "放置位置, 格式 x,y,z")
	cmd.Flags().StringVar(&anchorName, "anchor", "corner", "锚点 (corner, center, base_center)")
	cmd.Flags().StringVar(&adjacent, "adjacent", "", "相邻摆放方向 (east, west, south, north, up, down)")
	cmd.Flags().StringVar(&refPath, "ref", "", "相邻摆放的参照脚本, 省略时用待摆放脚本自身")
	cmd.Flags().IntVar(&gap, "gap", 0, "相邻摆放的间隔格数")
	cmd.Flags().IntSliceVar(&grid, "grid", nil, "网格摆放的列数与行数, 格式 cols,rows")
	cmd.Flags().IntSliceVar(&spacing, "spacing", nil, "网格摆放的间隔, 格式 x,z")
	cmd.MarkFlagRequired("script")
	cmd.MarkFlagRequired("world")
	return cmd
}

func newCreateCmd() *cobra.Command {
	var worldPath string
	var name string
	var flat []int
	var layersSpec string
	var void bool
	var platform bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "创建新的 Bedrock 存档",
		Run: func(cmd *cobra.Command, args []string) {
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(worldPath), filepath.Ext(worldPath))
			}

			startTime := time.Now()
			var w *world.MCWorld
			var err error
			switch {
			case void:
				w, err = world.CreateVoid(worldPath, name, platform)
			case len(flat) == 2:
				layers := world.DefaultFlatLayers()
				if layersSpec != "" {
					layers, err = world.ParseLayers(layersSpec)
					if err != nil {
						fmt.Printf("%s❌ %v%s\n", utils.Red, err, utils.Reset)
						os.Exit(1)
					}
				}
				w, err = world.CreateFlat(worldPath, name, flat[0], flat[1], layers)
			default:
				w, err = world.Create(worldPath, name)
			}
			if err != nil {
				fmt.Printf("%s❌ 创建存档失败: %v%s\n", utils.Red, err, utils.Reset)
				os.Exit(1)
			}
			closeWorld(w)
			fmt.Printf("%s✅ 存档创建完成: %s (%s), 耗时: %.2f秒%s\n",
				utils.Green, worldPath, name, time.Since(startTime).Seconds(), utils.Reset)
		},
	}
	cmd.Flags().StringVarP(&worldPath, "world", "w", "", "存档路径")
	cmd.Flags().StringVarP(&name, "name", "n", "", "存档显示名称")
	cmd.Flags().IntSliceVar(&flat, "flat", nil, "超平坦尺寸, 格式 sizeX,sizeZ (区块数)")
	cmd.Flags().StringVar(&layersSpec, "layers", "", "超平坦分层, 格式 方块:厚度,... (如 bedrock:1,dirt:2,grass_block:1)")
	cmd.Flags().BoolVar(&void, "void", false, "创建虚空存档")
	cmd.Flags().BoolVar(&platform, "platform", false, "虚空存档在出生点生成 3x3 石台")
	cmd.MarkFlagRequired("world")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var inputFile string
	var outputFile string
	var width, height int
	var selectedBlocks []string
	var flat bool
	var heightmap bool
	var maxHeight int
	var block string
	var topBlock string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "从图片生成 setblock 脚本 (像素画或高度图地形)",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()

			if _, err := os.Stat(inputFile); os.IsNotExist(err) {
				fmt.Printf("%s❌ 输入文件不存在: %s%s\n", utils.Red, inputFile, utils.Reset)
				os.Exit(1)
			}

			fmt.Println("\n🔄 开始生成...")
			startTime := time.Now()

			var s *script.Script
			var err error
			if heightmap {
				s, err = generate.HeightmapFile(inputFile, generate.HeightmapOptions{
					Width:        width,
					Length:       height,
					MaxHeight:    maxHeight,
					Block:        block,
					TopBlock:     topBlock,
					ShowProgress: cfg.UI.ProgressBars,
				})
			} else {
				var palette *generate.Palette
				palette, err = generate.PaletteByNames(selectedBlocks)
				if err == nil {
					s, err = generate.PixelArtFile(inputFile, generate.PixelArtOptions{
						Width:        width,
						Height:       height,
						Palette:      palette,
						Flat:         flat,
						ShowProgress: cfg.UI.ProgressBars,
					})
				}
			}
			if err != nil {
				fmt.Printf("%s❌ 生成失败: %v%s\n", utils.Red, err, utils.Reset)
				os.Exit(1)
			}

			if outputFile == "" {
				baseName := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
				os.MkdirAll(cfg.General.OutputDirectory, 0755)
				outputFile = filepath.Join(cfg.General.OutputDirectory, baseName+".sunscript")
			}
			if err := script.Save(s, outputFile); err != nil {
				fmt.Printf("%s❌ 保存失败: %v%s\n", utils.Red, err, utils.Reset)
				os.Exit(1)
			}

			elapsed := time.Since(startTime)
			fmt.Printf("%s✅ 生成完成! 耗时: %.2f秒%s\n", utils.Green, elapsed.Seconds(), utils.Reset)
			fmt.Printf("%s🧾 命令数量: %d%s\n", utils.Yellow, s.CommandCount(), utils.Reset)
			fmt.Printf("%s💾 输出文件: %s%s\n", utils.Yellow, outputFile, utils.Reset)
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "输入图片文件路径")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "输出脚本路径")
	cmd.Flags().IntVarP(&width, "width", "W", 0, "输出宽度(方块), 0 为原图尺寸")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "输出高度(方块), 0 为原图尺寸")
	cmd.Flags().StringSliceVarP(&selectedBlocks, "blocks", "b", []string{}, "像素画调色板 (如 wool,concrete)")
	cmd.Flags().BoolVar(&flat, "flat", false, "像素画平铺在地面而非竖立为墙")
	cmd.Flags().BoolVar(&heightmap, "heightmap", false, "按灰度生成高度图地形")
	cmd.Flags().IntVar(&maxHeight, "max-height", 32, "高度图的最大柱高")
	cmd.Flags().StringVar(&block, "block", "minecraft:stone", "高度图的柱体方块")
	cmd.Flags().StringVar(&topBlock, "top-block", "minecraft:grass_block", "高度图的柱顶方块")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newExportCmd() *cobra.Command {
	var scriptPath string
	var outputFile string
	var origin []int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "把脚本编译为 BDX 结构文件",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			s := loadScript(scriptPath)
			requireNoSyntaxErrors(s)

			// 先在内存世界中执行, 再把非空气方块编译进 BDX
			mem := world.NewMemoryWorld()
			runner := script.NewRunner(mem, originPos(origin, cfg))
			runner.Validate = true
			runner.ContinueOnError = false
			runner.ShowProgress = cfg.UI.ProgressBars

			startTime := time.Now()
			if _, err := runner.RunScript(s); err != nil {
				fmt.Printf("%s❌ 执行中止: %v%s\n", utils.Red, err, utils.Reset)
				os.Exit(1)
			}

			if outputFile == "" {
				baseName := strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
				os.MkdirAll(cfg.General.OutputDirectory, 0755)
				outputFile = filepath.Join(cfg.General.OutputDirectory, baseName+".bdx")
			}
			result, err := export.ExportFile(outputFile, mem)
			if err != nil {
				fmt.Printf("%s❌ 导出失败: %v%s\n", utils.Red, err, utils.Reset)
				os.Exit(1)
			}

			elapsed := time.Since(startTime)
			fmt.Printf("%s✅ 导出完成! 耗时: %.2f秒%s\n", utils.Green, elapsed.Seconds(), utils.Reset)
			fmt.Printf("%s🧱 方块数量: %d 个%s\n", utils.Yellow, result.Blocks, utils.Reset)
			fmt.Printf("%s📐 结构范围: %v 到 %v%s\n", utils.Yellow, result.Start, result.End, utils.Reset)
			fmt.Printf("%s💾 输出文件: %s%s\n", utils.Yellow, outputFile, utils.Reset)
		},
	}
	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "脚本文件路径")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "输出 BDX 文件路径")
	cmd.Flags().IntSliceVarP(&origin, "origin", "O", nil, "相对坐标的原点, 格式 x,y,z")
	cmd.MarkFlagRequired("script")
	return cmd
}
