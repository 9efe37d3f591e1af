package world

import (
	"sort"
	"strconv"
	"strings"

	"github.com/TriM-Organization/bedrock-world-operator/block"
	"github.com/Yeah114/blocks"

	"github.com/suibian-sun/SunScript/command"
)

// RuntimeID 将方块描述解析为存档注册表的运行时 ID。
// 名称与状态先经方块注册表规范化为标准形态，再映射到存档注册表，
// 两步中任意一步失败都视为方块校验失败
func RuntimeID(spec *command.BlockSpec) (uint32, error) {
	name := spec.FullID()
	states := spec.StatesMap()
	if states == nil {
		states = map[string]any{}
	}
	rtid, found := blocks.BlockNameAndStateToRuntimeID(name, states)
	if !found {
		return 0, validateBlockError(spec)
	}
	baseName, canonicalStates, found := blocks.RuntimeIDToState(rtid)
	if !found {
		return 0, validateBlockError(spec)
	}
	name = "minecraft:" + baseName
	if runtimeID, ok := block.StateToRuntimeID(name, canonicalStates); ok {
		return runtimeID, nil
	}
	return 0, validateBlockError(spec)
}

// FromRuntimeID 将存档运行时 ID 还原为方块描述，状态键按字典序排列
func FromRuntimeID(runtimeID uint32) (*command.BlockSpec, error) {
	name, states, found := block.RuntimeIDToState(runtimeID)
	if !found {
		return nil, &ValidationError{
			Field: "方块运行时 ID",
			Value: strconv.FormatUint(uint64(runtimeID), 10),
		}
	}
	spec := command.NewBlockSpec(name)
	keys := make([]string, 0, len(states))
	for key := range states {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		spec.SetState(key, normalizeStateValue(states[key]))
	}
	return spec, nil
}

// validateBlockError 区分方块名未知与方块状态无效两种失败。
// 名称配空状态能查到注册表时，说明问题出在状态上
func validateBlockError(spec *command.BlockSpec) error {
	if _, ok := blocks.BlockNameAndStateToRuntimeID(spec.FullID(), map[string]any{}); ok {
		return &ValidationError{Field: "方块状态", Value: spec.String()}
	}
	return &ValidationError{
		Field:      "方块",
		Value:      spec.FullID(),
		Suggestion: suggestBlock(spec.FullID()),
	}
}

// normalizeStateValue 将注册表中的 NBT 取值收敛为命令语法的三种类型。
// 字节在方块状态里只用来表示布尔值
func normalizeStateValue(value any) any {
	switch v := value.(type) {
	case bool:
		return v
	case uint8:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return int32(v)
	case int32:
		return v
	case int:
		return int32(v)
	case int64:
		return int32(v)
	default:
		return value
	}
}

// commonBlockNames 拼写建议候选，覆盖手写脚本里最常出现的方块
var commonBlockNames = []string{
	"air", "stone", "cobblestone", "mossy_cobblestone", "stonebrick",
	"dirt", "grass_block", "podzol", "mycelium", "farmland", "grass_path",
	"sand", "gravel", "sandstone", "red_sandstone", "clay", "mud",
	"oak_planks", "spruce_planks", "birch_planks", "jungle_planks",
	"acacia_planks", "dark_oak_planks", "mangrove_planks", "cherry_planks",
	"bamboo_planks", "crimson_planks", "warped_planks",
	"oak_log", "spruce_log", "birch_log", "jungle_log", "acacia_log",
	"dark_oak_log", "mangrove_log", "cherry_log",
	"glass", "glass_pane", "tinted_glass", "glowstone", "sea_lantern",
	"obsidian", "crying_obsidian", "bedrock", "netherrack", "soul_sand",
	"soul_soil", "basalt", "blackstone", "end_stone", "purpur_block",
	"quartz_block", "smooth_quartz", "prismarine", "dark_prismarine",
	"bricks", "brick_block", "nether_brick", "red_nether_brick",
	"iron_block", "gold_block", "diamond_block", "emerald_block",
	"netherite_block", "copper_block", "coal_block", "redstone_block",
	"lapis_block", "amethyst_block", "iron_ore", "gold_ore", "diamond_ore",
	"coal_ore", "copper_ore", "redstone_ore", "lapis_ore", "emerald_ore",
	"water", "lava", "ice", "packed_ice", "blue_ice", "snow", "snow_layer",
	"wool", "white_wool", "concrete", "white_concrete", "terracotta",
	"torch", "ladder", "scaffolding", "slime", "honey_block", "tnt",
	"crafting_table", "furnace", "chest", "barrel", "bookshelf",
	"oak_stairs", "stone_stairs", "oak_fence", "oak_door", "oak_trapdoor",
	"smooth_stone", "polished_andesite", "polished_diorite",
	"polished_granite", "andesite", "diorite", "granite", "deepslate",
	"polished_deepslate", "deepslate_bricks", "tuff", "calcite",
}

// suggestBlock 在候选方块名中找与输入最接近的一个。
// 编辑距离超过 2 时不给建议，避免把离谱的输入也硬凑成建议
func suggestBlock(fullID string) string {
	id := fullID
	if idx := strings.LastIndex(fullID, ":"); idx >= 0 {
		id = fullID[idx+1:]
	}
	best := ""
	bestDistance := 3
	for _, candidate := range commonBlockNames {
		d := editDistance(id, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	if best == "" {
		return ""
	}
	return "minecraft:" + best
}

// editDistance 两个字符串的 Levenshtein 编辑距离
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
