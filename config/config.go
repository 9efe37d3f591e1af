package config

import (
	"encoding/json"
	"os"
)

// Config 应用配置
type Config struct {
	General struct {
		Language        string `json:"language"`
		OutputDirectory string `json:"output_directory"`
	} `json:"general"`
	Execution struct {
		// DefaultOrigin 省略 --origin 时使用的原点，格式为 [x, y, z]
		DefaultOrigin [3]int `json:"default_origin"`
		// FlushIntervalSeconds 写入存档时自动落盘的间隔秒数，0 表示只在结束时落盘
		FlushIntervalSeconds int  `json:"flush_interval_seconds"`
		ContinueOnError      bool `json:"continue_on_error"`
	} `json:"execution"`
	UI struct {
		ColoredOutput bool `json:"colored_output"`
		ProgressBars  bool `json:"progress_bars"`
	} `json:"ui"`
	Features struct {
		ShowAnnouncement bool `json:"show_announcement"`
		AutoBackup       bool `json:"auto_backup"`
	} `json:"features"`
}

// LoadConfig 从文件加载配置，文件不存在或解析失败时回退到默认值
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err == nil {
			json.Unmarshal(data, config)
		}
	}

	return config, nil
}

func defaultConfig() *Config {
	config := &Config{}
	config.General.Language = "zh_CN"
	config.General.OutputDirectory = "output"
	config.Execution.DefaultOrigin = [3]int{0, 64, 0}
	config.Execution.FlushIntervalSeconds = 1
	config.Execution.ContinueOnError = true
	config.UI.ColoredOutput = true
	config.UI.ProgressBars = true
	config.Features.ShowAnnouncement = true
	config.Features.AutoBackup = false
	return config
}

// SaveConfig 保存配置到文件
func (c *Config) SaveConfig(configPath string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
