package envx

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Get 读取环境变量，不存在或为空时返回默认值
func Get(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// GetBool 读取布尔类型的环境变量
func GetBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(Get(key, "")))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDuration 读取时长类型的环境变量（如 5s, 1m）
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(Get(key, "")))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetInt 读取整数类型的环境变量
func GetInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(strings.TrimSpace(Get(key, "")))
	if err != nil {
		return defaultValue
	}
	return value
}
