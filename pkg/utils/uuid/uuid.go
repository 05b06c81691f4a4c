package uuid

import (
	"encoding/hex"

	"github.com/gofrs/uuid"
)

// GenUUID4 生成 32 位十六进制（无连字符）的 UUIDv4
func GenUUID4() string {
	return hex.EncodeToString(uuid.Must(uuid.NewV4()).Bytes())
}

// IsHexUUID 是否为 GenUUID4 格式的字符串
func IsHexUUID(s string) bool {
	if len(s) != 32 {
		return false
	}
	_, err := uuid.FromString(s)
	return err == nil
}
