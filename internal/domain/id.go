package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID 生成带实体前缀的不透明ID, 如 album-6f3b...
// 前缀便于排查问题时一眼看出ID所属实体
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
