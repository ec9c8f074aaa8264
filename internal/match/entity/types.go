package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

// StringArray JSONB字符串数组类型（标签、行业、技能等）
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(a)
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("failed to scan StringArray: %v", value)
	}
}

// NowISO 当前时间的ISO-8601字符串。
// 时间戳按原样存储为字符串，调用方传入的值不做重新格式化，
// 保证读回时逐字节一致。小数位固定6位，字典序即时间序。
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000Z07:00")
}

var insertSeq atomic.Int64

// NextSeq 服务端插入序号，严格单调递增。以微秒时钟为种子，
// 重启后继续递增。列表接口按它排序，调用方回填的时间戳
// 不影响插入序。
func NextSeq() int64 {
	for {
		now := time.Now().UnixMicro()
		last := insertSeq.Load()
		if now <= last {
			now = last + 1
		}
		if insertSeq.CompareAndSwap(last, now) {
			return now
		}
	}
}
