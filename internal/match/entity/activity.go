package entity

// Activity 动态信息流条目，只追加
type Activity struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Text      string `json:"text" gorm:"type:text"`
	Color     string `json:"color" gorm:"size:20"`
	CreatedAt string `json:"created_at" gorm:"size:40"` // 对外字段名为time
}

func (Activity) TableName() string {
	return "activities"
}

// ActivityFeedLimit 读取路径只返回最近N条
const ActivityFeedLimit = 20
