package entity

// Demand 客户需求
type Demand struct {
	ID           string      `json:"id" gorm:"primaryKey;size:64"`
	Category     string      `json:"category" gorm:"size:50"`
	CustomerName string      `json:"customer_name" gorm:"size:200"`
	Industry     string      `json:"industry" gorm:"size:100"`
	ProjectName  string      `json:"project_name" gorm:"size:200"`
	ProjectTypes StringArray `json:"project_types" gorm:"type:jsonb"`
	Budget       string      `json:"budget" gorm:"size:100"`
	Deadline     string      `json:"deadline" gorm:"size:40"` // ISO日期字符串
	Source       string      `json:"source" gorm:"size:100"`
	Description  string      `json:"description" gorm:"type:text"`
	Painpoints   string      `json:"painpoints" gorm:"type:text"`
	Status       string      `json:"status" gorm:"size:20"`
	Owner        string      `json:"owner" gorm:"size:100"`
	CreatedAt    string      `json:"created_at" gorm:"size:40"`
	UpdatedAt    string      `json:"updated_at" gorm:"size:40"`

	// 服务端插入序号，列表排序依据，不进入对外表示
	Seq int64 `json:"-" gorm:"index"`
}

func (Demand) TableName() string {
	return "demands"
}

// 需求状态（开放枚举，未知值原样保留）
const (
	DemandStatusNew       = "new"
	DemandStatusAnalyzing = "analyzing"
	DemandStatusMatched   = "matched"
	DemandStatusClosed    = "closed"
)

// Touch 刷新updated_at，保持单调不减
func (d *Demand) Touch() {
	now := NowISO()
	if now > d.UpdatedAt {
		d.UpdatedAt = now
	}
}
