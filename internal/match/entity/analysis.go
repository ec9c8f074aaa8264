package entity

// Analysis 需求可行性分析（同一需求可多次分析，保留历史）
type Analysis struct {
	ID            string `json:"id" gorm:"primaryKey;size:64"`
	DemandID      string `json:"demand_id" gorm:"size:64;index"` // 软引用，不做外键约束
	Clarity       int    `json:"clarity"`
	Complexity    string `json:"complexity" gorm:"size:20"`
	ProductForm   string `json:"product_form" gorm:"size:100"`
	EstimatedDays int    `json:"estimated_days"`
	Analyst       string `json:"analyst" gorm:"size:100"`
	CoreFunctions string `json:"core_functions" gorm:"type:text"`
	Conclusion    string `json:"conclusion" gorm:"type:text"`
	Status        string `json:"status" gorm:"size:20"`
	CreatedAt     string `json:"created_at" gorm:"size:40"`

	// 服务端插入序号，列表排序依据，不进入对外表示
	Seq int64 `json:"-" gorm:"index"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// 复杂度（开放枚举）
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)
