package entity

// Partner 交付合作伙伴档案
type Partner struct {
	ID                string      `json:"id" gorm:"primaryKey;size:64"`
	CompanyName       string      `json:"company_name" gorm:"size:200"`
	CompanySize       string      `json:"company_size" gorm:"size:50"`
	Industries        StringArray `json:"industries" gorm:"type:jsonb"`
	Skills            StringArray `json:"skills" gorm:"type:jsonb"`
	ProjectTypes      StringArray `json:"project_types" gorm:"type:jsonb"`
	HistoryCount      int         `json:"history_count" gorm:"default:0"`
	QualityScore      int         `json:"quality_score" gorm:"default:3"` // 1-5
	AvailableStaff    int         `json:"available_staff" gorm:"default:0"`
	Schedule          string      `json:"schedule" gorm:"size:200"`
	CooperationStatus string      `json:"cooperation_status" gorm:"size:50"`
	Contact           string      `json:"contact" gorm:"size:100"`
	Phone             string      `json:"phone" gorm:"size:50"`
	Notes             string      `json:"notes" gorm:"type:text"`

	// 内部时间戳，不进入对外表示
	CreatedAt string `json:"created_at" gorm:"size:40"`
	UpdatedAt string `json:"updated_at" gorm:"size:40"`

	// 服务端插入序号，列表排序依据，不进入对外表示
	Seq int64 `json:"-" gorm:"index"`
}

func (Partner) TableName() string {
	return "partners"
}
