package entity

// Matching 匹配记录：一条需求与一个候选伙伴在一次匹配运行中的配对
type Matching struct {
	ID        string `json:"id" gorm:"primaryKey;size:64"`
	GroupID   string `json:"group_id" gorm:"size:64;index"` // 同组记录属于同一次匹配运行
	DemandID  string `json:"demand_id" gorm:"size:64;index"`
	PartnerID string `json:"partner_id" gorm:"size:64;index"`
	Rank      int    `json:"rank"` // 组内排序，1为最优，由调用方维护

	// 四维打分与总分，均由调用方给定，存储层不重算
	TechScore     int `json:"tech_score"`
	IndustryScore int `json:"industry_score"`
	ScaleScore    int `json:"scale_score"`
	ScheduleScore int `json:"schedule_score"`
	TotalScore    int `json:"total_score"`

	CooperationMode string `json:"cooperation_mode" gorm:"size:100"`
	Reason          string `json:"reason" gorm:"type:text"`
	Risks           string `json:"risks" gorm:"type:text"`

	// 产品初筛评审（四元组整体设置或整体清空）
	ProductScore     *int    `json:"product_score"`
	ProductComment   *string `json:"product_comment" gorm:"type:text"`
	ProductScoreBy   *string `json:"product_score_by" gorm:"size:100"`
	ProductScoreTime *string `json:"product_score_time" gorm:"size:40"`

	// 售前评审（四元组整体设置或整体清空）
	PresalesScore     *int    `json:"presales_score"`
	PresalesComment   *string `json:"presales_comment" gorm:"type:text"`
	PresalesScoreBy   *string `json:"presales_score_by" gorm:"size:100"`
	PresalesScoreTime *string `json:"presales_score_time" gorm:"size:40"`

	Status    string `json:"status" gorm:"size:30"`
	MatchDate string `json:"match_date" gorm:"size:40"`

	// 服务端插入序号，列表排序依据，不进入对外表示
	Seq int64 `json:"-" gorm:"index"`
}

func (Matching) TableName() string {
	return "matchings"
}

// 匹配状态（开放枚举，状态不由打分推导）
const (
	MatchingStatusPending          = "pending"
	MatchingStatusProductReviewed  = "product_reviewed"
	MatchingStatusPresalesReviewed = "presales_reviewed"
	MatchingStatusRejected         = "rejected"
)
