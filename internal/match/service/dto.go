package service

import (
	"github.com/bitfantasy/ecomatch/internal/match/entity"
)

// 内外字段名映射集中在本文件：存储层用下划线命名，对外表示用
// 前端约定的驼峰命名。个别历史遗留字段不遵循驼峰规则
// （Analysis的created_at保持下划线；Activity的created_at对外叫time），
// 必须原样保留以兼容既有客户端。

// DemandDTO 需求的对外表示，同时作为创建/更新请求体
type DemandDTO struct {
	ID           string   `json:"id" binding:"required"`
	Category     string   `json:"category"`
	CustomerName string   `json:"customerName" binding:"required"`
	Industry     string   `json:"industry"`
	ProjectName  string   `json:"projectName" binding:"required"`
	ProjectTypes []string `json:"projectTypes"`
	Budget       string   `json:"budget"`
	Deadline     string   `json:"deadline"`
	Source       string   `json:"source"`
	Description  string   `json:"description"`
	Painpoints   string   `json:"painpoints"`
	Status       string   `json:"status" binding:"required"`
	Owner        string   `json:"owner"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

func DemandToDTO(d *entity.Demand) DemandDTO {
	return DemandDTO{
		ID:           d.ID,
		Category:     d.Category,
		CustomerName: d.CustomerName,
		Industry:     d.Industry,
		ProjectName:  d.ProjectName,
		ProjectTypes: projectTypes(d.ProjectTypes),
		Budget:       d.Budget,
		Deadline:     d.Deadline,
		Source:       d.Source,
		Description:  d.Description,
		Painpoints:   d.Painpoints,
		Status:       d.Status,
		Owner:        d.Owner,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// AnalysisDTO 需求分析的对外表示
type AnalysisDTO struct {
	ID            string `json:"id" binding:"required"`
	DemandID      string `json:"demandId" binding:"required"`
	Clarity       int    `json:"clarity"`
	Complexity    string `json:"complexity"`
	ProductForm   string `json:"productForm"`
	EstimatedDays int    `json:"estimatedDays"`
	Analyst       string `json:"analyst"`
	CoreFunctions string `json:"coreFunctions"`
	Conclusion    string `json:"conclusion"`
	Status        string `json:"status" binding:"required"`
	CreatedAt     string `json:"created_at"` // 历史遗留：不转驼峰
}

func AnalysisToDTO(a *entity.Analysis) AnalysisDTO {
	return AnalysisDTO{
		ID:            a.ID,
		DemandID:      a.DemandID,
		Clarity:       a.Clarity,
		Complexity:    a.Complexity,
		ProductForm:   a.ProductForm,
		EstimatedDays: a.EstimatedDays,
		Analyst:       a.Analyst,
		CoreFunctions: a.CoreFunctions,
		Conclusion:    a.Conclusion,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
	}
}

// PartnerDTO 合作伙伴的对外表示（内部时间戳不外露）
type PartnerDTO struct {
	ID                string   `json:"id" binding:"required"`
	CompanyName       string   `json:"companyName" binding:"required"`
	CompanySize       string   `json:"companySize"`
	Industries        []string `json:"industries"`
	Skills            []string `json:"skills"`
	ProjectTypes      []string `json:"projectTypes"`
	HistoryCount      int      `json:"historyCount"`
	QualityScore      int      `json:"qualityScore"`
	AvailableStaff    int      `json:"availableStaff"`
	Schedule          string   `json:"schedule"`
	CooperationStatus string   `json:"cooperationStatus"`
	Contact           string   `json:"contact"`
	Phone             string   `json:"phone"`
	Notes             string   `json:"notes"`
}

func PartnerToDTO(p *entity.Partner) PartnerDTO {
	return PartnerDTO{
		ID:                p.ID,
		CompanyName:       p.CompanyName,
		CompanySize:       p.CompanySize,
		Industries:        projectTypes(p.Industries),
		Skills:            projectTypes(p.Skills),
		ProjectTypes:      projectTypes(p.ProjectTypes),
		HistoryCount:      p.HistoryCount,
		QualityScore:      p.QualityScore,
		AvailableStaff:    p.AvailableStaff,
		Schedule:          p.Schedule,
		CooperationStatus: p.CooperationStatus,
		Contact:           p.Contact,
		Phone:             p.Phone,
		Notes:             p.Notes,
	}
}

// MatchingDTO 匹配记录的对外表示，同时作为创建请求体。
// 评审四元组字段可为null，序列化时不省略。
type MatchingDTO struct {
	ID              string `json:"id" binding:"required"`
	GroupID         string `json:"groupId" binding:"required"`
	DemandID        string `json:"demandId" binding:"required"`
	PartnerID       string `json:"partnerId" binding:"required"`
	Rank            int    `json:"rank"`
	TechScore       int    `json:"techScore"`
	IndustryScore   int    `json:"industryScore"`
	ScaleScore      int    `json:"scaleScore"`
	ScheduleScore   int    `json:"scheduleScore"`
	TotalScore      int    `json:"totalScore"`
	CooperationMode string `json:"cooperationMode"`
	Reason          string `json:"reason"`
	Risks           string `json:"risks"`

	ProductScore     *int    `json:"productScore"`
	ProductComment   *string `json:"productComment"`
	ProductScoreBy   *string `json:"productScoreBy"`
	ProductScoreTime *string `json:"productScoreTime"`

	PresalesScore     *int    `json:"presalesScore"`
	PresalesComment   *string `json:"presalesComment"`
	PresalesScoreBy   *string `json:"presalesScoreBy"`
	PresalesScoreTime *string `json:"presalesScoreTime"`

	Status    string `json:"status" binding:"required"`
	MatchDate string `json:"matchDate"`
}

func MatchingToDTO(m *entity.Matching) MatchingDTO {
	return MatchingDTO{
		ID:                m.ID,
		GroupID:           m.GroupID,
		DemandID:          m.DemandID,
		PartnerID:         m.PartnerID,
		Rank:              m.Rank,
		TechScore:         m.TechScore,
		IndustryScore:     m.IndustryScore,
		ScaleScore:        m.ScaleScore,
		ScheduleScore:     m.ScheduleScore,
		TotalScore:        m.TotalScore,
		CooperationMode:   m.CooperationMode,
		Reason:            m.Reason,
		Risks:             m.Risks,
		ProductScore:      m.ProductScore,
		ProductComment:    m.ProductComment,
		ProductScoreBy:    m.ProductScoreBy,
		ProductScoreTime:  m.ProductScoreTime,
		PresalesScore:     m.PresalesScore,
		PresalesComment:   m.PresalesComment,
		PresalesScoreBy:   m.PresalesScoreBy,
		PresalesScoreTime: m.PresalesScoreTime,
		Status:            m.Status,
		MatchDate:         m.MatchDate,
	}
}

// ActivityDTO 动态条目的对外表示：id不外露，created_at改名time
type ActivityDTO struct {
	Text  string `json:"text" binding:"required"`
	Color string `json:"color" binding:"required"`
	Time  string `json:"time"`
}

func ActivityToDTO(a *entity.Activity) ActivityDTO {
	return ActivityDTO{
		Text:  a.Text,
		Color: a.Color,
		Time:  a.CreatedAt,
	}
}

// projectTypes JSONB数组为nil时对外输出空数组而非null
func projectTypes(a entity.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return a
}
