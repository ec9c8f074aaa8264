package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService 匹配结果Excel导出，供线下评审传阅
type ExportService struct {
	matchingRepo *repository.MatchingRepository
	demandRepo   *repository.DemandRepository
	partnerRepo  *repository.PartnerRepository
}

func NewExportService(matchingRepo *repository.MatchingRepository, demandRepo *repository.DemandRepository, partnerRepo *repository.PartnerRepository) *ExportService {
	return &ExportService{
		matchingRepo: matchingRepo,
		demandRepo:   demandRepo,
		partnerRepo:  partnerRepo,
	}
}

var matchingExportHeaders = []string{
	"匹配ID", "批次", "需求", "伙伴", "排名",
	"技术", "行业", "规模", "档期", "总分",
	"合作方式", "匹配理由", "风险",
	"产品评分", "产品评审人", "售前评分", "售前评审人", "状态",
}

// ExportMatchings 导出全部匹配记录为xlsx。需求/伙伴名称尽力
// 关联，悬空引用退回显示原始ID。
func (s *ExportService) ExportMatchings(ctx context.Context) (*excelize.File, error) {
	matchings, err := s.matchingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchings: %w", err)
	}
	demands, err := s.demandRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list demands: %w", err)
	}
	partners, err := s.partnerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}

	demandNames := make(map[string]string, len(demands))
	for i := range demands {
		demandNames[demands[i].ID] = demands[i].ProjectName
	}
	partnerNames := make(map[string]string, len(partners))
	for i := range partners {
		partnerNames[partners[i].ID] = partners[i].CompanyName
	}

	f := excelize.NewFile()
	sheet := "匹配结果"
	f.SetSheetName("Sheet1", sheet)

	// 表头样式: 加粗
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range matchingExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	colWidths := []float64{16, 12, 24, 24, 6, 8, 8, 8, 8, 8, 14, 30, 24, 10, 12, 10, 12, 14}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	for rowIdx := range matchings {
		m := &matchings[rowIdx]
		row := rowIdx + 2

		demandName := demandNames[m.DemandID]
		if demandName == "" {
			demandName = m.DemandID
		}
		partnerName := partnerNames[m.PartnerID]
		if partnerName == "" {
			partnerName = m.PartnerID
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.GroupID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), demandName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), partnerName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), m.Rank)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), m.TechScore)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), m.IndustryScore)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), m.ScaleScore)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), m.ScheduleScore)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), m.TotalScore)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), m.CooperationMode)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), m.Reason)
		f.SetCellValue(sheet, fmt.Sprintf("M%d", row), m.Risks)
		if m.ProductScore != nil {
			f.SetCellValue(sheet, fmt.Sprintf("N%d", row), *m.ProductScore)
		}
		if m.ProductScoreBy != nil {
			f.SetCellValue(sheet, fmt.Sprintf("O%d", row), *m.ProductScoreBy)
		}
		if m.PresalesScore != nil {
			f.SetCellValue(sheet, fmt.Sprintf("P%d", row), *m.PresalesScore)
		}
		if m.PresalesScoreBy != nil {
			f.SetCellValue(sheet, fmt.Sprintf("Q%d", row), *m.PresalesScoreBy)
		}
		f.SetCellValue(sheet, fmt.Sprintf("R%d", row), m.Status)
	}

	return f, nil
}

// 导出文件名
func ExportFileName() string {
	return fmt.Sprintf("matchings-%s.xlsx", entity.NowISO()[:10])
}
