package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vnkhanh/e-academy-backend/models"
	"github.com/vnkhanh/e-academy-backend/utils"
	"github.com/xuri/excelize/v2"
)

// CatalogSummary là số liệu tổng hợp hiển thị trên dashboard
type CatalogSummary struct {
	TotalResources int                         `json:"total_resources"`
	TotalCitations int                         `json:"total_citations"`
	ByType         map[models.ResourceType]int `json:"by_type"`
	ByAccess       map[models.AccessLevel]int  `json:"by_access"`
	ByCategory     []CategoryInfo              `json:"by_category"`
	Uncited        int                         `json:"uncited"`
	NewestYear     int                         `json:"newest_year"`
	OldestYear     int                         `json:"oldest_year"`
}

func Summarize(store *CatalogStore) CatalogSummary {
	sum := CatalogSummary{
		ByType:     map[models.ResourceType]int{},
		ByAccess:   map[models.AccessLevel]int{},
		ByCategory: store.Categories(),
	}
	for i, r := range store.All() {
		sum.TotalResources++
		sum.ByType[r.Type]++
		sum.ByAccess[r.Access]++
		if r.CitationCount == nil {
			sum.Uncited++
		} else {
			sum.TotalCitations += *r.CitationCount
		}
		if i == 0 || r.Year > sum.NewestYear {
			sum.NewestYear = r.Year
		}
		if i == 0 || r.Year < sum.OldestYear {
			sum.OldestYear = r.Year
		}
	}
	return sum
}

var exportHeaders = []string{"ID", "Title", "Authors", "Type", "Year", "Source", "Categories", "Access", "Citations"}

const exportSheet = "Resources"

// ExportResourcesXLSX xuất danh sách tài liệu ra file Excel
func ExportResourcesXLSX(resources []models.Resource) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("đổi tên sheet: %w", err)
	}
	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for row, r := range resources {
		source := ""
		if s := utils.SourceLine(r); s != nil {
			source = *s
		}
		var citations interface{} = ""
		if r.CitationCount != nil {
			citations = *r.CitationCount
		}
		values := []interface{}{
			r.ID, r.Title, strings.Join(r.Authors, ", "), string(r.Type), r.Year,
			source, strings.Join(r.Category, ", "), string(r.Access), citations,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("ghi file xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
