// Package export renders the assessment worksheet into a downloadable Excel
// workbook.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

// ExcelExporter writes assessment worksheets as xlsx
type ExcelExporter struct {
	companyName string
	logger      *zap.Logger
}

// NewExcelExporter creates an exporter stamping the company name on the
// sheet header.
func NewExcelExporter(companyName string, logger *zap.Logger) *ExcelExporter {
	return &ExcelExporter{companyName: companyName, logger: logger}
}

// Export builds the workbook for one claim's worksheet and returns the file
// bytes.
func (e *ExcelExporter) Export(claim *models.Claim, a *models.Assessment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Assessment"
	f.SetSheetName("Sheet1", sheet)

	setCell := func(cell string, value interface{}) {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			e.logger.Warn("Failed to set cell", zap.String("cell", cell), zap.Error(err))
		}
	}

	setCell("A1", e.companyName)
	setCell("A2", "Motor Assessment Worksheet")
	setCell("A3", fmt.Sprintf("Claim: %s", claim.ClaimNumber))
	setCell("A4", fmt.Sprintf("Vehicle: %s (%s)", a.Header.MakeModel, a.Header.VehicleRegNo))
	setCell("A5", fmt.Sprintf("Surveyor: %s", a.Header.SurveyorName))

	row := 7
	row = e.writeSparesTable(f, sheet, "Spare Parts", a.Spares, row)
	row = e.writeSparesTable(f, sheet, "Supplementary Spare Parts", a.SupplementarySpares, row)
	row = e.writeLabourTable(f, sheet, "Labour", a.Labour, row)
	row = e.writeLabourTable(f, sheet, "Supplementary Labour", a.SupplementaryLabour, row)
	e.writeSummary(f, sheet, a.Summary, row)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Info("Assessment workbook exported",
		zap.String("claim_id", claim.ID),
		zap.Int("size", buf.Len()))
	return buf.Bytes(), nil
}

func (e *ExcelExporter) writeSparesTable(f *excelize.File, sheet, title string, t models.SparesTable, row int) int {
	set := func(cell string, v interface{}) { _ = f.SetCellValue(sheet, cell, v) }

	set(fmt.Sprintf("A%d", row), title)
	row++
	headers := []string{"Description", "Qty", "Estimated", "Glass", "Plastic/Rubber", "Others/Metal"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		set(fmt.Sprintf("%s%d", col, row), h)
	}
	row++

	for _, r := range t.Rows {
		set(fmt.Sprintf("A%d", row), r.Description)
		set(fmt.Sprintf("B%d", row), r.Quantity)
		set(fmt.Sprintf("C%d", row), r.EstimatedAmount)
		set(fmt.Sprintf("D%d", row), r.AssessedGlass)
		set(fmt.Sprintf("E%d", row), r.AssessedPlasticRubber)
		set(fmt.Sprintf("F%d", row), r.AssessedOthersMetal)
		row++
	}

	set(fmt.Sprintf("A%d", row), "Totals")
	set(fmt.Sprintf("B%d", row), t.Totals.TotalQuantity)
	set(fmt.Sprintf("C%d", row), t.Totals.TotalEstimated)
	set(fmt.Sprintf("D%d", row), t.Totals.TotalAssessedGlass)
	set(fmt.Sprintf("E%d", row), t.Totals.TotalAssessedPlasticRubber)
	set(fmt.Sprintf("F%d", row), t.Totals.TotalAssessedOthersMetal)
	row++

	set(fmt.Sprintf("A%d", row), fmt.Sprintf("CGST %.2f%%", t.CGSTPercent))
	set(fmt.Sprintf("B%d", row), t.Totals.CGSTAmount)
	set(fmt.Sprintf("C%d", row), fmt.Sprintf("SGST %.2f%%", t.SGSTPercent))
	set(fmt.Sprintf("D%d", row), t.Totals.SGSTAmount)
	set(fmt.Sprintf("E%d", row), "Total with GST")
	set(fmt.Sprintf("F%d", row), t.Totals.TotalWithGST)
	row++

	set(fmt.Sprintf("A%d", row), "Depreciation")
	set(fmt.Sprintf("B%d", row), t.Totals.TotalDepreciation)
	set(fmt.Sprintf("C%d", row), "Net Amount")
	set(fmt.Sprintf("D%d", row), t.Totals.NetAmount)
	return row + 2
}

func (e *ExcelExporter) writeLabourTable(f *excelize.File, sheet, title string, t models.LabourTable, row int) int {
	set := func(cell string, v interface{}) { _ = f.SetCellValue(sheet, cell, v) }

	set(fmt.Sprintf("A%d", row), title)
	row++
	headers := []string{"Description", "Estimated", "Assessed"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		set(fmt.Sprintf("%s%d", col, row), h)
	}
	row++

	for _, r := range t.Rows {
		set(fmt.Sprintf("A%d", row), r.Description)
		set(fmt.Sprintf("B%d", row), r.EstimatedAmount)
		set(fmt.Sprintf("C%d", row), r.AssessedAmount)
		row++
	}

	set(fmt.Sprintf("A%d", row), "Totals")
	set(fmt.Sprintf("B%d", row), t.Totals.TotalEstimated)
	set(fmt.Sprintf("C%d", row), t.Totals.TotalAssessed)
	row++

	set(fmt.Sprintf("A%d", row), fmt.Sprintf("Deduction %.2f%%", t.DeductionPercent))
	set(fmt.Sprintf("B%d", row), t.Totals.DeductionAmount)
	set(fmt.Sprintf("C%d", row), "Net Amount")
	set(fmt.Sprintf("D%d", row), t.Totals.NetAmount)
	return row + 2
}

func (e *ExcelExporter) writeSummary(f *excelize.File, sheet string, s models.AssessmentSummary, row int) {
	set := func(cell string, v interface{}) { _ = f.SetCellValue(sheet, cell, v) }

	set(fmt.Sprintf("A%d", row), "Summary")
	row++
	lines := []struct {
		label string
		value float64
	}{
		{"Spares Net", s.SparesNet},
		{"Supplementary Spares Net", s.SupplementarySparesNet},
		{"Labour Net", s.LabourNet},
		{"Supplementary Labour Net", s.SupplementaryLabourNet},
		{"Gross Total", s.GrossTotal},
		{"Less: Salvage Value", s.SalvageValue},
		{"Less: Policy Excess", s.PolicyExcess},
		{"Net Liability", s.NetLiability},
	}
	for _, line := range lines {
		set(fmt.Sprintf("A%d", row), line.label)
		set(fmt.Sprintf("B%d", row), line.value)
		row++
	}
}
