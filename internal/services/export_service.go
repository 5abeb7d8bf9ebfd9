package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportService renders the derived colony and commission figures into
// downloadable CSV, XLSX and PDF files. It formats, it never computes.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func (s *ExportService) ExportCSV(ctx context.Context, colony *models.ColonyResponse, summary *CommissionSummary) ([]byte, string, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{"Colony Report", colony.Name, time.Now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{""})

	_ = writer.Write([]string{"Land Position"})
	_ = writer.Write([]string{"Metric", "Value"})
	_ = writer.Write([]string{"Total Area (gaj)", fmt.Sprintf("%.2f", colony.TotalAreaGaj)})
	_ = writer.Write([]string{"Purchase Price", fmt.Sprintf("%.2f", colony.PurchasePrice)})
	_ = writer.Write([]string{"Used Area (gaj)", fmt.Sprintf("%.2f", colony.UsedAreaGaj)})
	_ = writer.Write([]string{"Sold Area (gaj)", fmt.Sprintf("%.2f", colony.SoldAreaGaj)})
	_ = writer.Write([]string{"Remaining Land (gaj)", fmt.Sprintf("%.2f", colony.RemainingAreaGaj)})
	_ = writer.Write([]string{"Price per Gaj", fmt.Sprintf("%.2f", colony.PricePerGaj)})
	_ = writer.Write([]string{""})

	_ = writer.Write([]string{"Plots"})
	_ = writer.Write([]string{"Status", "Count"})
	_ = writer.Write([]string{"Available", fmt.Sprintf("%d", colony.AvailablePlots)})
	_ = writer.Write([]string{"Booked", fmt.Sprintf("%d", colony.BookedPlots)})
	_ = writer.Write([]string{"Sold", fmt.Sprintf("%d", colony.SoldPlots)})
	_ = writer.Write([]string{"Total", fmt.Sprintf("%d", colony.PlotCount)})

	if summary != nil {
		_ = writer.Write([]string{""})
		_ = writer.Write([]string{"Commissions"})
		_ = writer.Write([]string{"Status", "Count", "Net Amount"})
		_ = writer.Write([]string{"Pending", fmt.Sprintf("%d", summary.PendingCount), fmt.Sprintf("%.2f", summary.PendingAmount)})
		_ = writer.Write([]string{"Approved", fmt.Sprintf("%d", summary.ApprovedCount), fmt.Sprintf("%.2f", summary.ApprovedAmount)})
		_ = writer.Write([]string{"Paid", fmt.Sprintf("%d", summary.PaidCount), fmt.Sprintf("%.2f", summary.PaidAmount)})
		_ = writer.Write([]string{"Total", fmt.Sprintf("%d", summary.TotalCount), fmt.Sprintf("%.2f", summary.TotalNet)})
	}

	writer.Flush()

	filename := fmt.Sprintf("colony_report_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportXLSX(ctx context.Context, colony *models.ColonyResponse, summary *CommissionSummary) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Colony"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Colony Report: %s", colony.Name))
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	_ = f.SetCellValue(sheet, "A3", "Land Position")
	_ = f.SetCellValue(sheet, "A4", "Metric")
	_ = f.SetCellValue(sheet, "B4", "Value")

	_ = f.SetCellValue(sheet, "A5", "Total Area (gaj)")
	_ = f.SetCellValue(sheet, "B5", colony.TotalAreaGaj)
	_ = f.SetCellValue(sheet, "A6", "Purchase Price")
	_ = f.SetCellValue(sheet, "B6", colony.PurchasePrice)
	_ = f.SetCellValue(sheet, "A7", "Used Area (gaj)")
	_ = f.SetCellValue(sheet, "B7", colony.UsedAreaGaj)
	_ = f.SetCellValue(sheet, "A8", "Sold Area (gaj)")
	_ = f.SetCellValue(sheet, "B8", colony.SoldAreaGaj)
	_ = f.SetCellValue(sheet, "A9", "Remaining Land (gaj)")
	_ = f.SetCellValue(sheet, "B9", colony.RemainingAreaGaj)
	_ = f.SetCellValue(sheet, "A10", "Price per Gaj")
	_ = f.SetCellValue(sheet, "B10", colony.PricePerGaj)

	_ = f.SetCellValue(sheet, "A12", "Plots")
	_ = f.SetCellValue(sheet, "A13", "Status")
	_ = f.SetCellValue(sheet, "B13", "Count")

	_ = f.SetCellValue(sheet, "A14", "Available")
	_ = f.SetCellValue(sheet, "B14", colony.AvailablePlots)
	_ = f.SetCellValue(sheet, "A15", "Booked")
	_ = f.SetCellValue(sheet, "B15", colony.BookedPlots)
	_ = f.SetCellValue(sheet, "A16", "Sold")
	_ = f.SetCellValue(sheet, "B16", colony.SoldPlots)
	_ = f.SetCellValue(sheet, "A17", "Total")
	_ = f.SetCellValue(sheet, "B17", colony.PlotCount)

	if summary != nil {
		_ = f.SetCellValue(sheet, "A19", "Commissions")
		_ = f.SetCellValue(sheet, "A20", "Status")
		_ = f.SetCellValue(sheet, "B20", "Count")
		_ = f.SetCellValue(sheet, "C20", "Net Amount")

		_ = f.SetCellValue(sheet, "A21", "Pending")
		_ = f.SetCellValue(sheet, "B21", summary.PendingCount)
		_ = f.SetCellValue(sheet, "C21", summary.PendingAmount)
		_ = f.SetCellValue(sheet, "A22", "Approved")
		_ = f.SetCellValue(sheet, "B22", summary.ApprovedCount)
		_ = f.SetCellValue(sheet, "C22", summary.ApprovedAmount)
		_ = f.SetCellValue(sheet, "A23", "Paid")
		_ = f.SetCellValue(sheet, "B23", summary.PaidCount)
		_ = f.SetCellValue(sheet, "C23", summary.PaidAmount)
		_ = f.SetCellValue(sheet, "A24", "Total")
		_ = f.SetCellValue(sheet, "B24", summary.TotalCount)
		_ = f.SetCellValue(sheet, "C24", summary.TotalNet)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("colony_report_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportPDF(ctx context.Context, colony *models.ColonyResponse, summary *CommissionSummary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Colony Report: %s", colony.Name))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Land Position")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 10, "Total Area:")
	pdf.Cell(40, 10, fmt.Sprintf("%.2f gaj", colony.TotalAreaGaj))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Purchase Price:")
	pdf.Cell(40, 10, fmt.Sprintf("%.2f INR", colony.PurchasePrice))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Used Area (roads & parks):")
	pdf.Cell(40, 10, fmt.Sprintf("%.2f gaj", colony.UsedAreaGaj))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Sold Area:")
	pdf.Cell(40, 10, fmt.Sprintf("%.2f gaj", colony.SoldAreaGaj))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Remaining Land:")
	pdf.Cell(40, 10, fmt.Sprintf("%.2f gaj", colony.RemainingAreaGaj))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Price per Gaj:")
	pdf.Cell(40, 10, fmt.Sprintf("%.2f INR", colony.PricePerGaj))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Plots")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 10, "Available:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", colony.AvailablePlots))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Booked:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", colony.BookedPlots))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Sold:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", colony.SoldPlots))
	pdf.Ln(6)

	pdf.Cell(60, 10, "Total:")
	pdf.Cell(40, 10, fmt.Sprintf("%d", colony.PlotCount))
	pdf.Ln(6)

	if summary != nil {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 10, "Commissions")
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		pdf.Cell(60, 10, "Pending:")
		pdf.Cell(40, 10, fmt.Sprintf("%d (%.2f INR)", summary.PendingCount, summary.PendingAmount))
		pdf.Ln(6)

		pdf.Cell(60, 10, "Approved:")
		pdf.Cell(40, 10, fmt.Sprintf("%d (%.2f INR)", summary.ApprovedCount, summary.ApprovedAmount))
		pdf.Ln(6)

		pdf.Cell(60, 10, "Paid:")
		pdf.Cell(40, 10, fmt.Sprintf("%d (%.2f INR)", summary.PaidCount, summary.PaidAmount))
		pdf.Ln(6)

		pdf.Cell(60, 10, "Total Net:")
		pdf.Cell(40, 10, fmt.Sprintf("%.2f INR", summary.TotalNet))
		pdf.Ln(6)
	}

	buf := new(bytes.Buffer)
	err := pdf.Output(buf)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("colony_report_%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
