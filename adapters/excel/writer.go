package excel

import (
	"fmt"
	"log"

	"beautydash/domain/metrics"
	"beautydash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Exporter writes a generated dataset to a spreadsheet, one sheet per table
// plus the campaign catalog.
type Exporter struct {
	filePath string
}

// NewExporter creates an exporter targeting the given .xlsx path
func NewExporter(filePath string) *Exporter {
	return &Exporter{filePath: filePath}
}

// Write serializes the dataset and saves the workbook
func (e *Exporter) Write(ds *metrics.Dataset) error {
	log.Printf("[Exporter] writing dataset %s to %s", ds.ID, e.filePath)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[Exporter] failed to close workbook: %v", err)
		}
	}()

	if err := e.writeSheet(f, "Sales", salesColumns, ds.SalesRows()); err != nil {
		return errors.ExportFailed(e.filePath, err)
	}
	if err := e.writeSheet(f, "Marketing", marketingColumns, ds.MarketingRows()); err != nil {
		return errors.ExportFailed(e.filePath, err)
	}
	if err := e.writeSheet(f, "Social", socialColumns, ds.SocialRows()); err != nil {
		return errors.ExportFailed(e.filePath, err)
	}
	if err := e.writeSheet(f, "Reviews", reviewColumns, ds.ReviewRows()); err != nil {
		return errors.ExportFailed(e.filePath, err)
	}
	if err := e.writeCampaigns(f, ds); err != nil {
		return errors.ExportFailed(e.filePath, err)
	}

	// Drop the workbook's default empty sheet
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.ExportFailed(e.filePath, err)
	}

	if err := f.SaveAs(e.filePath); err != nil {
		return errors.ExportFailed(e.filePath, err)
	}
	log.Printf("[Exporter] wrote %d sales / %d marketing / %d social / %d reviews rows",
		len(ds.Sales), len(ds.Marketing), len(ds.Social), len(ds.Reviews))
	return nil
}

// Column orders per sheet. Row maps are unordered, so sheets fix their own.
var (
	salesColumns     = []string{"Brand", "Date", "Category", "Product", "Channel", "Offer", "Campaign", "Qty", "UnitPrice", "Revenue"}
	marketingColumns = []string{"Brand", "Date", "Channel", "Campaign", "Traffic", "CTR", "CPC"}
	socialColumns    = []string{"Brand", "Date", "Platform", "EngagementRate", "Followers"}
	reviewColumns    = []string{"Brand", "Date", "Sentiment", "Rating"}
)

func (e *Exporter) writeSheet(f *excelize.File, name string, columns []string, rows []metrics.Row) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", name, err)
	}

	for i, row := range rows {
		values := make([]interface{}, len(columns))
		for j, col := range columns {
			values[j] = row[col] // missing columns (CPC) stay nil
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, name, err)
		}
	}
	return nil
}

func (e *Exporter) writeCampaigns(f *excelize.File, ds *metrics.Dataset) error {
	const name = "Campaigns"
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	if err := f.SetCellValue(name, "A1", "Campaign"); err != nil {
		return err
	}
	for i, c := range ds.Campaigns {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, string(c)); err != nil {
			return err
		}
	}
	return nil
}
