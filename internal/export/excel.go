package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"flightdesk/internal/models"
	"flightdesk/internal/stats"
)

// WriteWorkbook writes an Excel workbook with a Reservations sheet (same
// columns as the CSV report) and an Occupancy sheet.
func WriteWorkbook(w io.Writer, flights []models.Flight, reservations []models.Reservation) error {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", "Reservations")
	byID := flightsByID(flights)

	rows := make([][]interface{}, 0, len(reservations))
	for _, r := range reservations {
		row := reportRow(r, byID)
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		rows = append(rows, cells)
	}
	if err := writeSheet(file, "Reservations", ReportHeader, rows); err != nil {
		return err
	}

	if _, err := file.NewSheet("Occupancy"); err != nil {
		return fmt.Errorf("create sheet Occupancy: %w", err)
	}
	occRows := make([][]interface{}, 0, len(flights))
	for _, o := range stats.OccupancyReport(flights, reservations) {
		occRows = append(occRows, []interface{}{
			o.Flight.FlightNumber, o.Flight.Route(), o.Booked, o.Flight.TotalSeats, o.Available,
		})
	}
	occHeader := []string{"Flight Number", "Route", "Booked", "Total Seats", "Available"}
	if err := writeSheet(file, "Occupancy", occHeader, occRows); err != nil {
		return err
	}

	return file.Write(w)
}

func writeSheet(file *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	for i, col := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}

	// Bold header row
	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = file.SetCellStyle(sheet, startCell, endCell, style)
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}
	return nil
}
