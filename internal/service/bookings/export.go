package bookings

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/AC-BookingService/internal/domain"
	"github.com/m04kA/AC-BookingService/internal/service/bookings/models"
)

const exportSheet = "Bookings"

var exportHeaders = []string{
	"Booking ID", "Slot", "Customer", "Phone", "Address", "Services", "Technician", "ETA (min)", "Payment", "Total", "Status",
}

// ExportXLSX выгружает бронирования даты в Excel, по строке на бронирование
func (s *Service) ExportXLSX(ctx context.Context, date string) ([]byte, error) {
	bookings, err := s.filtered(ctx, &models.ListBookingsRequest{Date: &date})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: ExportXLSX - create sheet: %v", ErrInternal, err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("%w: ExportXLSX - delete default sheet: %v", ErrInternal, err)
	}

	if err := fillExportSheet(f, exportSheet, bookings); err != nil {
		s.logger.Error("ExportXLSX: failed to fill sheet for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ExportXLSX - %v", ErrInternal, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: ExportXLSX - write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("ExportXLSX: exported %d bookings for date=%s", len(bookings), date)
	return buf.Bytes(), nil
}

// fillExportSheet пишет заголовок и строки бронирований в лист sheet
func fillExportSheet(f *excelize.File, sheet string, bookings []*domain.Booking) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("header style %s: %w", cell, err)
		}
	}

	for i, b := range bookings {
		row := i + 2
		for col, v := range exportRow(b) {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 42); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "K", 18); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	return nil
}

func exportRow(b *domain.Booking) []interface{} {
	var address, technician, payment string
	var eta interface{}

	if b.Address != nil {
		address = fmt.Sprintf("%s, %s", b.Address.Line1, b.Address.Pincode)
	}
	if b.Technician != nil {
		technician = b.Technician.Name
		eta = b.Technician.ETAMinutes
	}
	if b.Payment != nil {
		payment = b.Payment.Method
	}

	services := ""
	for i, item := range b.Items {
		if i > 0 {
			services += "; "
		}
		services += fmt.Sprintf("%s x%d", item.Title, item.Quantity)
	}

	return []interface{}{
		b.ID, b.SlotLabel, b.CustomerName, b.CustomerPhone, address, services, technician, eta, payment, b.Total(), string(b.Status),
	}
}
