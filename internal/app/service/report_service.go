package service

import (
	"bytes"
	"fmt"

	"github.com/sportsoles/sportsoles-backend/internal/app/repository"
	"github.com/sportsoles/sportsoles-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

type ReportService interface {
	BuildOrderReport(userID uint) ([]byte, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
}

func NewReportService(orderRepo repository.OrderRepository) ReportService {
	return &reportService{orderRepo: orderRepo}
}

// BuildOrderReport renders the user's order history as an XLSX workbook,
// one row per order line with the snapshotted product data.
func (s *reportService) BuildOrderReport(userID uint) ([]byte, error) {
	logger.Info("Building order report", map[string]interface{}{
		"user_id": userID,
	})

	orders, err := s.orderRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch orders for report", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Orders"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{
		"Order ID", "Placed At", "Status", "Product", "Unit Price",
		"Quantity", "Line Total", "Order Total", "Ship To", "Payment",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	rowNum := 2
	for _, order := range orders {
		shipTo := fmt.Sprintf("%s, %s, %s %s, %s",
			order.ShippingAddress, order.ShippingCity, order.ShippingState,
			order.ShippingZip, order.ShippingCountry)

		for _, item := range order.Items {
			values := []interface{}{
				order.ID,
				order.CreatedAt.Format("2006-01-02 15:04:05"),
				string(order.Status),
				item.ProductName,
				item.ProductPrice,
				item.Quantity,
				item.ProductPrice * float64(item.Quantity),
				order.Total,
				shipTo,
				order.PaymentMethod,
			}
			for i, v := range values {
				cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
				if err != nil {
					return nil, fmt.Errorf("failed to build cell: %w", err)
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, fmt.Errorf("failed to write row: %w", err)
				}
			}
			rowNum++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error("Failed to serialize order report", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Order report built", map[string]interface{}{
		"user_id": userID,
		"orders":  len(orders),
		"rows":    rowNum - 2,
	})
	return buf.Bytes(), nil
}
