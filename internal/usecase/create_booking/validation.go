package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// validateRequest проверяет обязательные поля записи и границы полезной нагрузки
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidAppointment)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidAppointment)
	}

	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidAppointment)
	}

	if strings.TrimSpace(req.SlotLabel) == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidAppointment)
	}

	if len(req.Items) > domain.MaxItemsCount {
		return fmt.Errorf("%w: too many items, max %d", ErrInvalidAppointment, domain.MaxItemsCount)
	}

	for i, item := range req.Items {
		if strings.TrimSpace(item.ServiceID) == "" {
			return fmt.Errorf("%w: items[%d].serviceId is required", ErrInvalidAppointment, i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: items[%d].quantity must be positive", ErrInvalidAppointment, i)
		}
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long, max %d characters", ErrInvalidAppointment, domain.MaxNotesLength)
	}

	return nil
}

// priceItems сопоставляет позиции с каталогом
func priceItems(catalog Catalog, items []ItemRequest) ([]domain.BookingItem, error) {
	priced := make([]domain.BookingItem, 0, len(items))
	for _, item := range items {
		service, err := catalog.GetByID(item.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("%w: serviceId=%s", ErrUnknownService, item.ServiceID)
		}

		price, ok := service.PriceFor(item.Variant)
		if !ok {
			return nil, fmt.Errorf("%w: serviceId=%s has no variant %q", ErrUnknownService, item.ServiceID, item.Variant)
		}

		priced = append(priced, domain.BookingItem{
			ServiceID: service.ID,
			Title:     service.Title,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
	}
	return priced, nil
}
