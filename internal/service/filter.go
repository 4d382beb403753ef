package service

import (
	"strings"

	"RepairService/internal/entities"
)

// StatusFilterAll отключает фильтрацию по статусу.
const StatusFilterAll = "all"

type ListQuery struct {
	Search       string
	StatusFilter string
}

type OrderList struct {
	Active    []entities.RepairOrder
	Collected []entities.RepairOrder
}

// FilterOrders применяет поисковую строку и фильтр по статусу.
// Порядок входной коллекции сохраняется, сортировки здесь нет.
func FilterOrders(orders []entities.RepairOrder, search, statusFilter string) []entities.RepairOrder {
	search = strings.ToLower(strings.TrimSpace(search))

	result := make([]entities.RepairOrder, 0, len(orders))
	for _, order := range orders {
		if !matchesSearch(order, search) {
			continue
		}
		if statusFilter != "" && statusFilter != StatusFilterAll && order.Status != entities.Status(statusFilter) {
			continue
		}
		result = append(result, order)
	}
	return result
}

// matchesSearch - подстрочный поиск без учёта регистра по имени клиента,
// телефону, бренду, модели и IMEI. Пустой запрос совпадает со всем.
func matchesSearch(order entities.RepairOrder, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{
		order.CustomerName,
		order.PhoneNumber,
		order.DeviceBrand,
		order.DeviceModel,
		order.IMEI,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// SplitCollected делит заказы на активные и выданные клиенту.
func SplitCollected(orders []entities.RepairOrder) (active, collected []entities.RepairOrder) {
	active = make([]entities.RepairOrder, 0, len(orders))
	collected = make([]entities.RepairOrder, 0)
	for _, order := range orders {
		if order.Status == entities.StatusCollected {
			collected = append(collected, order)
		} else {
			active = append(active, order)
		}
	}
	return active, collected
}

// ComputeStatistics считает агрегаты за один проход.
// Статусы без заказов в гистограмму не попадают.
func ComputeStatistics(orders []entities.RepairOrder) entities.Statistics {
	stats := entities.Statistics{
		OrderCount:   len(orders),
		StatusCounts: make(map[entities.Status]int),
	}

	for _, order := range orders {
		stats.TotalCost += order.EstimatedCost
		stats.StatusCounts[order.Status]++
	}

	if stats.OrderCount > 0 {
		stats.AverageCost = stats.TotalCost / float64(stats.OrderCount)
	}
	return stats
}
