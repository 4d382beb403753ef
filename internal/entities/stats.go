package entities

// Statistics - агрегаты по всем заказам владельца.
// Считаются заново при каждом запросе, инкрементального пересчёта нет.
type Statistics struct {
	OrderCount int
	TotalCost  float64
	// AverageCost равен нулю при пустой коллекции.
	AverageCost float64
	// StatusCounts не содержит статусов с нулём заказов.
	StatusCounts map[Status]int
}
