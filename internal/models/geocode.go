package models

// Coordinates - географические координаты точки
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeResult - результат цепочки "извлечение локации -> геокодирование".
// Кешируется на двух независимых уровнях: извлеченное имя по исходному тексту
// и координаты по имени места.
type GeocodeResult struct {
	LocationName string      `json:"locationName"`
	Coordinates  Coordinates `json:"coordinates"`
}
