package models

// ListFilter представляет параметры постраничного вывода и поиска,
// которые передаются из HTTP-слоя в бизнес-логику и хранилище.
// Page нумеруется с единицы; Q — подстрока для регистронезависимого
// поиска по имени (пустая строка означает отсутствие поиска).
type ListFilter struct {
	Q       string // Поисковая подстрока
	Page    int    // Номер страницы, начиная с 1
	PerPage int    // Размер страницы
}

// Normalize приводит фильтр к допустимым значениям: страница меньше первой
// становится первой, размер страницы зажимается в диапазон [min, max].
// Нулевой PerPage получает значение def.
func (f ListFilter) Normalize(min, max, def int) ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage == 0 {
		f.PerPage = def
	}
	if f.PerPage < min {
		f.PerPage = min
	}
	if f.PerPage > max {
		f.PerPage = max
	}
	return f
}

// Offset возвращает смещение для SQL-запроса, соответствующее странице.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}
