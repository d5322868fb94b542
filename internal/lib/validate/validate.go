// Package validate содержит проверки формата текстовых полей каталога:
// имён категорий и рецептов, а также их описаний. Проверки выполняются
// после нормализации (trim + нижний регистр) в бизнес-логике.
package validate

import "regexp"

var (
	namePattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z ]*$`)
	detailsPattern = regexp.MustCompile(`^[a-zA-Z0-9,'.\- ]+$`)
)

// Name сообщает, состоит ли имя категории или рецепта только из букв
// и пробелов и начинается ли оно с буквы.
func Name(name string) bool {
	return namePattern.MatchString(name)
}

// Details сообщает, допустим ли текст описания или списка ингредиентов:
// буквы, цифры, запятые, апострофы, точки, дефисы и пробелы.
func Details(details string) bool {
	return detailsPattern.MatchString(details)
}
