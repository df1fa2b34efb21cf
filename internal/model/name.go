package model

import "strings"

// NameKey приводит имя к форме для сравнения на совпадение: без пробелов по краям
// и в нижнем регистре по правилам Unicode. Хранится в столбце name_key.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
