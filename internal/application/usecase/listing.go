package usecase

import (
	"sort"
	"strconv"
	"strings"
)

// matchesFilter evalúa el filtro de listados: substring case-insensitive
// contra cualquiera de los campos. Filtro vacío acepta todo.
func matchesFilter(filter string, fields ...string) bool {
	t := strings.ToLower(strings.TrimSpace(filter))
	if t == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), t) {
			return true
		}
	}
	return false
}

// compareValues compara dos valores de una columna: numéricamente si ambos
// lados parsean como número, si no como strings case-insensitive.
func compareValues(a, b string) int {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	default:
		return 0
	}
}

// sortList ordena en forma estable por la columna extraída con value.
// dir "desc" invierte la comparación, no la secuencia final: los empates
// conservan el orden relativo original en ambas direcciones.
func sortList[T any](list []T, dir string, value func(T) string) {
	desc := dir == "desc"
	sort.SliceStable(list, func(i, j int) bool {
		c := compareValues(value(list[i]), value(list[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})
}
