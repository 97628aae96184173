package store

import (
	"slices"
	"strconv"

	"shopdata/pkg/domain"
)

func userID(u domain.User) string       { return u.ID }
func productID(p domain.Product) string { return p.ID }
func orderID(o domain.Order) string     { return o.ID }

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

// removeByID drops the item with id, reporting whether it existed.
func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	i := indexByID(items, id, idOf)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

func maxNumericID[T any](items []T, idOf func(T) string) int {
	maxID := 0
	for _, item := range items {
		if n, err := strconv.Atoi(idOf(item)); err == nil && n > maxID {
			maxID = n
		}
	}
	return maxID
}

func cloneOrders(orders []domain.Order) []domain.Order {
	res := make([]domain.Order, len(orders))
	for i, o := range orders {
		res[i] = o.Clone()
	}
	return res
}
