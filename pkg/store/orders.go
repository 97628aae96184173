package store

import (
	"strconv"

	"shopdata/pkg/domain"
)

// Orders returns a deep copy of all orders in insertion order.
func (s *DataStore) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.orders)
}

// OrderByID looks up an order by ID.
func (s *DataStore) OrderByID(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.orders, id, orderID); i >= 0 {
		return s.orders[i].Clone(), true
	}
	return domain.Order{}, false
}

// CreateOrder assigns the next order id and timestamps, then persists. The
// total is stored as given.
func (s *DataStore) CreateOrder(in domain.OrderInput) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	o := domain.Order{
		ID:              strconv.Itoa(s.counters.NextOrderID),
		UserID:          in.UserID,
		UserName:        in.UserName,
		UserEmail:       in.UserEmail,
		Products:        in.Products,
		Total:           in.Total,
		Status:          in.Status,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}.Clone()
	s.orders = append(s.orders, o)
	s.counters.NextOrderID++
	s.persistLocked()
	return o.Clone()
}

// UpdateOrder merges patch over the order with id.
func (s *DataStore) UpdateOrder(id string, patch domain.OrderPatch) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.orders, id, orderID)
	if i < 0 {
		return domain.Order{}, false
	}
	o := patch.Apply(s.orders[i])
	o.UpdatedAt = s.now()
	s.orders[i] = o
	s.persistLocked()
	return o.Clone(), true
}

// DeleteOrder removes the order with id.
func (s *DataStore) DeleteOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, ok := removeByID(s.orders, id, orderID)
	if !ok {
		return false
	}
	s.orders = orders
	s.persistLocked()
	return true
}
