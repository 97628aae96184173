package store

import (
	"time"

	"shopdata/pkg/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// seedLocked replaces all collections with the sample catalogue.
func (s *DataStore) seedLocked() {
	s.users = []domain.User{
		{ID: "1", Name: "Admin User", Email: "admin@shop.com", Role: domain.RoleAdmin, CreatedAt: day(2024, 1, 1), UpdatedAt: day(2024, 1, 1)},
		{ID: "2", Name: "John Doe", Email: "john@example.com", Role: domain.RoleCustomer, CreatedAt: day(2024, 1, 15), UpdatedAt: day(2024, 1, 15)},
		{ID: "3", Name: "Jane Smith", Email: "jane@example.com", Role: domain.RoleCustomer, CreatedAt: day(2024, 2, 1), UpdatedAt: day(2024, 2, 1)},
	}

	s.products = []domain.Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation",
			Price:       199.99,
			Category:    "Electronics",
			Stock:       50,
			ImageURL:    "/placeholder-headphones.jpg",
			CreatedAt:   day(2024, 1, 1),
			UpdatedAt:   day(2024, 1, 1),
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Description: "Fitness tracking smart watch with heart rate monitor",
			Price:       299.99,
			Category:    "Electronics",
			Stock:       25,
			ImageURL:    "/placeholder-watch.jpg",
			CreatedAt:   day(2024, 1, 5),
			UpdatedAt:   day(2024, 1, 5),
		},
		{
			ID:          "3",
			Name:        "Coffee Maker",
			Description: "Automatic coffee maker with programmable timer",
			Price:       89.99,
			Category:    "Appliances",
			Stock:       15,
			ImageURL:    "/placeholder-coffee.jpg",
			CreatedAt:   day(2024, 1, 10),
			UpdatedAt:   day(2024, 1, 10),
		},
	}

	johnItems := []domain.OrderItem{
		{ProductID: "1", ProductName: "Wireless Headphones", Quantity: 1, Price: 199.99},
	}
	janeItems := []domain.OrderItem{
		{ProductID: "2", ProductName: "Smart Watch", Quantity: 1, Price: 299.99},
		{ProductID: "3", ProductName: "Coffee Maker", Quantity: 1, Price: 89.99},
	}
	s.orders = []domain.Order{
		{
			ID:        "1",
			UserID:    "2",
			UserName:  "John Doe",
			UserEmail: "john@example.com",
			Products:  johnItems,
			Total:     domain.OrderTotal(johnItems),
			Status:    domain.OrderDelivered,
			ShippingAddress: domain.Address{
				Street:  "123 Main St",
				City:    "New York",
				State:   "NY",
				ZipCode: "10001",
				Country: "USA",
			},
			CreatedAt: day(2024, 1, 20),
			UpdatedAt: day(2024, 1, 25),
		},
		{
			ID:        "2",
			UserID:    "3",
			UserName:  "Jane Smith",
			UserEmail: "jane@example.com",
			Products:  janeItems,
			Total:     domain.OrderTotal(janeItems),
			Status:    domain.OrderProcessing,
			ShippingAddress: domain.Address{
				Street:  "456 Oak Ave",
				City:    "Los Angeles",
				State:   "CA",
				ZipCode: "90210",
				Country: "USA",
			},
			CreatedAt: day(2024, 2, 5),
			UpdatedAt: day(2024, 2, 5),
		},
	}

	s.counters = Counters{NextUserID: 4, NextProductID: 4, NextOrderID: 3}
}
