package domain

// Inputs carry every caller-supplied field of a new entity. IDs and
// timestamps are assigned by the store.

type UserInput struct {
	Name  string
	Email string
	Role  UserRole
}

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	ImageURL    string
}

type OrderInput struct {
	UserID          string
	UserName        string
	UserEmail       string
	Products        []OrderItem
	Total           float64
	Status          OrderStatus
	ShippingAddress Address
}

// Patches carry partial updates: nil fields are left untouched.

type UserPatch struct {
	Name  *string
	Email *string
	Role  *UserRole
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Stock       *int
	ImageURL    *string
}

type OrderPatch struct {
	UserID          *string
	UserName        *string
	UserEmail       *string
	Products        *[]OrderItem
	Total           *float64
	Status          *OrderStatus
	ShippingAddress *Address
}

// Apply merges the set fields of p over u.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}

// Apply merges the set fields of p over prod.
func (p ProductPatch) Apply(prod Product) Product {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if p.ImageURL != nil {
		prod.ImageURL = *p.ImageURL
	}
	return prod
}

// Apply merges the set fields of p over o. A replaced item list is copied.
func (p OrderPatch) Apply(o Order) Order {
	if p.UserID != nil {
		o.UserID = *p.UserID
	}
	if p.UserName != nil {
		o.UserName = *p.UserName
	}
	if p.UserEmail != nil {
		o.UserEmail = *p.UserEmail
	}
	if p.Products != nil {
		o.Products = append([]OrderItem(nil), (*p.Products)...)
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.ShippingAddress != nil {
		o.ShippingAddress = *p.ShippingAddress
	}
	return o
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[T any](v T) *T {
	return &v
}
