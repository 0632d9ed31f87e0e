package models

// AllModels lists every table managed by the service, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Customer{},
		&Sandwich{},
		&Resource{},
		&Promotion{},
		&Order{},
		&OrderDetail{},
		&Recipe{},
		&Review{},
		&Payment{},
	}
}
