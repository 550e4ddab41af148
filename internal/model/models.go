package model

// All lists the models managed by AutoMigrate, in dependency order.
func All() []interface{} {
	return []interface{}{
		&Evaluation{},
		&Criterion{},
		&Rating{},
		&RatingItem{},
		&BookCategory{},
		&Book{},
		&Coupon{},
		&Setting{},
		&SettingVersion{},
		&Purchase{},
	}
}
