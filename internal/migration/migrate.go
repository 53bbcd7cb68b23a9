package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
)

// Run migrates the schema and seeds the default sections and categories on an
// empty database.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.MenuSection{},
		&domain.Category{},
		&domain.Moderator{},
		&domain.CategoryFollow{},
		&domain.Post{},
		&domain.Vote{},
		&domain.SavedPost{},
		&domain.AppSetting{},
		&domain.Announcement{},
		&domain.MagazineIssue{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	if err := seedSections(db); err != nil {
		return err
	}
	return seedCategories(db)
}

func seedSections(db *gorm.DB) error {
	var count int64
	db.Model(&domain.MenuSection{}).Count(&count)
	if count > 0 {
		return nil
	}

	sections := []domain.MenuSection{
		{ID: "eat", Name: "Eat", SortOrder: 0},
		{ID: "travel", Name: "Travel", SortOrder: 1},
		{ID: "community", Name: "Community", SortOrder: 2},
	}
	if err := db.Create(&sections).Error; err != nil {
		return fmt.Errorf("seed sections: %w", err)
	}
	pkglogger.GetLogger().Info().Int("count", len(sections)).Msg("seeded menu sections")
	return nil
}

func seedCategories(db *gorm.DB) error {
	var count int64
	db.Model(&domain.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	strPtr := func(s string) *string { return &s }

	categories := []domain.Category{
		// Eat
		{ID: "street-eats", Slug: "street-eats", Name: "Street Eats", MenuSection: "eat", SortOrder: 0, DefaultTab: domain.TabRecent},
		{ID: "hidden-kitchens", Slug: "hidden-kitchens", Name: "Hidden Kitchens", MenuSection: "eat", SortOrder: 1, DefaultTab: domain.TabRecent},
		{ID: "home-cooking", Slug: "home-cooking", Name: "Home Cooking", MenuSection: "eat", SortOrder: 2, ParentID: strPtr("street-eats"), DefaultTab: domain.TabRecent},
		// Photo board: a post may be just a picture, no body text required
		{ID: "delicious-food", Slug: "delicious-food", Name: "Delicious Food", MenuSection: "eat", SortOrder: 3, DefaultTab: domain.TabTop, ImageOnly: true},

		// Travel
		{ID: "city-guides", Slug: "city-guides", Name: "City Guides", MenuSection: "travel", SortOrder: 0, DefaultTab: domain.TabRecent},
		{ID: "road-trips", Slug: "road-trips", Name: "Road Trips", MenuSection: "travel", SortOrder: 1, DefaultTab: domain.TabRecent},
		// Editorial columns: only moderators of the category may post
		{ID: "editors-desk", Slug: "editors-desk", Name: "From the Editor's Desk", MenuSection: "travel", SortOrder: 2, DefaultTab: domain.TabRecent, AuthorOnly: true},

		// Community
		{ID: "open-table", Slug: "open-table", Name: "Open Table", MenuSection: "community", SortOrder: 0, DefaultTab: domain.TabRecent},
		{ID: "tips-tricks", Slug: "tips-tricks", Name: "Tips & Tricks", MenuSection: "community", SortOrder: 1, DefaultTab: domain.TabTop},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	pkglogger.GetLogger().Info().Int("count", len(categories)).Msg("seeded categories")
	return nil
}
