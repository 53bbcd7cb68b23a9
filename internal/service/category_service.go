package service

import (
	"context"

	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// SectionStore is the slice of the section repository this service needs
type SectionStore interface {
	ListAll() ([]*domain.MenuSection, error)
	CreateBatch(sections []*domain.MenuSection) error
}

// CategoryService defines the interface for the public category surface
type CategoryService interface {
	Tree(ctx context.Context) []domain.CategoryTreeNode
	Sections(ctx context.Context) ([]*domain.MenuSection, error)
}

type categoryService struct {
	categories CategoryStore
	sections   SectionStore
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories CategoryStore, sections SectionStore) CategoryService {
	return &categoryService{categories: categories, sections: sections}
}

// defaultSections are seeded on first read of an empty menu_sections table
var defaultSections = []*domain.MenuSection{
	{ID: "eat", Name: "Eat", SortOrder: 0},
	{ID: "travel", Name: "Travel", SortOrder: 1},
	{ID: "community", Name: "Community", SortOrder: 2},
}

// fallbackTree is served when the categories table is empty, so the sidebar
// renders something before the site is seeded.
var fallbackTree = []domain.CategoryTreeNode{
	{ID: "street-eats", Slug: "street-eats", Name: "Street Eats", MenuSection: "eat"},
	{ID: "hidden-kitchens", Slug: "hidden-kitchens", Name: "Hidden Kitchens", MenuSection: "eat"},
	{ID: "city-guides", Slug: "city-guides", Name: "City Guides", MenuSection: "travel"},
	{ID: "open-table", Slug: "open-table", Name: "Open Table", MenuSection: "community"},
}

// Tree builds the two-level sidebar tree. Parents keep their stored order;
// children with a dangling parent id are surfaced as top-level nodes rather
// than dropped. Store errors collapse to the static fallback.
func (s *categoryService) Tree(ctx context.Context) []domain.CategoryTreeNode {
	categories, err := s.categories.ListAll()
	if err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("category tree: load failed")
		return fallbackTree
	}
	if len(categories) == 0 {
		return fallbackTree
	}

	byID := make(map[string]*domain.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	childrenOf := make(map[string][]domain.CategoryTreeNode)
	var parents []*domain.Category
	var orphans []*domain.Category
	for _, category := range categories {
		if category.ParentID == nil || *category.ParentID == "" {
			parents = append(parents, category)
			continue
		}
		if _, ok := byID[*category.ParentID]; !ok {
			orphans = append(orphans, category)
			continue
		}
		childrenOf[*category.ParentID] = append(childrenOf[*category.ParentID], toTreeNode(category))
	}

	tree := make([]domain.CategoryTreeNode, 0, len(parents)+len(orphans))
	for _, parent := range parents {
		node := toTreeNode(parent)
		node.Children = childrenOf[parent.ID]
		tree = append(tree, node)
	}
	for _, orphan := range orphans {
		tree = append(tree, toTreeNode(orphan))
	}
	return tree
}

func toTreeNode(category *domain.Category) domain.CategoryTreeNode {
	return domain.CategoryTreeNode{
		ID:          category.ID,
		Slug:        category.Slug,
		Name:        category.Name,
		MenuSection: category.MenuSection,
	}
}

// Sections lists the menu sections, seeding the defaults on an empty table
func (s *categoryService) Sections(ctx context.Context) ([]*domain.MenuSection, error) {
	sections, err := s.sections.ListAll()
	if err != nil {
		return nil, err
	}
	if len(sections) > 0 {
		return sections, nil
	}

	if err := s.sections.CreateBatch(defaultSections); err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("menu sections: seeding defaults failed")
		return nil, err
	}
	return s.sections.ListAll()
}
