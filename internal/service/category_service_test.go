package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// MockSectionStore is a mock implementation of SectionStore
type MockSectionStore struct {
	mock.Mock
}

func (m *MockSectionStore) ListAll() ([]*domain.MenuSection, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MenuSection), args.Error(1)
}

func (m *MockSectionStore) CreateBatch(sections []*domain.MenuSection) error {
	args := m.Called(sections)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestCategoryService_Tree_NestsChildrenAndSurfacesOrphans(t *testing.T) {
	categories := new(MockCategoryStore)
	svc := NewCategoryService(categories, new(MockSectionStore))

	categories.On("ListAll").Return([]*domain.Category{
		{ID: "eat", Name: "Eat"},
		{ID: "street-eats", Name: "Street Eats", ParentID: strPtr("eat")},
		{ID: "lost-child", Name: "Lost Child", ParentID: strPtr("vanished-parent")},
	}, nil)

	tree := svc.Tree(context.Background())

	assert.Len(t, tree, 2)
	assert.Equal(t, "eat", tree[0].ID)
	assert.Len(t, tree[0].Children, 1)
	assert.Equal(t, "street-eats", tree[0].Children[0].ID)
	// the orphan survives as a top-level node instead of disappearing
	assert.Equal(t, "lost-child", tree[1].ID)
}

func TestCategoryService_Tree_FallbackWhenEmpty(t *testing.T) {
	categories := new(MockCategoryStore)
	svc := NewCategoryService(categories, new(MockSectionStore))

	categories.On("ListAll").Return([]*domain.Category{}, nil)

	tree := svc.Tree(context.Background())

	assert.NotEmpty(t, tree)
	assert.Equal(t, fallbackTree, tree)
}

func TestCategoryService_Tree_FallbackOnError(t *testing.T) {
	categories := new(MockCategoryStore)
	svc := NewCategoryService(categories, new(MockSectionStore))

	categories.On("ListAll").Return(nil, assert.AnError)

	tree := svc.Tree(context.Background())

	assert.Equal(t, fallbackTree, tree)
}

func TestCategoryService_Sections_SeedsDefaultsWhenEmpty(t *testing.T) {
	sections := new(MockSectionStore)
	svc := NewCategoryService(new(MockCategoryStore), sections)

	sections.On("ListAll").Return([]*domain.MenuSection{}, nil).Once()
	sections.On("CreateBatch", defaultSections).Return(nil)
	sections.On("ListAll").Return(defaultSections, nil).Once()

	got, err := svc.Sections(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, defaultSections, got)
	sections.AssertExpectations(t)
}

func TestCategoryService_Sections_NoSeedWhenPopulated(t *testing.T) {
	sections := new(MockSectionStore)
	svc := NewCategoryService(new(MockCategoryStore), sections)

	existing := []*domain.MenuSection{{ID: "eat", Name: "Eat"}}
	sections.On("ListAll").Return(existing, nil)

	got, err := svc.Sections(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, existing, got)
	sections.AssertNotCalled(t, "CreateBatch", mock.Anything)
}
