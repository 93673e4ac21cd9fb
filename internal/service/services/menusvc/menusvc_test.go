package menusvc

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/corray333/backend-labs/cafe/internal/dal/cafeapi"
	mock_icafeapi "github.com/corray333/backend-labs/cafe/internal/dal/interfaces/icafeapi/mock"
	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MenuServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	api  *mock_icafeapi.MockIMenuAPI
	svc  *MenuService
	ctx  context.Context
}

func TestMenuService(t *testing.T) {
	suite.Run(t, new(MenuServiceTestSuite))
}

func sampleMenu() []menu.Item {
	price := map[string]decimal.Decimal{"Regular": decimal.NewFromInt(100)}
	return []menu.Item{
		{ID: "1", SKU: "LAT", Name: "Latte", Category: "coffee", Description: "Milky espresso", Variations: price},
		{ID: "2", SKU: "MOC", Name: "Mocha", Category: menu.CategorySpecials, Description: "Chocolate coffee", Variations: price},
		{ID: "3", SKU: "CRO", Name: "Croissant", Category: "bakery", Variations: price},
		{ID: "5", SKU: "COO", Name: "Cookie", Category: "bakery", Description: "Chocolate chip", Variations: price},
	}
}

func (s *MenuServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mock_icafeapi.NewMockIMenuAPI(s.ctrl)
	s.svc = MustNewMenuService(
		WithMenuAPI(s.api),
		WithRecommendations(map[string][]string{"1": {"404", "5"}}),
	)
	s.ctx = context.Background()

	s.api.EXPECT().Menu(gomock.Any()).Return(sampleMenu(), nil)
	s.Require().NoError(s.svc.Refresh(s.ctx))
}

func (s *MenuServiceTestSuite) TestLookupByIDAndSKU() {
	byID, ok := s.svc.Lookup("1")
	s.Require().True(ok)
	bySKU, ok := s.svc.Lookup("LAT")
	s.Require().True(ok)
	s.Equal(byID.Name, bySKU.Name)

	_, ok = s.svc.Lookup("nope")
	s.False(ok)
}

func (s *MenuServiceTestSuite) TestSearchSplitsSpecials() {
	res := s.svc.Search("choc", CategoryAll)
	s.Require().Len(res.Specials, 1)
	s.Equal("Mocha", res.Specials[0].Name)
	s.Require().Len(res.Regular, 1)
	s.Equal("Cookie", res.Regular[0].Name)

	res = s.svc.Search("", "Bakery")
	s.Empty(res.Specials)
	s.Len(res.Regular, 2)
}

func (s *MenuServiceTestSuite) TestFailedRefreshKeepsMenu() {
	s.api.EXPECT().Menu(gomock.Any()).Return(nil, errors.New("timeout"))

	s.Error(s.svc.Refresh(s.ctx))
	s.Len(s.svc.Items(), 4)
}

func (s *MenuServiceTestSuite) TestRecommendSkipsUnknownItems() {
	item, ok := s.svc.Recommend("1")
	s.Require().True(ok)
	s.Equal("Cookie", item.Name)

	_, ok = s.svc.Recommend("3")
	s.False(ok)
}

func (s *MenuServiceTestSuite) TestCategories() {
	s.Equal([]string{"bakery", "coffee", menu.CategorySpecials}, s.svc.Categories())
}

func (s *MenuServiceTestSuite) TestAddValidatesAndRefreshes() {
	s.Error(s.svc.Add(s.ctx, menu.NewItem{Name: "No variations", SubCategory: "x"}))

	item := menu.NewItem{
		Name:        "Cortado",
		SubCategory: "coffee",
		Variations:  map[string]decimal.Decimal{"Regular": decimal.NewFromInt(90)},
	}
	updated := append(sampleMenu(), menu.Item{ID: "9", SKU: "COR", Name: "Cortado"})

	gomock.InOrder(
		s.api.EXPECT().AddMenuItem(gomock.Any(), item).Return(nil),
		s.api.EXPECT().Menu(gomock.Any()).Return(updated, nil),
	)

	s.Require().NoError(s.svc.Add(s.ctx, item))
	_, ok := s.svc.Lookup("COR")
	s.True(ok)
}

func (s *MenuServiceTestSuite) TestEditRequiresChanges() {
	s.ErrorIs(s.svc.Edit(s.ctx, menu.Edit{SKU: "LAT"}), ErrNothingToUpdate)
	s.ErrorIs(s.svc.Edit(s.ctx, menu.Edit{}), ErrItemNotFound)
}

func (s *MenuServiceTestSuite) TestDeleteMapsNotFound() {
	s.api.EXPECT().DeleteMenuItem(gomock.Any(), "ZZZ").
		Return(&cafeapi.StatusError{Code: http.StatusNotFound, Detail: "not found"})

	s.ErrorIs(s.svc.Delete(s.ctx, "ZZZ"), ErrItemNotFound)
}

func (s *MenuServiceTestSuite) TestOfferItem() {
	s.api.EXPECT().OfferItem(gomock.Any()).Return(menu.Item{SKU: "CRO", TotalOrdered: 0}, nil)

	item, err := s.svc.OfferItem(s.ctx)
	s.Require().NoError(err)
	s.Equal("CRO", item.SKU)
}
