package cartsvc_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	memorystate "github.com/corray333/backend-labs/cafe/internal/dal/repositories/state/memory"
	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/corray333/backend-labs/cafe/internal/service/models/notice"
	"github.com/corray333/backend-labs/cafe/internal/service/services/cartsvc"
	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type featureMenu map[string]menu.Item

func (m featureMenu) Lookup(key string) (menu.Item, bool) {
	item, ok := m[key]
	return item, ok
}

func (m featureMenu) Recommend(string) (menu.Item, bool) {
	return menu.Item{}, false
}

type cartFeature struct {
	menu    featureMenu
	svc     *cartsvc.CartService
	session string
	view    cartsvc.View
	notice  *notice.Notice
}

func (f *cartFeature) reset() {
	f.menu = featureMenu{}
	f.svc = nil
	f.session = ""
	f.view = cartsvc.View{}
	f.notice = nil
}

func (f *cartFeature) theMenuHasItem(id, name, variant string, price, tax, packaging int) error {
	f.menu[id] = menu.Item{
		ID:              id,
		Name:            name,
		Variations:      map[string]decimal.Decimal{variant: decimal.NewFromInt(int64(price))},
		TaxPercentage:   decimal.NewFromInt(int64(tax)),
		PackagingCharge: decimal.NewFromInt(int64(packaging)),
	}

	return nil
}

func (f *cartFeature) anEmptySession(id string) error {
	f.session = id
	n := 0
	f.svc = cartsvc.MustNewCartService(
		cartsvc.WithStateStore(memorystate.NewStore()),
		cartsvc.WithMenu(f.menu),
		cartsvc.WithClock(time.Now, func() string {
			n++
			return fmt.Sprintf("order-%d", n)
		}),
	)

	return nil
}

func (f *cartFeature) iAdd(ctx context.Context, quantity int, itemID, variant string) error {
	view, err := f.svc.AddToCart(ctx, f.session, itemID, quantity, variant)
	if err != nil {
		return err
	}
	f.view = view

	return nil
}

func (f *cartFeature) iSetTheQuantity(ctx context.Context, itemID string, quantity int) error {
	view, err := f.svc.UpdateQuantity(ctx, f.session, itemID, quantity)
	if err != nil {
		return err
	}
	f.view = view

	return nil
}

func (f *cartFeature) iCheckOut(ctx context.Context) error {
	res, err := f.svc.Checkout(ctx, f.session)
	if err != nil {
		return err
	}
	f.notice = res.Notice

	view, err := f.svc.Cart(ctx, f.session)
	if err != nil {
		return err
	}
	f.view = view

	return nil
}

func (f *cartFeature) theCartHasLines(want int) error {
	if got := len(f.view.Cart); got != want {
		return fmt.Errorf("expected %d lines, got %d", want, got)
	}

	return nil
}

func (f *cartFeature) lineHasQuantity(n, want int) error {
	if n < 1 || n > len(f.view.Cart) {
		return fmt.Errorf("no line %d in a cart of %d", n, len(f.view.Cart))
	}
	if got := f.view.Cart[n-1].Quantity; got != want {
		return fmt.Errorf("expected quantity %d, got %d", want, got)
	}

	return nil
}

func (f *cartFeature) theSummaryIs(subtotal, tax, packaging, total, points int) error {
	s := f.view.Summary
	checks := []struct {
		name string
		got  decimal.Decimal
		want int
	}{
		{"subtotal", s.Subtotal, subtotal},
		{"tax", s.Tax, tax},
		{"packaging", s.Packaging, packaging},
		{"total", s.Total, total},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.NewFromInt(int64(c.want))) {
			return fmt.Errorf("expected %s %d, got %s", c.name, c.want, c.got)
		}
	}
	if s.Points != int64(points) {
		return fmt.Errorf("expected %d points, got %d", points, s.Points)
	}

	return nil
}

func (f *cartFeature) iSeeTheNotice(title string) error {
	if f.notice == nil {
		return fmt.Errorf("expected notice %q, got none", title)
	}
	if f.notice.Title != title {
		return fmt.Errorf("expected notice %q, got %q", title, f.notice.Title)
	}

	return nil
}

func (f *cartFeature) theOrderHistoryHas(ctx context.Context, want int) error {
	orders, err := f.svc.Orders(ctx, f.session)
	if err != nil {
		return err
	}
	if len(orders) != want {
		return fmt.Errorf("expected %d orders, got %d", want, len(orders))
	}

	return nil
}

func (f *cartFeature) thePointsBalanceIs(ctx context.Context, want int) error {
	points, err := f.svc.Points(ctx, f.session)
	if err != nil {
		return err
	}
	if points != int64(want) {
		return fmt.Errorf("expected %d points, got %d", want, points)
	}

	return nil
}

func InitializeCartScenario(ctx *godog.ScenarioContext) {
	f := &cartFeature{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		f.reset()
		return ctx, nil
	})

	ctx.Step(`^the menu has item "([^"]*)" named "([^"]*)" with variant "([^"]*)" at (\d+) with (\d+)% tax and (\d+) packaging$`, f.theMenuHasItem)
	ctx.Step(`^an empty session "([^"]*)"$`, f.anEmptySession)

	ctx.Step(`^I add (-?\d+) of item "([^"]*)" variant "([^"]*)"$`, f.iAdd)
	ctx.Step(`^I set the quantity of item "([^"]*)" to (-?\d+)$`, f.iSetTheQuantity)
	ctx.Step(`^I check out$`, f.iCheckOut)

	ctx.Step(`^the cart has (\d+) lines?$`, f.theCartHasLines)
	ctx.Step(`^line (\d+) has quantity (\d+)$`, f.lineHasQuantity)
	ctx.Step(`^the summary is subtotal (\d+), tax (\d+), packaging (\d+), total (\d+) and (\d+) points$`, f.theSummaryIs)
	ctx.Step(`^I see the notice "([^"]*)"$`, f.iSeeTheNotice)
	ctx.Step(`^the order history has (\d+) orders?$`, f.theOrderHistoryHas)
	ctx.Step(`^the points balance is (\d+)$`, f.thePointsBalanceIs)
}

func TestCartFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeCartScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../../features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
