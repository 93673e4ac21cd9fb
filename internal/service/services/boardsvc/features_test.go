package boardsvc_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/corray333/backend-labs/cafe/internal/service/models/group"
	"github.com/corray333/backend-labs/cafe/internal/service/models/kitchen"
	"github.com/corray333/backend-labs/cafe/internal/service/models/status"
	"github.com/corray333/backend-labs/cafe/internal/service/services/boardsvc"
	"github.com/cucumber/godog"
)

type stubKitchen struct {
	orders []kitchen.Order
	groups []group.Group
}

func (k *stubKitchen) KitchenOrders(context.Context) ([]kitchen.Order, error) {
	return k.orders, nil
}

func (k *stubKitchen) Groups(context.Context) ([]group.Group, error) {
	return k.groups, nil
}

type boardFeature struct {
	api *stubKitchen
	svc *boardsvc.BoardService
}

func (f *boardFeature) reset() {
	f.api = &stubKitchen{}
	f.svc = nil
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func parseNames(raw string) []string {
	names := strings.Split(raw, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	return names
}

func (f *boardFeature) orderWithItems(id int64, table *godog.Table) error {
	o := kitchen.Order{OrderID: id, CreatedAt: time.Now()}
	for _, row := range table.Rows[1:] {
		st, err := status.Parse(row.Cells[1].Value)
		if err != nil {
			return err
		}
		o.Items = append(o.Items, kitchen.Item{Name: row.Cells[0].Value, Quantity: 1, Status: st})
	}
	f.api.orders = append(f.api.orders, o)

	return nil
}

func (f *boardFeature) groupCovers(id int64, orders, items string) error {
	ids, err := parseIDs(orders)
	if err != nil {
		return err
	}
	f.api.groups = append(f.api.groups, group.Group{GroupID: id, OrderIDs: ids, SKUNames: parseNames(items)})

	return nil
}

func (f *boardFeature) theBoardIsLoaded(ctx context.Context) error {
	f.svc = boardsvc.MustNewBoardService(boardsvc.WithKitchenAPI(f.api))

	return f.svc.Refresh(ctx)
}

func (f *boardFeature) theKitchenCompletes(ctx context.Context, id int64, orders, items string) error {
	ids, err := parseIDs(orders)
	if err != nil {
		return err
	}
	_, err = f.svc.CompleteGroup(ctx, id, ids, parseNames(items))

	return err
}

func (f *boardFeature) theKitchenMarks(item string, orderID int64, st string) error {
	_, err := f.svc.SetItemStatus(orderID, item, status.Status(st))

	return err
}

func (f *boardFeature) groupIsNotOnTheBoard(id int64) error {
	for _, g := range f.svc.Groups() {
		if g.GroupID == id {
			return fmt.Errorf("group %d is still on the board", id)
		}
	}

	return nil
}

func (f *boardFeature) theBoardHasGroups(want int) error {
	if got := len(f.svc.Groups()); got != want {
		return fmt.Errorf("expected %d groups, got %d", want, got)
	}

	return nil
}

func (f *boardFeature) itemOfOrderIs(item string, orderID int64, want string) error {
	o, err := f.svc.Order(orderID)
	if err != nil {
		return err
	}
	for _, it := range o.Items {
		if it.Name == item {
			if string(it.Status) != want {
				return fmt.Errorf("expected %s of order %d to be %s, got %s", item, orderID, want, it.Status)
			}
			return nil
		}
	}

	return fmt.Errorf("order %d has no item %s", orderID, item)
}

func (f *boardFeature) orderIs(orderID int64, want string) error {
	o, err := f.svc.Order(orderID)
	if err != nil {
		return err
	}
	if string(o.Status) != want {
		return fmt.Errorf("expected order %d to be %s, got %s", orderID, want, o.Status)
	}

	return nil
}

func InitializeBoardScenario(ctx *godog.ScenarioContext) {
	f := &boardFeature{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		f.reset()
		return ctx, nil
	})

	ctx.Step(`^order (\d+) with items:$`, f.orderWithItems)
	ctx.Step(`^group (\d+) covers orders ([\d,]+) for "([^"]*)"$`, f.groupCovers)
	ctx.Step(`^the board is loaded$`, f.theBoardIsLoaded)

	ctx.Step(`^the kitchen completes group (\d+) for orders ([\d,]+) and items "([^"]*)"$`, f.theKitchenCompletes)
	ctx.Step(`^the kitchen marks item "([^"]*)" of order (\d+) "([^"]*)"$`, f.theKitchenMarks)

	ctx.Step(`^group (\d+) is not on the board$`, f.groupIsNotOnTheBoard)
	ctx.Step(`^the board has (\d+) groups?$`, f.theBoardHasGroups)
	ctx.Step(`^item "([^"]*)" of order (\d+) is "([^"]*)"$`, f.itemOfOrderIs)
	ctx.Step(`^order (\d+) is "([^"]*)"$`, f.orderIs)
}

func TestBoardFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeBoardScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../../features/board.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
