package icafeapi

import (
	"context"

	"github.com/corray333/backend-labs/cafe/internal/service/models/group"
	"github.com/corray333/backend-labs/cafe/internal/service/models/kitchen"
	"github.com/corray333/backend-labs/cafe/internal/service/models/menu"
	"github.com/corray333/backend-labs/cafe/internal/service/models/report"
	"github.com/corray333/backend-labs/cafe/internal/service/models/user"
)

//go:generate mockgen -source=icafeapi.go -destination=mock/icafeapi.go

// IMenuAPI defines the menu endpoints of the café API.
type IMenuAPI interface {
	Menu(ctx context.Context) ([]menu.Item, error)
	OfferItem(ctx context.Context) (menu.Item, error)
	AddMenuItem(ctx context.Context, item menu.NewItem) error
	EditMenuItem(ctx context.Context, edit menu.Edit) error
	DeleteMenuItem(ctx context.Context, sku string) error
}

// IKitchenAPI defines the kitchen board endpoints of the café API.
type IKitchenAPI interface {
	KitchenOrders(ctx context.Context) ([]kitchen.Order, error)
	Groups(ctx context.Context) ([]group.Group, error)
}

// IAuthAPI defines the authentication endpoints of the café API.
type IAuthAPI interface {
	Login(ctx context.Context, creds user.Credentials) (user.User, error)
	Signup(ctx context.Context, req user.Signup) (string, error)
}

// IReportAPI defines the reporting endpoints of the café API.
type IReportAPI interface {
	Settlements(ctx context.Context) (report.Settlements, error)
	CompanySales(ctx context.Context) ([]report.CompanySales, error)
	Allocations(ctx context.Context) ([]report.Allocation, error)
}
