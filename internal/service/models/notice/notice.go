package notice

import (
	"fmt"
	"strings"
)

// Notice is a short user-facing message about the outcome of an action.
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Action      *Action `json:"action,omitempty"`
}

// Action is an optional follow-up the client can offer next to the notice.
type Action struct {
	Label  string `json:"label"`
	ItemID string `json:"itemId"`
}

var (
	CartEmpty   = &Notice{Title: "Cart is empty", Description: "Add items before checking out!"}
	OrderPlaced = &Notice{Title: "Order Placed!", Description: "Your order has been added to the Orders page."}
)

// RewardRedeemed confirms a points redemption.
func RewardRedeemed(name string) *Notice {
	return &Notice{Title: "Reward Redeemed!", Description: fmt.Sprintf("You've successfully redeemed %s", name)}
}

// RewardClaimed confirms a claimed scratch card.
func RewardClaimed(description string) *Notice {
	return &Notice{Title: "Reward Claimed!", Description: fmt.Sprintf("%s has been added to your account.", description)}
}

// ItemsUnavailable lists cart items that are no longer on the menu and were left out of pricing.
func ItemsUnavailable(names []string) *Notice {
	return &Notice{
		Title:       "Some items are unavailable",
		Description: fmt.Sprintf("%s left out of your total.", strings.Join(names, ", ")),
	}
}

// OrderPlacedWithout confirms an order that left out unavailable items.
func OrderPlacedWithout(names []string) *Notice {
	return &Notice{
		Title:       OrderPlaced.Title,
		Description: fmt.Sprintf("%s Not included: %s.", OrderPlaced.Description, strings.Join(names, ", ")),
	}
}
