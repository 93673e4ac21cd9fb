package rewards

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/corray333/backend-labs/cafe/internal/service/models/reward"
	"github.com/corray333/backend-labs/cafe/internal/service/models/scratchcard"
	"github.com/corray333/backend-labs/cafe/internal/service/services/rewardsvc"
	"github.com/corray333/backend-labs/cafe/internal/transport/http/respond"
	"github.com/go-chi/chi/v5"
)

// service is an interface for the service layer.
type service interface {
	Rewards() []reward.Reward
	ScratchCards(ctx context.Context, sessionID string) ([]scratchcard.Record, error)
	DailyScratchCard(ctx context.Context, sessionID string) (rewardsvc.DailyCard, error)
	Claim(ctx context.Context, sessionID, cardID string) (rewardsvc.CardResult, error)
	Dismiss(ctx context.Context, sessionID, cardID string) (rewardsvc.CardResult, error)
	RedeemReward(ctx context.Context, sessionID string, rewardID int) (rewardsvc.RedeemResult, error)
}

func List(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string][]reward.Reward{"rewards": svc.Rewards()})
	}
}

func ScratchCards(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := svc.ScratchCards(r.Context(), chi.URLParam(r, "sid"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, map[string]any{"scratch_cards": cards})
	}
}

// Daily handles POST /api/sessions/{sid}/scratchcards/daily.
func Daily(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		daily, err := svc.DailyScratchCard(r.Context(), chi.URLParam(r, "sid"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, daily)
	}
}

func Claim(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Claim(r.Context(), chi.URLParam(r, "sid"), chi.URLParam(r, "cardID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, res)
	}
}

func Dismiss(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Dismiss(r.Context(), chi.URLParam(r, "sid"), chi.URLParam(r, "cardID"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, res)
	}
}

func Redeem(svc service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "rewardID"))
		if err != nil {
			respond.Error(w, r, fmt.Errorf("%w: reward id must be a number", respond.ErrBadRequest))
			return
		}

		res, err := svc.RedeemReward(r.Context(), chi.URLParam(r, "sid"), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, res)
	}
}
