package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/dto"
	"github.com/zestbet/zestbet/internal/service/walletservice"
	"github.com/zestbet/zestbet/pkg/auth"
	"github.com/zestbet/zestbet/pkg/utils"
	"github.com/zestbet/zestbet/pkg/validate"
)

//go:generate mockgen -source=wallet.go -destination=mocks.go -package=wallet

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.User, error)
	ListTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	GrantDaily(ctx context.Context, userID int, amount int64) (int64, int64, error)
	Purchase(ctx context.Context, userID int, amount int64) (int64, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current Zest balance
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:    user.Balance,
		Points:     user.Points,
		InviteCode: user.InviteCode,
	})
}

// GetTransactions godoc
//
//	@Summary		Get the Zest ledger
//	@Description	Full transaction history for the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.ListTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	resp := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, dto.TransactionResponseDTO{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Kind:        tx.Kind,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DailyZest godoc
//
//	@Summary		Claim free daily Zest
//	@Description	The grant is clamped to what remains of today's allowance
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DailyZestRequestDTO	true	"Requested amount"
//	@Success		200		{object}	dto.DailyZestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		429		{object}	utils.Response	"Daily limit exceeded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/daily [post]
func (h *WalletHandler) DailyZest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DailyZestRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	balance, granted, err := h.walletService.GrantDaily(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrDailyLimitExceeded):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyZestResponseDTO{
		Message: "Free Zest added",
		Granted: granted,
		Balance: balance,
	})
}

// Purchase godoc
//
//	@Summary		Buy Zest with a payment voucher
//	@Description	The voucher code must pass the Luhn check
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		422		{object}	utils.Response	"Invalid voucher code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/purchase [post]
func (h *WalletHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsLuhn(req.Voucher) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid voucher code")
		return
	}

	balance, err := h.walletService.Purchase(r.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, walletservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Message: "Zest purchased",
		Balance: balance,
	})
}
