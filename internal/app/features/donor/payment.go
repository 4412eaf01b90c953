// internal/app/features/donor/payment.go
package donor

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
	"github.com/helpbridge/helpbridge-web/internal/app/system/authz"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
	"github.com/helpbridge/helpbridge-web/internal/app/system/timeouts"
	"github.com/helpbridge/helpbridge-web/internal/app/system/viewdata"
)

// mockSignature is what the backend's no-gateway fallback accepts in place
// of a real gateway signature.
const mockSignature = "mock_signature"

type checkoutData struct {
	viewdata.BaseVM
	GatewayKey string
	OrderID    string
	Amount     int64 // gateway minor unit (paise)
	Currency   string
	CampaignID int64
	Rupees     float64
	DonorName  string
	DonorEmail string
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /donor/donate/{id}  (amount form field, rupees)                        |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleDonate creates a gateway order for the campaign. A mock order is
// verified immediately with a fabricated payment id; a real one renders the
// checkout overlay page.
func (h *Handler) HandleDonate(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "donor: bad campaign id", err, "Invalid campaign.", "/donor/dashboard")
		return
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("amount")), 64)
	if err != nil || amount <= 0 {
		h.ErrLog.LogBadRequest(w, r, "donor: bad donation amount", err, "Enter a positive amount.", "/donor/dashboard")
		return
	}

	token := authz.Token(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	order, err := h.API.CreateOrder(ctx, token, campaignID, amount)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "donor: create order failed", err, "/donor/dashboard")
		return
	}

	if order.Mock {
		h.completeMockPayment(ctx, w, r, order, campaignID, amount)
		return
	}

	key, err := h.API.GatewayKey(ctx, token)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "donor: gateway key fetch failed", err, "/donor/dashboard")
		return
	}

	var donorName, donorEmail string
	if u, ok := auth.CurrentUser(r); ok {
		donorName, donorEmail = u.Name, u.Email
	}

	data := checkoutData{
		BaseVM:     viewdata.NewBaseVM(w, r, h.Flash, "Complete your donation", "/donor/dashboard"),
		GatewayKey: key,
		OrderID:    order.ID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		CampaignID: campaignID,
		Rupees:     amount,
		DonorName:  donorName,
		DonorEmail: donorEmail,
	}

	templates.Render(w, r, "donor_checkout", data)
}

// completeMockPayment simulates the gateway completion callback: one verify
// call with a fabricated pay_mock_ payment id against the original campaign
// and amount.
func (h *Handler) completeMockPayment(ctx context.Context, w http.ResponseWriter, r *http.Request, order api.PaymentOrder, campaignID int64, amount float64) {
	_, _, donorID, _ := authz.UserCtx(r)

	verification := api.PaymentVerification{
		OrderID:    order.ID,
		PaymentID:  "pay_mock_" + uuid.NewString(),
		Signature:  mockSignature,
		CampaignID: campaignID,
		Amount:     amount,
	}

	if err := h.API.VerifyPayment(ctx, authz.Token(r), verification, donorID); err != nil {
		h.ErrLog.LogAPIError(w, r, "donor: mock verify failed", err, "/donor/dashboard")
		return
	}

	h.Log.Info("mock donation verified",
		zap.Int64("campaign_id", campaignID),
		zap.String("order_id", order.ID))
	h.Flash.Push(w, r, flash.Success, "Thank you! Your donation was recorded (demo mode).")
	http.Redirect(w, r, "/donor/dashboard", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /donor/verify  (gateway completion callback form)                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "donor: bad verify form", err, "Invalid payment response.", "/donor/dashboard")
		return
	}

	campaignID, err := strconv.ParseInt(r.FormValue("campaign_id"), 10, 64)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "donor: bad campaign id in verify", err, "Invalid payment response.", "/donor/dashboard")
		return
	}
	amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "donor: bad amount in verify", err, "Invalid payment response.", "/donor/dashboard")
		return
	}

	verification := api.PaymentVerification{
		OrderID:    r.FormValue("razorpay_order_id"),
		PaymentID:  r.FormValue("razorpay_payment_id"),
		Signature:  r.FormValue("razorpay_signature"),
		CampaignID: campaignID,
		Amount:     amount,
	}
	if verification.OrderID == "" || verification.PaymentID == "" || verification.Signature == "" {
		h.ErrLog.LogBadRequest(w, r, "donor: incomplete verify form", nil, "Invalid payment response.", "/donor/dashboard")
		return
	}

	_, _, donorID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.API.VerifyPayment(ctx, authz.Token(r), verification, donorID); err != nil {
		h.ErrLog.LogAPIError(w, r, "donor: verify failed", err, "/donor/dashboard")
		return
	}

	h.Log.Info("donation verified",
		zap.Int64("campaign_id", campaignID),
		zap.String("order_id", verification.OrderID))
	h.Flash.Push(w, r, flash.Success, "Thank you! Your donation was received.")
	http.Redirect(w, r, "/donor/dashboard", http.StatusSeeOther)
}
