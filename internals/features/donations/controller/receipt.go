package controller

import (
	"fmt"
	"strings"

	donationModel "bayanihan_backend/internals/features/donations/model"
)

// BuildReceipt renders the receipt payload for a confirmed donation. Callers
// must not invoke it for pending or rejected rows.
func BuildReceipt(d *donationModel.DonationModel, charityName, donorName string) map[string]interface{} {
	if d.Anonymous {
		donorName = "Anonymous donor"
	}

	receipt := map[string]interface{}{
		"receipt_no": ReceiptNumber(d),
		"donor":      donorName,
		"charity":    charityName,
		"amount":     d.Amount.StringFixed(2),
		"currency":   "PHP",
		"status":     d.Status,
		"issued_for": d.ID.String(),
	}
	if d.ConfirmedAt != nil {
		receipt["confirmed_at"] = d.ConfirmedAt.UTC()
	}
	if d.CampaignID != nil {
		receipt["campaign_id"] = d.CampaignID.String()
	}
	return receipt
}

// ReceiptNumber derives a stable human-readable reference from the donation id.
func ReceiptNumber(d *donationModel.DonationModel) string {
	short := strings.ToUpper(strings.ReplaceAll(d.ID.String(), "-", "")[:12])
	return fmt.Sprintf("RCPT-%d-%s", d.CreatedAt.Year(), short)
}
