package service

import (
	"strings"

	"github.com/samandr77/ipsqr/internal/entity"
	"github.com/samandr77/ipsqr/internal/ips"
)

// ValidatePaymentRecord runs the form-level checks. They are stricter than
// what Encode needs: the account must be typed with all 18 digits and the
// amount must be a positive number.
func ValidatePaymentRecord(p entity.PaymentRecord) entity.ValidationErrors {
	errs := entity.ValidationErrors{}

	if ips.DigitCount(p.ReceiverAccount) != ips.AccountLength {
		errs["receiverAccount"] = "Račun primaoca mora imati tačno 18 cifara"
	}

	if strings.TrimSpace(p.Amount) == "" {
		errs["amount"] = "Iznos je obavezan"
	} else if d, err := ips.ParseAmount(ips.CanonicalAmount(p.Amount)); err != nil || !d.IsPositive() {
		errs["amount"] = "Iznos mora biti pozitivan broj"
	}

	if strings.TrimSpace(p.ReceiverName) == "" {
		errs["receiverName"] = "Naziv primaoca je obavezan"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
