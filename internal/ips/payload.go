package ips

import (
	"fmt"
	"strings"

	"github.com/samandr77/ipsqr/internal/entity"
)

// Field caps of the NBS IPS QR standard, in characters after transliteration.
const (
	MaxPartyLength   = 70
	MaxPurposeLength = 35
)

const (
	tagKind     = "K"
	tagVersion  = "V"
	tagCharset  = "C"
	tagAccount  = "R"
	tagReceiver = "N"
	tagAmount   = "I"
	tagPayer    = "P"
	tagCode     = "SF"
	tagPurpose  = "S"
	tagRef      = "RO"

	kindPrintedSlip = "PR"
	version         = "01"
	charsetUTF8     = "1"

	fieldSeparator = "|"
	tagSeparator   = ":"
	noModel        = "00"
)

// Encode builds the IPS QR payload for a payment slip:
//
//	K:PR|V:01|C:1|R:<account>|N:<receiver>|I:<currency><amount>|P:<payer>|SF:<code>|S:<purpose>[|RO:<model><reference>]
//
// The returned error wraps ErrNoPayload when the record cannot be encoded yet.
func Encode(p entity.PaymentRecord) (string, error) {
	switch {
	case p.ReceiverAccount == "":
		return "", fmt.Errorf("%w: receiverAccount", ErrIncomplete)
	case p.Amount == "":
		return "", fmt.Errorf("%w: amount", ErrIncomplete)
	case p.ReceiverName == "":
		return "", fmt.Errorf("%w: receiverName", ErrIncomplete)
	}

	account := NormalizeAccount(p.ReceiverAccount)
	if len(account) != AccountLength {
		return "", fmt.Errorf("%w: %d digits after normalization", ErrMalformedAccount, len(account))
	}

	amount, err := PayloadAmount(CanonicalAmount(p.Amount))
	if err != nil {
		return "", err
	}

	currency := p.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	fields := []string{
		field(tagKind, kindPrintedSlip),
		field(tagVersion, version),
		field(tagCharset, charsetUTF8),
		field(tagAccount, account),
		field(tagReceiver, partyBlock(p.ReceiverName, p.ReceiverAddress, p.ReceiverCity)),
		field(tagAmount, currency+amount),
		field(tagPayer, partyBlock(p.PayerName, p.PayerAddress, p.PayerCity)),
		field(tagCode, TransformCode(p.PaymentCode)),
		field(tagPurpose, truncate(Transliterate(p.Purpose), MaxPurposeLength)),
	}

	if ref := reference(p.Model, p.Reference); ref != "" {
		fields = append(fields, field(tagRef, ref))
	}

	return strings.Join(fields, fieldSeparator), nil
}

func field(tag, value string) string {
	return tag + tagSeparator + value
}

// partyBlock puts name, address and city on separate lines; empty address
// and city lines are skipped, the name line never is.
func partyBlock(name, address, city string) string {
	block := Transliterate(name)

	if address != "" {
		block += "\n" + Transliterate(address)
	}

	if city != "" {
		block += "\n" + Transliterate(city)
	}

	return truncate(block, MaxPartyLength)
}

func reference(model, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	switch model {
	case Model97Code:
		return Model97Code + Model97(ref)
	case "":
		return noModel + ref
	default:
		return model + ref
	}
}
