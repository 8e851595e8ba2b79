package ips_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/ipsqr/internal/entity"
	"github.com/samandr77/ipsqr/internal/ips"
)

func testRecord() entity.PaymentRecord {
	return entity.PaymentRecord{
		PayerName:       "Петар Петровић",
		PayerAddress:    "Булевар краља Александра 73",
		PayerCity:       "Београд",
		Purpose:         "Уплата по рачуну",
		ReceiverName:    "ЈКП Инфостан",
		ReceiverAddress: "Димитрија Туцовића 25",
		ReceiverCity:    "Београд",
		ReceiverAccount: "160-0000000000123-45",
		PaymentCode:     "189",
		Currency:        "RSD",
		Amount:          "1234.5",
		Model:           "97",
		Reference:       "2024-00017",
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	want := "K:PR|V:01|C:1|R:160000000000012345" +
		"|N:JKP Infostan\nDimitrija Tucovića 25\nBeograd" +
		"|I:RSD1234.50" +
		"|P:Petar Petrović\nBulevar kralja Aleksandra 73\nBeograd" +
		"|SF:289|S:Uplata po računu|RO:9765202400017"

	got, err := ips.Encode(testRecord())
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Same input, same output.
	again, err := ips.Encode(testRecord())
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEncode_Minimal(t *testing.T) {
	t.Parallel()

	p := entity.PaymentRecord{
		ReceiverName:    "Primalac",
		ReceiverAccount: "160",
		Amount:          "10",
	}

	got, err := ips.Encode(p)
	require.NoError(t, err)
	require.Equal(t, "K:PR|V:01|C:1|R:160000000000000000|N:Primalac|I:RSD10.00|P:|SF:289|S:", got)
}

func TestEncode_Reference(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name      string
		model     string
		reference string
		wantTail  string
	}{
		{name: "model 97", model: "97", reference: "123", wantTail: "|S:|RO:9720123"},
		{name: "other model passes through", model: "11", reference: " 123-45 ", wantTail: "|S:|RO:11123-45"},
		{name: "no model", model: "", reference: "123", wantTail: "|S:|RO:00123"},
		{name: "blank reference", model: "97", reference: "   ", wantTail: "|S:"},
		{name: "no reference", model: "97", reference: "", wantTail: "|S:"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := entity.PaymentRecord{
				ReceiverName:    "Primalac",
				ReceiverAccount: "160000000000012345",
				Amount:          "1",
				Model:           tt.model,
				Reference:       tt.reference,
			}

			got, err := ips.Encode(p)
			require.NoError(t, err)
			require.True(t, strings.HasSuffix(got, tt.wantTail), got)
		})
	}
}

func TestEncode_NoPayload(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		modify  func(p *entity.PaymentRecord)
		wantErr error
	}{
		{
			name:    "missing account",
			modify:  func(p *entity.PaymentRecord) { p.ReceiverAccount = "" },
			wantErr: ips.ErrIncomplete,
		},
		{
			name:    "missing amount",
			modify:  func(p *entity.PaymentRecord) { p.Amount = "" },
			wantErr: ips.ErrIncomplete,
		},
		{
			name:    "missing receiver name",
			modify:  func(p *entity.PaymentRecord) { p.ReceiverName = "" },
			wantErr: ips.ErrIncomplete,
		},
		{
			name:    "account without digits",
			modify:  func(p *entity.PaymentRecord) { p.ReceiverAccount = "---" },
			wantErr: ips.ErrMalformedAccount,
		},
		{
			name:    "account shorter than bank code",
			modify:  func(p *entity.PaymentRecord) { p.ReceiverAccount = "16" },
			wantErr: ips.ErrMalformedAccount,
		},
		{
			name:    "amount not a number",
			modify:  func(p *entity.PaymentRecord) { p.Amount = "dvesta" },
			wantErr: ips.ErrMalformedAmount,
		},
		{
			name:    "negative amount",
			modify:  func(p *entity.PaymentRecord) { p.Amount = "-10" },
			wantErr: ips.ErrMalformedAmount,
		},
		{
			name:    "amount in exponent form",
			modify:  func(p *entity.PaymentRecord) { p.Amount = "1e20000000" },
			wantErr: ips.ErrMalformedAmount,
		},
		{
			name:    "amount with too many digits",
			modify:  func(p *entity.PaymentRecord) { p.Amount = "12345678901234567" },
			wantErr: ips.ErrMalformedAmount,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := testRecord()
			tt.modify(&p)

			got, err := ips.Encode(p)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, ips.ErrNoPayload)
			require.Empty(t, got)
		})
	}
}

func TestEncode_MissingAccountWins(t *testing.T) {
	t.Parallel()

	p := testRecord()
	p.ReceiverAccount = ""
	p.Amount = "garbage"

	_, err := ips.Encode(p)
	require.ErrorIs(t, err, ips.ErrIncomplete)
}

func TestEncode_TruncatesAfterTransliteration(t *testing.T) {
	t.Parallel()

	p := testRecord()
	// 40 source characters become 80 Latin ones.
	p.ReceiverName = strings.Repeat("љ", 40)
	p.ReceiverAddress = ""
	p.ReceiverCity = ""
	p.Purpose = strings.Repeat("њ", 20)

	got, err := ips.Encode(p)
	require.NoError(t, err)

	receiver := tagValue(t, got, "N")
	require.Equal(t, ips.MaxPartyLength, utf8.RuneCountInString(receiver))
	require.Equal(t, strings.Repeat("lj", 35), receiver)

	purpose := tagValue(t, got, "S")
	require.Equal(t, ips.MaxPurposeLength, utf8.RuneCountInString(purpose))
	require.Equal(t, strings.Repeat("nj", 17)+"n", purpose)
}

func TestEncode_TruncatesPayerBlock(t *testing.T) {
	t.Parallel()

	p := testRecord()
	p.PayerName = strings.Repeat("Ш", 50)
	p.PayerAddress = strings.Repeat("a", 30)
	p.PayerCity = "Нови Сад"

	got, err := ips.Encode(p)
	require.NoError(t, err)

	payer := tagValue(t, got, "P")
	require.Equal(t, strings.Repeat("Š", 50)+"\n"+strings.Repeat("a", 19), payer)
}

func TestEncode_TagOrder(t *testing.T) {
	t.Parallel()

	got, err := ips.Encode(testRecord())
	require.NoError(t, err)

	var tags []string
	for _, f := range strings.Split(got, "|") {
		tag, _, ok := strings.Cut(f, ":")
		require.True(t, ok)

		tags = append(tags, tag)
	}

	require.Equal(t, []string{"K", "V", "C", "R", "N", "I", "P", "SF", "S", "RO"}, tags)
}

func TestEncode_DefaultCurrency(t *testing.T) {
	t.Parallel()

	p := testRecord()
	p.Currency = ""

	got, err := ips.Encode(p)
	require.NoError(t, err)
	require.Equal(t, "RSD1234.50", tagValue(t, got, "I"))
}

func TestEncode_DisplayFormattedAmount(t *testing.T) {
	t.Parallel()

	p := testRecord()
	p.Amount = "1.234,56"

	got, err := ips.Encode(p)
	require.NoError(t, err)
	require.Equal(t, "RSD1234.56", tagValue(t, got, "I"))
}

func tagValue(t *testing.T, payload, tag string) string {
	t.Helper()

	for _, f := range strings.Split(payload, "|") {
		if v, ok := strings.CutPrefix(f, tag+":"); ok {
			return v
		}
	}

	t.Fatalf("tag %q not found in %q", tag, payload)

	return ""
}
