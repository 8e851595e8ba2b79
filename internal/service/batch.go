package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/samandr77/ipsqr/internal/entity"
	"github.com/samandr77/ipsqr/internal/ips"
)

const (
	batchPayloadColumn = "Payload"
	batchErrorColumn   = "Error"
)

var batchColumns = map[string]func(p *entity.PaymentRecord, v string){
	"payername":       func(p *entity.PaymentRecord, v string) { p.PayerName = v },
	"payeraddress":    func(p *entity.PaymentRecord, v string) { p.PayerAddress = v },
	"payercity":       func(p *entity.PaymentRecord, v string) { p.PayerCity = v },
	"purpose":         func(p *entity.PaymentRecord, v string) { p.Purpose = v },
	"receivername":    func(p *entity.PaymentRecord, v string) { p.ReceiverName = v },
	"receiveraddress": func(p *entity.PaymentRecord, v string) { p.ReceiverAddress = v },
	"receivercity":    func(p *entity.PaymentRecord, v string) { p.ReceiverCity = v },
	"receiveraccount": func(p *entity.PaymentRecord, v string) { p.ReceiverAccount = v },
	"paymentcode":     func(p *entity.PaymentRecord, v string) { p.PaymentCode = v },
	"currency":        func(p *entity.PaymentRecord, v string) { p.Currency = v },
	"amount":          func(p *entity.PaymentRecord, v string) { p.Amount = v },
	"model":           func(p *entity.PaymentRecord, v string) { p.Model = v },
	"reference":       func(p *entity.PaymentRecord, v string) { p.Reference = v },
}

var batchRequiredColumns = []string{"receivername", "receiveraccount", "amount"}

// ProcessBatch reads payment slips from the first sheet of an xlsx workbook
// (header row with PaymentRecord field names) and returns a workbook with the
// same rows plus Payload and Error columns.
func (s *Service) ProcessBatch(ctx context.Context, xlsx []byte) ([]byte, error) {
	in, err := excelize.OpenReader(bytes.NewReader(xlsx))
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %w", entity.ErrInvalidArgument, err)
	}
	defer in.Close()

	sheet := in.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: no sheets", entity.ErrBatchEmpty)
	}

	rows, err := in.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	if len(rows) < 2 {
		return nil, entity.ErrBatchEmpty
	}

	header := rows[0]
	columns := make(map[int]func(p *entity.PaymentRecord, v string), len(header))
	seen := make(map[string]bool, len(header))

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if set, ok := batchColumns[name]; ok {
			columns[i] = set
			seen[name] = true
		}
	}

	for _, name := range batchRequiredColumns {
		if !seen[name] {
			return nil, fmt.Errorf("%w: missing column %q", entity.ErrInvalidArgument, name)
		}
	}

	out := excelize.NewFile()
	defer out.Close()

	outSheet := out.GetSheetName(0)

	err = setRow(out, outSheet, 1, append(padRow(header, len(header)), batchPayloadColumn, batchErrorColumn))
	if err != nil {
		return nil, err
	}

	var (
		outRow  = 2
		encoded int
	)

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		p := entity.NewPaymentRecord()

		for i, v := range row {
			if set, ok := columns[i]; ok {
				set(&p, strings.TrimSpace(v))
			}
		}

		var payload, errMsg string

		payload, err = ips.Encode(p)
		if err != nil {
			errMsg = err.Error()
		} else {
			encoded++
		}

		err = setRow(out, outSheet, outRow, append(padRow(row, len(header)), payload, errMsg))
		if err != nil {
			return nil, err
		}

		outRow++
	}

	if outRow == 2 {
		return nil, entity.ErrBatchEmpty
	}

	buf, err := out.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	slog.InfoContext(ctx, "batch processed", "rows", outRow-2, "encoded", encoded)

	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}

	err = f.SetSheetRow(sheet, cell, &vals)
	if err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}

	return nil
}

// padRow returns a copy of row with exactly n cells; GetRows trims trailing empty cells.
func padRow(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)

	return out
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}
