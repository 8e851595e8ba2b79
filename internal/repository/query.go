package repository

var slipColumns = []string{
	"id",
	"data",
	"qr_string",
	"created_at",
	"expires_at",
}

const (
	selectSlip = `SELECT
		id,
		data,
		qr_string,
		created_at,
		expires_at
	FROM shared_slips`
)
