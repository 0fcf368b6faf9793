package constants

const (
	CentsPerUnit = 100

	// Date Layouts
	DateFormat = "02-01-2006"
	TimeFormat = "02-01-2006 15:04:05"
)

const (
	CPFLength = 11
	CEPLength = 8
)

// Account defaults, overridable through config.
const (
	DefaultAgency            = "0001"
	DefaultWithdrawalCeiling = 500 * CentsPerUnit
	DefaultMaxWithdrawals    = 3
)
