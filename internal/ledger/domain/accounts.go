package domain

// Account is a fixed chart-of-accounts entry. The chart is not
// user-configurable; codes are engine constants and must not be
// renamed or repurposed once journaled.
type Account struct {
	Code   string
	Name   string
	Normal EntryType
}

var (
	AccountCash               = Account{Code: "1000", Name: "Cash", Normal: EntryTypeDebit}
	AccountInventory          = Account{Code: "1200", Name: "Inventory", Normal: EntryTypeDebit}
	AccountAccountsReceivable = Account{Code: "1300", Name: "Accounts Receivable", Normal: EntryTypeDebit}
	AccountVATPayable         = Account{Code: "2200", Name: "VAT Payable", Normal: EntryTypeCredit}
	AccountOpeningStockEquity = Account{Code: "3000", Name: "Opening Stock Equity", Normal: EntryTypeCredit}
	AccountSalesRevenue       = Account{Code: "4000", Name: "Sales Revenue", Normal: EntryTypeCredit}
	AccountSalesDiscount      = Account{Code: "4100", Name: "Sales Discount", Normal: EntryTypeDebit}
	AccountCOGS               = Account{Code: "5000", Name: "Cost of Goods Sold", Normal: EntryTypeDebit}
	AccountExpenses           = Account{Code: "6000", Name: "Expenses", Normal: EntryTypeDebit}
)

// ChartOfAccounts lists every account the engine can post to.
var ChartOfAccounts = []Account{
	AccountCash,
	AccountInventory,
	AccountAccountsReceivable,
	AccountVATPayable,
	AccountOpeningStockEquity,
	AccountSalesRevenue,
	AccountSalesDiscount,
	AccountCOGS,
	AccountExpenses,
}

// Line is one posting of an event before it is numbered and persisted.
type Line struct {
	Type        EntryType
	Account     Account
	Amount      int64
	Description string
	SaleID      *int64
	ProductID   *int64
}

// Debit builds a debit line.
func Debit(account Account, amount int64, description string) Line {
	return Line{Type: EntryTypeDebit, Account: account, Amount: amount, Description: description}
}

// Credit builds a credit line.
func Credit(account Account, amount int64, description string) Line {
	return Line{Type: EntryTypeCredit, Account: account, Amount: amount, Description: description}
}

// ValidateBalanced enforces the double-entry balance law on the lines of
// a single event: at least two lines, every amount strictly positive, and
// debit total exactly equal to credit total.
func ValidateBalanced(lines []Line) error {
	if len(lines) < 2 {
		return ErrInvalidEntryLines
	}

	var debits, credits int64
	for _, line := range lines {
		if line.Amount <= 0 {
			return ErrInvalidLineAmount
		}
		switch line.Type {
		case EntryTypeDebit:
			debits += line.Amount
		case EntryTypeCredit:
			credits += line.Amount
		default:
			return ErrInvalidLineType
		}
	}

	if debits != credits {
		return ErrEntryNotBalanced
	}
	return nil
}
