package entities

import "time"

type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Account is a node of the chart of accounts. ParentID builds the hierarchy.
type Account struct {
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	ParentID    string      `json:"parent_id,omitempty"`
	Description string      `json:"description"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AccountNode is an Account with its children, for tree listings.
type AccountNode struct {
	Account
	Children []*AccountNode `json:"children"`
}

// BuildAccountTree nests accounts under their parents. Accounts whose parent is
// missing from the input are returned as roots. Input order is kept.
func BuildAccountTree(accounts []Account) []*AccountNode {
	nodes := make(map[string]*AccountNode, len(accounts))
	for _, a := range accounts {
		nodes[a.ID] = &AccountNode{Account: a, Children: []*AccountNode{}}
	}

	roots := make([]*AccountNode, 0)
	for _, a := range accounts {
		n := nodes[a.ID]
		if parent, ok := nodes[a.ParentID]; ok && a.ParentID != "" && a.ParentID != a.ID {
			parent.Children = append(parent.Children, n)
			continue
		}
		roots = append(roots, n)
	}
	return roots
}

// DefaultChart is the starter chart of accounts created by the seed command.
func DefaultChart() []Account {
	return []Account{
		{Code: "1000", Name: "Cash", Type: AccountTypeAsset, Description: "Cash and bank accounts"},
		{Code: "1100", Name: "Bank", Type: AccountTypeAsset, Description: "Primary bank account"},
		{Code: "1200", Name: "Accounts Receivable", Type: AccountTypeAsset, Description: "Invoices pending collection"},
		{Code: "2000", Name: "Accounts Payable", Type: AccountTypeLiability},
		{Code: "2100", Name: "Tax Payable", Type: AccountTypeLiability, Description: "Output tax collected on invoices"},
		{Code: "3000", Name: "Owner's Equity", Type: AccountTypeEquity},
		{Code: "4000", Name: "Service Revenue", Type: AccountTypeRevenue},
		{Code: "4100", Name: "Product Revenue", Type: AccountTypeRevenue},
		{Code: "5000", Name: "Operating Expenses", Type: AccountTypeExpense},
		{Code: "5100", Name: "Software & SaaS", Type: AccountTypeExpense},
		{Code: "5200", Name: "Professional Services", Type: AccountTypeExpense, Description: "Legal, accounting, consulting"},
	}
}
