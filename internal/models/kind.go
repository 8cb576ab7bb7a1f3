package models

import "fmt"

// TransactionKind is the closed set of transaction types a statement line can
// map to. Unrecognized tokens never produce a kind; lines without a kind are
// continuation text, not transactions.
type TransactionKind string

const (
	KindCredit   TransactionKind = "credit"
	KindTransfer TransactionKind = "transfer"
	KindDebit    TransactionKind = "debit"
)

// ParseKind converts a configuration value into a TransactionKind.
func ParseKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case KindCredit, KindTransfer, KindDebit:
		return TransactionKind(s), nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", s)
}

// KindGroup partitions transactions for aggregation. Transfers are treated as
// outflows, so they share the debit group.
type KindGroup string

const (
	GroupCredit KindGroup = "credit"
	GroupDebit  KindGroup = "debit"
)

// GroupOf returns the kind-group a transaction kind belongs to.
func GroupOf(kind TransactionKind) KindGroup {
	if kind == KindCredit {
		return GroupCredit
	}
	return GroupDebit
}
