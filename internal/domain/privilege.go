package domain

import (
	"time"

	"github.com/google/uuid"
)

type PrivilegeStatus string

const (
	PrivilegeStatusBronze PrivilegeStatus = "BRONZE"
	PrivilegeStatusSilver PrivilegeStatus = "SILVER"
	PrivilegeStatusGold   PrivilegeStatus = "GOLD"
)

type OperationType string

const (
	OperationFillInBalance   OperationType = "FILL_IN_BALANCE"
	OperationDebitTheAccount OperationType = "DEBIT_THE_ACCOUNT"
)

func (op OperationType) Valid() bool {
	return op == OperationFillInBalance || op == OperationDebitTheAccount
}

// BalanceDelta is the signed effect of a transaction on the privilege balance.
func (op OperationType) BalanceDelta(diff int) int {
	if op == OperationDebitTheAccount {
		return -diff
	}
	return diff
}

type Privilege struct {
	ID       int64
	Username string
	Status   PrivilegeStatus
	Balance  int
}

type PrivilegeHistory struct {
	ID            int64
	PrivilegeID   int64
	TicketUID     uuid.UUID
	Date          time.Time
	BalanceDiff   int
	OperationType OperationType
}
