package domain

// PaymentMethod: способ оплаты, выбранный при оформлении.
type PaymentMethod string

const (
	// PaymentMethodCashBalance: оплата с внутреннего денежного баланса пользователя.
	PaymentMethodCashBalance PaymentMethod = "CASH_BALANCE"
	// PaymentMethodCard: оплата картой вне системы.
	PaymentMethodCard PaymentMethod = "CARD"
	// PaymentMethodBankTransfer: банковский перевод вне системы.
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// Valid проверяет, что способ оплаты поддерживается.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCashBalance, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	default:
		return false
	}
}

// RefundsToBalance: при отмене оплаченного заказа деньги возвращаются на баланс.
func (m PaymentMethod) RefundsToBalance() bool {
	return m == PaymentMethodCashBalance
}
