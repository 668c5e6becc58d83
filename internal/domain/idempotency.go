package domain

import "time"

// IdempotencyStatus описывает жизненный цикл ключа идемпотентности.
type IdempotencyStatus string

const (
	// IdempotencyStatusProcessing означает, что запрос принят и ещё обрабатывается.
	IdempotencyStatusProcessing IdempotencyStatus = "processing"
	// IdempotencyStatusDone означает, что запрос завершён успешно и ответ сохранён.
	IdempotencyStatusDone IdempotencyStatus = "done"
	// IdempotencyStatusFailed: окончательный отказ (пустая корзина, нехватка товара),
	// повтор с тем же ключом получает ту же ошибку.
	IdempotencyStatusFailed IdempotencyStatus = "failed"
	// IdempotencyStatusRetryable: обработка прервана временной ошибкой (конфликт версий,
	// недоступный склад, зависший обработчик). Тот же запрос может занять ключ заново.
	IdempotencyStatusRetryable IdempotencyStatus = "retryable"
)

// IdempotencyRecord хранит состояние обработки запроса с idempotency-key.
// ResponseCode: код gRPC-статуса сохранённого ответа.
type IdempotencyRecord struct {
	Key          string
	RequestHash  string
	ResponseBody []byte
	ResponseCode int
	Status       IdempotencyStatus
	TTLAt        time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s IdempotencyStatus) Valid() bool {
	switch s {
	case IdempotencyStatusProcessing, IdempotencyStatusDone, IdempotencyStatusFailed, IdempotencyStatusRetryable:
		return true
	default:
		return false
	}
}

// Expired сообщает, истёк ли срок хранения записи к моменту now.
func (r IdempotencyRecord) Expired(now time.Time) bool {
	return !r.TTLAt.After(now)
}

// Claimable сообщает, может ли запрос с хэшем requestHash занять ключ заново.
// Просроченный ключ свободен для любого запроса, retryable только для того же.
func (r IdempotencyRecord) Claimable(requestHash string, now time.Time) bool {
	if r.Expired(now) {
		return true
	}
	return r.Status == IdempotencyStatusRetryable && r.RequestHash == requestHash
}

// IdempotencyScope: операция, защищённая ключом идемпотентности.
type IdempotencyScope string

const (
	IdempotencyScopeCheckout IdempotencyScope = "checkout"
	IdempotencyScopePayment  IdempotencyScope = "payment"
	IdempotencyScopeCancel   IdempotencyScope = "cancel"
)

// DefaultIdempotencyTTL: срок хранения для операций без собственного правила.
const DefaultIdempotencyTTL = 24 * time.Hour

// TTL возвращает срок хранения результата. Оплату клиенты переспрашивают дольше всего,
// отмену достаточно помнить несколько часов.
func (s IdempotencyScope) TTL() time.Duration {
	switch s {
	case IdempotencyScopePayment:
		return 72 * time.Hour
	case IdempotencyScopeCancel:
		return 6 * time.Hour
	default:
		return DefaultIdempotencyTTL
	}
}
