package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem: строка корзины. Price хранит цену за единицу на момент первого добавления товара.
type CartItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	AddedAt   time.Time
}

// LineTotal возвращает стоимость строки.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart: агрегат корзины пользователя. Позиции и итоговая сумма меняются только через методы,
// каждый из которых пересчитывает сумму с нуля.
type Cart struct {
	ID        string
	UserID    string
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time

	items      []CartItem
	totalPrice decimal.Decimal
}

// NewCart создаёт пустую корзину; версия 0 означает, что корзина ещё не сохранена.
func NewCart(userID string, now time.Time) Cart {
	return Cart{
		ID:         uuid.NewString(),
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
		totalPrice: decimal.Zero,
	}
}

// RestoreCart собирает корзину из хранилища или кеша.
func RestoreCart(id, userID string, items []CartItem, version int64, createdAt, updatedAt time.Time) Cart {
	c := Cart{
		ID:        id,
		UserID:    userID,
		Version:   version,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		items:     append([]CartItem(nil), items...),
	}
	c.recalculate()
	return c
}

// Items возвращает копию позиций в порядке добавления.
func (c Cart) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

// TotalPrice: сумма по всем строкам.
func (c Cart) TotalPrice() decimal.Decimal {
	return c.totalPrice
}

// IsEmpty сообщает, есть ли в корзине позиции.
func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// IsNew: корзина ещё ни разу не сохранялась.
func (c Cart) IsNew() bool {
	return c.Version == 0
}

// TotalQuantity: общее количество единиц.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Line ищет строку по товару.
func (c Cart) Line(productID string) (CartItem, bool) {
	if idx := c.indexOf(productID); idx >= 0 {
		return c.items[idx], true
	}
	return CartItem{}, false
}

// ProspectiveTotal считает сумму корзины после добавления qty единиц товара.
// Для существующей строки учитывается только прирост по цене строки, для новой по unitPrice.
func (c Cart) ProspectiveTotal(productID string, qty int, unitPrice decimal.Decimal) decimal.Decimal {
	price := unitPrice
	if line, ok := c.Line(productID); ok {
		price = line.Price
	}
	return c.totalPrice.Add(price.Mul(decimal.NewFromInt(int64(qty))))
}

// AddQuantity увеличивает количество в строке или добавляет новую строку.
func (c *Cart) AddQuantity(productID string, qty int, unitPrice decimal.Decimal, now time.Time) {
	c.detach()
	if idx := c.indexOf(productID); idx >= 0 {
		c.items[idx].Quantity += qty
	} else {
		c.items = append(c.items, CartItem{
			ProductID: productID,
			Quantity:  qty,
			Price:     unitPrice,
			AddedAt:   now,
		})
	}
	c.touch(now)
}

// SetQuantity задаёт абсолютное количество; qty <= 0 удаляет строку.
func (c *Cart) SetQuantity(productID string, qty int, unitPrice decimal.Decimal, now time.Time) {
	if qty <= 0 {
		c.Remove(productID, now)
		return
	}
	if idx := c.indexOf(productID); idx >= 0 {
		c.detach()
		c.items[idx].Quantity = qty
		c.touch(now)
		return
	}
	c.AddQuantity(productID, qty, unitPrice, now)
}

// Remove удаляет строку; возвращает false, если строки не было.
func (c *Cart) Remove(productID string, now time.Time) bool {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}
	c.detach()
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.touch(now)
	return true
}

// Clear удаляет все строки.
func (c *Cart) Clear(now time.Time) {
	c.items = nil
	c.touch(now)
}

// detach копирует позиции, чтобы копии корзины не делили общий массив.
func (c *Cart) detach() {
	c.items = append([]CartItem(nil), c.items...)
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.recalculate()
}

func (c *Cart) recalculate() {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	c.totalPrice = total
}

func (c Cart) indexOf(productID string) int {
	for i, item := range c.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
