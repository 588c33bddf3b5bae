package entity

import "github.com/shopspring/decimal"

// Price es la fila del libro de inventario (ledger) por producto:
// stock disponible, acumulado vendido, precio de venta y costo.
//
// Invariantes: Stock nunca negativo; Sell solo crece (la cancelación
// restaura stock pero no descuenta sell, que queda como registro histórico
// de demanda).
type Price struct {
	ProductsID    string
	Stock         int
	Sell          int
	ProductsPrice decimal.Decimal
	Cost          decimal.Decimal
}
