package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownMaterial имя материала, которое не удалось разрешить
const UnknownMaterial = "Desconhecido"

// Comanda types.
const (
	TipoCompra = "compra"
	TipoVenda  = "venda"
)

// HistoryItem is one line of the reconciled "last items" view: either a
// confirmed local row or a synthetic row built from a pending outbox entry.
type HistoryItem struct {
	Data          time.Time       `json:"data"`
	MaterialNome  string          `json:"material_nome"`
	Codigo        string          `json:"codigo,omitempty"`
	Tipo          string          `json:"tipo,omitempty"`
	ClientUUID    string          `json:"client_uuid,omitempty"`
	KgTotal       decimal.Decimal `json:"kg_total"`
	PrecoKg       decimal.Decimal `json:"preco_kg"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	ID            int64           `json:"id,omitempty"`
	EntryID       int64           `json:"entry_id,omitempty"`
	Material      int64           `json:"material"`
	Comanda       int64           `json:"comanda,omitempty"`
	Pending       bool            `json:"pending"`
	OriginOffline bool            `json:"origin_offline"`
}

// NameResolved reports whether the material name is known.
func (h HistoryItem) NameResolved() bool {
	return h.MaterialNome != "" && h.MaterialNome != UnknownMaterial
}

// PendenciaView open debt row of the reconciled pendencias view
type PendenciaView struct {
	Data          time.Time       `json:"data"`
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Obs           string          `json:"obs,omitempty"`
	Tipo          string          `json:"tipo,omitempty"`
	Valor         decimal.Decimal `json:"valor"`
	EntryID       int64           `json:"entry_id,omitempty"`
	Pending       bool            `json:"pending"`
	OriginOffline bool            `json:"origin_offline"`
}

// ComandaItem одна строка при закрытии команды
type ComandaItem struct {
	MaterialNome string          `json:"material_nome,omitempty"`
	PrecoKg      decimal.Decimal `json:"preco_kg"`
	KgTotal      decimal.Decimal `json:"kg_total"`
	Material     int64           `json:"material"`
}

// Total returns kg * price rounded to cents.
func (c ComandaItem) Total() decimal.Decimal {
	return c.KgTotal.Mul(c.PrecoKg).Round(2)
}
