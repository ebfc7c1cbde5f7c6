package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMalformedPayload означает, что сохраненный payload не разбирается.
// Движок синхронизации считает такую ошибку постоянной.
var ErrMalformedPayload = errors.New("malformed payload")

// PayloadKind variant tag of a decoded payload
type PayloadKind string

const (
	KindMaterial  PayloadKind = "material"
	KindComanda   PayloadKind = "comanda"
	KindItem      PayloadKind = "item"
	KindPendencia PayloadKind = "pendencia"
	KindOpaque    PayloadKind = "opaque"
)

// Payload is a decoded outbox payload. Fields returns the row exactly as it
// was enqueued and is what gets sent to the remote store.
type Payload interface {
	Kind() PayloadKind
	Fields() map[string]any
}

type rawFields map[string]any

func (r rawFields) Fields() map[string]any { return r }

// MaterialPayload строка таблицы material
type MaterialPayload struct {
	rawFields
	Nome        string
	Categoria   string
	PrecoCompra decimal.NullDecimal
	PrecoVenda  decimal.NullDecimal
	ID          int64
	Ordem       int64
}

func (MaterialPayload) Kind() PayloadKind { return KindMaterial }

// ComandaPayload заголовок команды (чек)
type ComandaPayload struct {
	rawFields
	Data       time.Time
	Codigo     string
	Tipo       string
	ClientUUID string
	Total      decimal.NullDecimal
	ID         int64
}

func (ComandaPayload) Kind() PayloadKind { return KindComanda }

// ItemPayload одна позиция команды
type ItemPayload struct {
	rawFields
	Data          time.Time
	Codigo        string
	Tipo          string
	ClientUUID    string
	MaterialNome  string
	PrecoKg       decimal.Decimal
	KgTotal       decimal.Decimal
	ValorTotal    decimal.NullDecimal
	ID            int64
	Material      int64
	Comanda       int64
	OrigemOffline bool
}

func (ItemPayload) Kind() PayloadKind { return KindItem }

// PendenciaPayload open debt entry
type PendenciaPayload struct {
	rawFields
	Data          time.Time
	ID            string
	Nome          string
	Obs           string
	Tipo          string
	Valor         decimal.NullDecimal
	Status        bool
	OrigemOffline bool
}

func (PendenciaPayload) Kind() PayloadKind { return KindPendencia }

// OpaquePayload payload неизвестной таблицы, передается как есть
type OpaquePayload struct {
	rawFields
}

func (OpaquePayload) Kind() PayloadKind { return KindOpaque }

// DecodeFields parses raw into a field map. Numbers are kept as json.Number
// so that ids and amounts survive the round trip without float rounding.
func DecodeFields(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedPayload)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: not an object", ErrMalformedPayload)
	}
	return fields, nil
}

// DecodePayload decodes raw into the variant registered for table.
// Unknown tables decode into OpaquePayload.
func DecodePayload(table string, raw []byte) (Payload, error) {
	fields, err := DecodeFields(raw)
	if err != nil {
		return nil, err
	}

	switch RemoteTable(table) {
	case TableMaterial:
		return decodeMaterial(fields)
	case TableComanda, TableComanda20:
		return decodeComanda(fields)
	case TableItem:
		return decodeItem(fields)
	case TablePendencia:
		return decodePendencia(fields)
	default:
		return OpaquePayload{rawFields: fields}, nil
	}
}

func decodeComanda(fields map[string]any) (ComandaPayload, error) {
	f := fieldReader(fields)
	p := ComandaPayload{rawFields: fields}

	var err error
	if p.ID, err = f.int("id"); err != nil {
		return p, err
	}
	p.Codigo = f.str("codigo")
	p.Tipo = strings.ToLower(f.str("tipo"))
	p.ClientUUID = f.str("client_uuid", "uuid")
	if p.Total, err = f.nullDecimal("total", "valor_total"); err != nil {
		return p, err
	}
	if p.Data, err = f.time("data", "comanda_data"); err != nil {
		return p, err
	}
	return p, nil
}

func decodeMaterial(fields map[string]any) (MaterialPayload, error) {
	f := fieldReader(fields)
	p := MaterialPayload{rawFields: fields}

	var err error
	if p.ID, err = f.int("id"); err != nil {
		return p, err
	}
	p.Nome = f.str("nome")
	p.Categoria = f.str("categoria")
	if p.PrecoCompra, err = f.nullDecimal("preco_compra", "precoCompra"); err != nil {
		return p, err
	}
	if p.PrecoVenda, err = f.nullDecimal("preco_venda", "precoVenda"); err != nil {
		return p, err
	}
	if p.Ordem, err = f.int("ordem"); err != nil {
		return p, err
	}
	return p, nil
}

func decodeItem(fields map[string]any) (ItemPayload, error) {
	f := fieldReader(fields)
	p := ItemPayload{rawFields: fields}

	var err error
	if p.ID, err = f.int("id"); err != nil {
		return p, err
	}
	if p.Material, err = f.int("material", "material_id", "materialId"); err != nil {
		return p, err
	}
	if p.Comanda, err = f.int("comanda", "comanda_id", "comandaId"); err != nil {
		return p, err
	}
	p.Codigo = f.str("codigo", "comanda_codigo")
	p.Tipo = strings.ToLower(f.str("tipo", "comanda_tipo"))
	p.ClientUUID = f.str("client_uuid", "uuid")
	p.MaterialNome = f.str("material_nome", "nome")

	preco, err := f.nullDecimal("preco_kg", "precoKg", "preco")
	if err != nil {
		return p, err
	}
	p.PrecoKg = preco.Decimal

	kg, err := f.nullDecimal("kg_total", "kgTotal", "kg")
	if err != nil {
		return p, err
	}
	p.KgTotal = kg.Decimal

	if p.ValorTotal, err = f.nullDecimal("valor_total", "total", "item_valor_total"); err != nil {
		return p, err
	}
	if p.Data, err = f.time("data", "item_data"); err != nil {
		return p, err
	}
	p.OrigemOffline = f.flag("origem_offline")
	return p, nil
}

func decodePendencia(fields map[string]any) (PendenciaPayload, error) {
	f := fieldReader(fields)
	p := PendenciaPayload{rawFields: fields}

	var err error
	p.ID = f.str("id")
	p.Nome = f.str("nome")
	p.Obs = f.str("observacao", "obs")
	p.Tipo = f.str("tipo")
	if p.Valor, err = f.nullDecimal("valor"); err != nil {
		return p, err
	}
	if p.Data, err = f.time("data"); err != nil {
		return p, err
	}
	p.Status = f.flag("status")
	p.OrigemOffline = f.flag("origem_offline")
	return p, nil
}

// fieldReader lenient accessor over a decoded field map: the first present,
// non-null alias wins.
type fieldReader map[string]any

func (f fieldReader) lookup(keys ...string) (string, any, bool) {
	for _, k := range keys {
		if v, ok := f[k]; ok && v != nil {
			return k, v, true
		}
	}
	return "", nil, false
}

func (f fieldReader) str(keys ...string) string {
	_, v, ok := f.lookup(keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func (f fieldReader) int(keys ...string) (int64, error) {
	key, v, ok := f.lookup(keys...)
	if !ok {
		return 0, nil
	}
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
		if s == "" {
			return 0, nil
		}
	default:
		return 0, fmt.Errorf("%w: field %q is %T, want integer", ErrMalformedPayload, key, v)
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%w: field %q=%q is not an integer", ErrMalformedPayload, key, s)
	}
	return d.IntPart(), nil
}

func (f fieldReader) nullDecimal(keys ...string) (decimal.NullDecimal, error) {
	key, v, ok := f.lookup(keys...)
	if !ok {
		return decimal.NullDecimal{}, nil
	}
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		// в кассе суммы вводятся с запятой
		s = strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
		if s == "" {
			return decimal.NullDecimal{}, nil
		}
	default:
		return decimal.NullDecimal{}, fmt.Errorf("%w: field %q is %T, want number", ErrMalformedPayload, key, v)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: field %q=%q is not a number", ErrMalformedPayload, key, s)
	}
	return decimal.NewNullDecimal(d), nil
}

func (f fieldReader) time(keys ...string) (time.Time, error) {
	key, v, ok := f.lookup(keys...)
	if !ok {
		return time.Time{}, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return time.Time{}, fmt.Errorf("%w: field %q is %T, want timestamp", ErrMalformedPayload, key, v)
	}
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: field %q: %v", ErrMalformedPayload, key, err)
	}
	return t, nil
}

func (f fieldReader) flag(keys ...string) bool {
	_, v, ok := f.lookup(keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case json.Number:
		return t.String() != "0"
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	}
	return false
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseTimestamp parses the timestamp formats found in local rows and payloads.
// Values without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
