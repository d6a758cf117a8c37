package model

import "github.com/shopspring/decimal"

// Kind selects which KuDE layout a document uses.
type Kind string

const (
	KindInvoice    Kind = "factura"
	KindCreditNote Kind = "nota_credito"
)

// Document is the flat, fully defaulted record extracted from a SIFEN
// electronic document. Text fields default to "" and amounts to zero;
// extraction never fails on a missing optional node.
type Document struct {
	Kind     Kind
	Currency string

	// CDC is the 44-character document identifier (DE@Id), ungrouped.
	CDC string
	// QRPayload is the dCarQR URL embedded by the issuer.
	QRPayload string
	// IssuedAt is the emission timestamp already formatted DD/MM/YYYY HH:mm:ss.
	IssuedAt string

	Issuer    Issuer
	Timbrado  Timbrado
	Receiver  Receiver
	Transport Transport
	Payment   Payment
	Extra     AdditionalInfo
	Items     []LineItem
	Totals    Totals

	// Associated holds the referenced-document block; credit notes only.
	Associated AssociatedDoc
}

// Issuer is the emitting taxpayer (gEmis).
type Issuer struct {
	Name         string
	ActivityDesc string
	Email        string
	Phone        string
	Address      string
	Department   string
	City         string
	District     string
	RUC          string
	RUCDV        string
}

// Timbrado is the printing-authorization block (gTimb).
type Timbrado struct {
	Number string
	// ValidFrom is the authorization validity start, formatted DD/MM/YYYY.
	ValidFrom string
	TypeCode  string
	TypeDesc  string
	Est       string
	PunExp    string
	NumDoc    string
}

// DocNumber returns the est-pun-num display triple.
func (t Timbrado) DocNumber() string {
	return t.Est + "-" + t.PunExp + "-" + t.NumDoc
}

// Receiver is the document's client (gDatRec).
type Receiver struct {
	// Nature is iNatRec; "1" marks a legal entity (contribuyente).
	Nature        string
	Name          string
	FantasyName   string
	ClientCode    string
	Address       string
	RUC           string
	RUCDV         string
	NationalID    string
	Phone         string
	City          string
	OperationDesc string
}

const natureLegalEntity = "1"

// DisplayID returns the printed identifier: RUC-DV for legal entities,
// the national id otherwise.
func (r Receiver) DisplayID() string {
	if r.Nature == natureLegalEntity {
		return r.RUC + "-" + r.RUCDV
	}
	return r.NationalID
}

// FantasyLine returns the fantasy-name line shown on credit notes; empty
// when there is no fantasy name at all.
func (r Receiver) FantasyLine() string {
	if r.FantasyName == "" {
		return ""
	}
	return r.FantasyName + " " + r.ClientCode
}

// Transport is the goods-transport block (gTransp), invoices only.
type Transport struct {
	StartDate     string
	EndDate       string
	VehicleBrand  string
	VehiclePlate  string
	CarrierName   string
	CarrierRUC    string
	CarrierRUCDV  string
	DriverName    string
	DriverID      string
	DriverAddress string
}

// Payment is the sale-condition block (gCamCond).
type Payment struct {
	// CondCode is iCondOpe: "1" contado, "2" crédito.
	CondCode string
	// Term is the credit term (plazo) after the dInfAdic override rule.
	Term string
}

const condCash = "1"

// Cash reports whether the contado checkbox is ticked.
func (p Payment) Cash() bool { return p.CondCode == condCash }

// AdditionalInfo is the pipe-delimited dInfAdic field, positionally decoded.
type AdditionalInfo struct {
	Zone          string
	Seller        string
	PurchaseOrder string
}

// LineItem is one gCamItem entry.
type LineItem struct {
	GTIN         string
	Unit         string
	Description  string
	InternalCode string

	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	UnitDiscount decimal.Decimal
	GrossTotal   decimal.Decimal

	// TaxRate is dTasaIVA kept as source text ("5", "10", "").
	TaxRate string
	// PropIVA is the proportional-taxation indicator; "0" marks exemption.
	PropIVA     string
	ExemptBase  decimal.Decimal
	TaxableBase decimal.Decimal
	TaxAmount   decimal.Decimal

	// Info is the raw auxiliary dInfItem line (R|..., D|... or plain text).
	Info string
}

// Totals is the document-level gTotSub block, redisplayed as-is.
type Totals struct {
	Exempt     decimal.Decimal
	Sub5       decimal.Decimal
	Sub10      decimal.Decimal
	IVA5       decimal.Decimal
	IVA10      decimal.Decimal
	TotalIVA   decimal.Decimal
	GrandTotal decimal.Decimal
}

// AssociatedDoc is the gCamDEAsoc reference block on credit/debit notes.
type AssociatedDoc struct {
	// TypeCode is iTipDocAso; "1" means the reference carries a CDC.
	TypeCode string
	TypeDesc string
	CDC      string
	Est      string
	PunExp   string
	NumDoc   string
	// Motive is dDesMotEmi from gCamNCDE.
	Motive string
}

const assocByCDC = "1"

// DisplayRef returns the printed reference: the CDC when the type code says
// so, the est-pun-num triple otherwise.
func (a AssociatedDoc) DisplayRef() string {
	if a.TypeCode == assocByCDC {
		return a.CDC
	}
	return a.Est + "-" + a.PunExp + "-" + a.NumDoc
}
