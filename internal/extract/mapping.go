package extract

import "github.com/sifenlabs/kude/internal/model"

// mapping binds one source path (relative to rDE) to one field of the
// document record. Missing paths assign the empty string; that policy
// lives in the walker, not here.
type mapping struct {
	path      []string
	transform func(string) string
	assign    func(*model.Document, string)
}

func p(segments ...string) []string { return segments }

// textMappings covers every scalar text field of the record. Order follows
// the printed document: issuer, timbrado, receiver, transport, payment,
// currency, identifiers, associated document.
var textMappings = []mapping{
	// Issuer
	{path: p("DE", "gDatGralOpe", "gEmis", "dNomEmi"), assign: func(d *model.Document, v string) { d.Issuer.Name = v }},
	{path: p("DE", "gDatGralOpe", "gEmis", "gActEco", "dDesActEco"), assign: func(d *model.Document, v string) { d.Issuer.ActivityDesc = v }},
	{path: p("DE", "gDatGralOpe", "gEmis", "dEmailE"), assign: func(d *model.Document, v string) { d.Issuer.Email = v }},
	{path: p("DE", "gDatGralOpe", "gEmis", "dTelEmi"), assign: func(d *model.Document, v string) { d.Issuer.Phone = v }},
	{path: p("DE", "gDatGralOpe", "gEmis", "dDirEmi"), assign: func(d *model.Document, v string) { d.Issuer.Address = v }},
	{path: p("DE", "gDatGralOpe", "gEmis", "dDesDepEmi"), assign: func(d *model.Document, v string) { d.Issuer.Department = v }},
	{path: p("DE", "gDatGralOpe", "gEmis", "dDesCiuEmi"), assign: func(d *model.Document, v string) { d.Issuer.City = v }},
	{path: p("DE", "gDatGralOpe", "gEmis", "dDesDisEmi"), assign: func(d *model.Document, v string) { d.Issuer.District = v }},
	{path: p("DE", "gDatGralOpe", "gEmis", "dRucEm"), assign: func(d *model.Document, v string) { d.Issuer.RUC = v }},
	{path: p("DE", "gDatGralOpe", "gEmis", "dDVEmi"), assign: func(d *model.Document, v string) { d.Issuer.RUCDV = v }},

	// Timbrado
	{path: p("DE", "gTimb", "dNumTim"), assign: func(d *model.Document, v string) { d.Timbrado.Number = v }},
	{path: p("DE", "gTimb", "dFeIniT"), transform: asDate, assign: func(d *model.Document, v string) { d.Timbrado.ValidFrom = v }},
	{path: p("DE", "gTimb", "iTiDE"), assign: func(d *model.Document, v string) { d.Timbrado.TypeCode = v }},
	{path: p("DE", "gTimb", "dDesTiDE"), assign: func(d *model.Document, v string) { d.Timbrado.TypeDesc = v }},
	{path: p("DE", "gTimb", "dEst"), assign: func(d *model.Document, v string) { d.Timbrado.Est = v }},
	{path: p("DE", "gTimb", "dPunExp"), assign: func(d *model.Document, v string) { d.Timbrado.PunExp = v }},
	{path: p("DE", "gTimb", "dNumDoc"), assign: func(d *model.Document, v string) { d.Timbrado.NumDoc = v }},

	// Emission timestamp
	{path: p("DE", "gDatGralOpe", "dFeEmiDE"), transform: asDateTime, assign: func(d *model.Document, v string) { d.IssuedAt = v }},

	// Receiver
	{path: p("DE", "gDatGralOpe", "gDatRec", "iNatRec"), assign: func(d *model.Document, v string) { d.Receiver.Nature = v }},
	{path: p("DE", "gDatGralOpe", "gDatRec", "dNomRec"), assign: func(d *model.Document, v string) { d.Receiver.Name = v }},
	{path: p("DE", "gDatGralOpe", "gDatRec", "dNomFanRec"), assign: func(d *model.Document, v string) { d.Receiver.FantasyName = v }},
	{path: p("DE", "gDatGralOpe", "gDatRec", "dCodCliente"), assign: func(d *model.Document, v string) { d.Receiver.ClientCode = v }},
	{path: p("DE", "gDatGralOpe", "gDatRec", "dDirRec"), assign: func(d *model.Document, v string) { d.Receiver.Address = v }},
	{path: p("DE", "gDatGralOpe", "gDatRec", "dRucRec"), assign: func(d *model.Document, v string) { d.Receiver.RUC = v }},
	{path: p("DE", "gDatGralOpe", "gDatRec", "dDVRec"), assign: func(d *model.Document, v string) { d.Receiver.RUCDV = v }},
	{path: p("DE", "gDatGralOpe", "gDatRec", "dNumIDRec"), assign: func(d *model.Document, v string) { d.Receiver.NationalID = v }},
	{path: p("DE", "gDatGralOpe", "gDatRec", "dTelRec"), assign: func(d *model.Document, v string) { d.Receiver.Phone = v }},
	{path: p("DE", "gDatGralOpe", "gDatRec", "dDesCiuRec"), assign: func(d *model.Document, v string) { d.Receiver.City = v }},
	{path: p("DE", "gDatGralOpe", "gOpeCom", "dDesTipTra"), assign: func(d *model.Document, v string) { d.Receiver.OperationDesc = v }},

	// Transport
	{path: p("DE", "gDtipDE", "gTransp", "dIniTras"), transform: asDate, assign: func(d *model.Document, v string) { d.Transport.StartDate = v }},
	{path: p("DE", "gDtipDE", "gTransp", "dFinTras"), transform: asDate, assign: func(d *model.Document, v string) { d.Transport.EndDate = v }},
	{path: p("DE", "gDtipDE", "gTransp", "gVehTras", "dMarVeh"), assign: func(d *model.Document, v string) { d.Transport.VehicleBrand = v }},
	{path: p("DE", "gDtipDE", "gTransp", "gVehTras", "dNroMatVeh"), assign: func(d *model.Document, v string) { d.Transport.VehiclePlate = v }},
	{path: p("DE", "gDtipDE", "gTransp", "gCamTrans", "dNomTrans"), assign: func(d *model.Document, v string) { d.Transport.CarrierName = v }},
	{path: p("DE", "gDtipDE", "gTransp", "gCamTrans", "dRucTrans"), assign: func(d *model.Document, v string) { d.Transport.CarrierRUC = v }},
	{path: p("DE", "gDtipDE", "gTransp", "gCamTrans", "dDVTrans"), assign: func(d *model.Document, v string) { d.Transport.CarrierRUCDV = v }},
	{path: p("DE", "gDtipDE", "gTransp", "gCamTrans", "dNomChof"), assign: func(d *model.Document, v string) { d.Transport.DriverName = v }},
	{path: p("DE", "gDtipDE", "gTransp", "gCamTrans", "dNumIDChof"), assign: func(d *model.Document, v string) { d.Transport.DriverID = v }},
	{path: p("DE", "gDtipDE", "gTransp", "gCamTrans", "dDirChof"), assign: func(d *model.Document, v string) { d.Transport.DriverAddress = v }},

	// Payment condition
	{path: p("DE", "gDtipDE", "gCamCond", "iCondOpe"), assign: func(d *model.Document, v string) { d.Payment.CondCode = v }},

	// Operation currency
	{path: p("DE", "gDatGralOpe", "gOpeCom", "cMoneOpe"), assign: func(d *model.Document, v string) { d.Currency = v }},

	// QR payload (sibling of DE inside rDE)
	{path: p("gCamFuFD", "dCarQR"), assign: func(d *model.Document, v string) { d.QRPayload = v }},

	// Associated document (credit/debit notes)
	{path: p("DE", "gDtipDE", "gCamNCDE", "dDesMotEmi"), assign: func(d *model.Document, v string) { d.Associated.Motive = v }},
	{path: p("DE", "gCamDEAsoc", "iTipDocAso"), assign: func(d *model.Document, v string) { d.Associated.TypeCode = v }},
	{path: p("DE", "gCamDEAsoc", "dDesTipDocAso"), assign: func(d *model.Document, v string) { d.Associated.TypeDesc = v }},
	{path: p("DE", "gCamDEAsoc", "dCdCDERef"), assign: func(d *model.Document, v string) { d.Associated.CDC = v }},
	{path: p("DE", "gCamDEAsoc", "dEstDocAso"), assign: func(d *model.Document, v string) { d.Associated.Est = v }},
	{path: p("DE", "gCamDEAsoc", "dPExpDocAso"), assign: func(d *model.Document, v string) { d.Associated.PunExp = v }},
	{path: p("DE", "gCamDEAsoc", "dNumDocAso"), assign: func(d *model.Document, v string) { d.Associated.NumDoc = v }},
}
