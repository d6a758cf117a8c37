package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sifenlabs/kude/internal/server"
)

const invoiceXML = `<rDE>
  <DE Id="01800695631001001000000612021112917595714694">
    <gTimb>
      <iTiDE>1</iTiDE>
      <dDesTiDE>Factura electrónica</dDesTiDE>
      <dNumTim>12558946</dNumTim>
      <dEst>001</dEst><dPunExp>001</dPunExp><dNumDoc>0000061</dNumDoc>
      <dFeIniT>2021-08-13</dFeIniT>
    </gTimb>
    <gDatGralOpe>
      <dFeEmiDE>2021-11-29T17:59:57</dFeEmiDE>
      <gOpeCom><cMoneOpe>PYG</cMoneOpe></gOpeCom>
      <gEmis>
        <dRucEm>80069563</dRucEm><dDVEmi>1</dDVEmi>
        <dNomEmi>ACME S.A.</dNomEmi>
        <dDirEmi>Avda. Mcal. López 1234</dDirEmi>
        <dDesDepEmi>CAPITAL</dDesDepEmi><dDesCiuEmi>ASUNCION</dDesCiuEmi>
      </gEmis>
      <gDatRec><iNatRec>1</iNatRec><dRucRec>4444401</dRucRec><dDVRec>7</dDVRec><dNomRec>CLIENTE</dNomRec></gDatRec>
    </gDatGralOpe>
    <gDtipDE>
      <gCamCond><iCondOpe>1</iCondOpe></gCamCond>
      <gCamItem>
        <dDesProSer>Servicio</dDesProSer>
        <dCantProSer>1</dCantProSer>
        <gValorItem><dPUniProSer>110000</dPUniProSer><dTotBruOpeItem>110000</dTotBruOpeItem></gValorItem>
        <gCamIVA><dTasaIVA>10</dTasaIVA><dPropIVA>100</dPropIVA><dBasGravIVA>100000</dBasGravIVA><dLiqIVAItem>10000</dLiqIVAItem></gCamIVA>
      </gCamItem>
    </gDtipDE>
    <gTotSub><dSub10>110000</dSub10><dIVA10>10000</dIVA10><dTotIVA>10000</dTotIVA><dTotGralOpe>110000</dTotGralOpe></gTotSub>
  </DE>
  <gCamFuFD><dCarQR>https://ekuatia.set.gov.py/consultas/qr?nVersion=150</dCarQR></gCamFuFD>
</rDE>`

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config)
}

func postJSON(t *testing.T, srv *server.Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestRenderFacturaEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/pdf/factura", server.RenderRequest{
		XML:         invoiceXML,
		CompanyID:   "6",
		CompanyName: "ACME S.A.",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func TestRenderNotaCreditoEndpointAcceptsAnyKind(t *testing.T) {
	// The layout follows the document type inside the XML; the endpoint
	// only selects the logo file.
	srv := newTestServer()

	w := postJSON(t, srv, "/api/pdf/notacredito", server.RenderRequest{XML: invoiceXML})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestRenderEndpoint_MissingXML(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/pdf/factura", server.RenderRequest{CompanyID: "6"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 0, response.Code)
	assert.NotEmpty(t, response.Message)
}

func TestRenderEndpoint_InvalidBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/pdf/factura", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderEndpoint_UnrenderableXML(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/pdf/factura", server.RenderRequest{XML: "<wrapper><rDE/></wrapper>"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 0, response.Code)
	assert.Contains(t, response.Message, "envelope")
}
