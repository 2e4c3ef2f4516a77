package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/testutil"
	"go.uber.org/zap"
)

const testPage = `<div id="listing" class="rh_property__mc">
<select class="mc_term"><option value="15">15</option><option value="30" selected>30</option></select>
<input class="mc_interset" value="4.5">
<input class="mc_interset_slider" value="4.5">
<input class="mc_home_price" value="300000">
<input class="mc_home_price_slider" value="300000">
<input class="mc_downpayment" value="60000">
<input class="mc_downpayment_percent" value="20">
<input class="mc_downpayment_slider" value="20">
<input class="mc_cost_tax_value" value="250">
<input class="mc_cost_hoa_value" value="100">
<span class="mc_term_value"></span>
<span class="mc_interest_value"></span>
<p class="mc_cost_interest"><span></span></p>
<p class="mc_cost_total"><span></span></p>
<div class="mc_graph_interest"></div>
<div class="mc_graph_tax"></div>
<div class="mc_graph_hoa"></div>
</div>`

func postJSON(t *testing.T, handler http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to encode payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()

	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response: %v (%s)", err, rr.Body.String())
	}
}

func TestHandleCalculateSuccess(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	rr := postJSON(t, handler, "/api/calculate", map[string]interface{}{
		"term":               30,
		"interest":           0,
		"price":              300000,
		"downpaymentPercent": 20,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp calculateResponse
	decodeResponse(t, rr, &resp)

	if resp.Values.Downpayment != 60000 {
		t.Errorf("expected resolved downpayment 60000, got %v", resp.Values.Downpayment)
	}
	if resp.Result.PrincipalInterest != 240000 {
		t.Errorf("expected principal and interest 240000, got %v", resp.Result.PrincipalInterest)
	}
	if resp.Result.PaymentPerMonth != 666.67 {
		t.Errorf("expected 666.67 per month, got %v", resp.Result.PaymentPerMonth)
	}
	if resp.Formatted.PaymentPerMonth != "$666.67" {
		t.Errorf("expected formatted monthly $666.67, got %s", resp.Formatted.PaymentPerMonth)
	}
	if resp.Formatted.Loan != "$240,000" {
		t.Errorf("expected formatted loan $240,000, got %s", resp.Formatted.Loan)
	}
	if resp.Percentage.PI != 100 {
		t.Errorf("expected all of the payment to be principal, got %v", resp.Percentage.PI)
	}
	if resp.Duration == "" {
		t.Error("expected duration in response")
	}
}

func TestHandleCalculateErrors(t *testing.T) {
	handler := NewHandler(zap.NewNop(), 64, "test")

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "Malformed JSON", body: "{", status: http.StatusBadRequest},
		{name: "Unknown field", body: `{"rate": 5}`, status: http.StatusBadRequest},
		{name: "Downpayment above price", body: `{"price": 100, "downpayment": 200}`, status: http.StatusUnprocessableEntity},
		{name: "Negative term", body: `{"term": -1}`, status: http.StatusUnprocessableEntity},
		{name: "Body too large", body: `{"price": ` + strings.Repeat("1", 100) + `}`, status: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, rr.Code, rr.Body.String())
			}

			var resp map[string]string
			decodeResponse(t, rr, &resp)
			if resp["error"] == "" {
				t.Error("expected error message in response")
			}
		})
	}
}

func TestHandleRenderBindsBlocks(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	rr := postJSON(t, handler, "/api/render", renderRequest{HTML: testPage})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp renderResponse
	decodeResponse(t, rr, &resp)

	if len(resp.Calculators) != 1 {
		t.Fatalf("expected one calculator, got %d", len(resp.Calculators))
	}
	calc := resp.Calculators[0]
	if calc.ID != "listing" || calc.Variant != "bar" {
		t.Errorf("unexpected calculator summary: %+v", calc)
	}

	doc := testutil.ParseHTML(t, []byte(resp.HTML))
	if got := doc.Find(".mc_home_price").AttrOr("value", ""); got != "$300,000" {
		t.Errorf("expected formatted price, got %q", got)
	}
	if got := doc.Find(".mc_term_value").Text(); got != "30" {
		t.Errorf("expected info term 30, got %q", got)
	}
	if got := doc.Find(".mc_cost_total span").Text(); !strings.HasPrefix(got, "$") {
		t.Errorf("expected monthly payment text, got %q", got)
	}
	if style, _ := doc.Find(".mc_graph_interest").Attr("style"); !strings.HasPrefix(style, "width: ") {
		t.Errorf("expected graph width style, got %q", style)
	}
}

func TestHandleRenderEvents(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	tests := []struct {
		name     string
		event    renderEvent
		selector string
		want     string
	}{
		{
			name:     "Price slider by block id",
			event:    renderEvent{Block: "listing", Field: "price_slider", Value: "400000"},
			selector: ".mc_downpayment",
			want:     "$80,000",
		},
		{
			name:     "Downpayment text by selector",
			event:    renderEvent{Selector: "#listing .mc_downpayment", Field: "downpayment_text", Value: "75000", Kind: "change"},
			selector: ".mc_downpayment_percent",
			want:     "25%",
		},
		{
			name:     "Focus strips formatting",
			event:    renderEvent{Block: "listing", Field: "price_text", Kind: "focus"},
			selector: ".mc_home_price",
			want:     "300000",
		},
		{
			name:     "Blur restores formatting",
			event:    renderEvent{Block: "listing", Kind: "blur"},
			selector: ".mc_interset",
			want:     "4.5%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := tt.event
			rr := postJSON(t, handler, "/api/render", renderRequest{HTML: testPage, Event: &event})
			if rr.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
			}

			var resp renderResponse
			decodeResponse(t, rr, &resp)
			doc := testutil.ParseHTML(t, []byte(resp.HTML))
			if got := doc.Find(tt.selector).AttrOr("value", ""); got != tt.want {
				t.Errorf("%s value = %q, expected %q", tt.selector, got, tt.want)
			}
		})
	}
}

func TestHandleRenderErrors(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	tests := []struct {
		name   string
		req    renderRequest
		status int
	}{
		{name: "Missing html", req: renderRequest{}, status: http.StatusBadRequest},
		{name: "Unknown block", req: renderRequest{HTML: testPage, Event: &renderEvent{Block: "other", Field: "tax"}}, status: http.StatusNotFound},
		{name: "Selector outside blocks", req: renderRequest{HTML: testPage, Event: &renderEvent{Selector: "body", Field: "tax"}}, status: http.StatusBadRequest},
		{name: "No target", req: renderRequest{HTML: testPage, Event: &renderEvent{Field: "tax"}}, status: http.StatusBadRequest},
		{name: "Unknown field", req: renderRequest{HTML: testPage, Event: &renderEvent{Block: "listing", Field: "color"}}, status: http.StatusBadRequest},
		{name: "Display field", req: renderRequest{HTML: testPage, Event: &renderEvent{Block: "listing", Field: "info_term", Value: "15"}}, status: http.StatusBadRequest},
		{name: "Graph field", req: renderRequest{HTML: testPage, Event: &renderEvent{Block: "listing", Field: "graph_tax", Kind: "focus"}}, status: http.StatusBadRequest},
		{name: "Currency setting", req: renderRequest{HTML: testPage, Event: &renderEvent{Block: "listing", Field: "currency_sign", Value: "€"}}, status: http.StatusBadRequest},
		{name: "Unknown kind", req: renderRequest{HTML: testPage, Event: &renderEvent{Block: "listing", Field: "tax", Kind: "hover"}}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, handler, "/api/render", tt.req)
			if rr.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestHandleRenderTooLarge(t *testing.T) {
	handler := NewHandler(zap.NewNop(), 1024, "test")

	page := testPage + strings.Repeat("<p>padding</p>", 200)
	rr := postJSON(t, handler, "/api/render", renderRequest{HTML: page})
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", rr.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "  v1.2.3  ")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var resp map[string]string
	decodeResponse(t, rr, &resp)
	if resp["version"] != "v1.2.3" {
		t.Errorf("expected version v1.2.3, got %q", resp["version"])
	}
}

func TestHandleVersionDefault(t *testing.T) {
	handler := NewHandler(nil, 0, "")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp map[string]string
	decodeResponse(t, rr, &resp)
	if resp["version"] != "dev" {
		t.Errorf("expected version dev, got %q", resp["version"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/calculate"},
		{http.MethodGet, "/api/render"},
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/calculate"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusMethodNotAllowed {
				t.Fatalf("expected status 405, got %d", rr.Code)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	handler := NewHandler(zap.NewNop(), constants.DefaultMaxUploadSizeBytes, "test")

	req := httptest.NewRequest(http.MethodGet, "/api/forecast", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestNewHTTPServer(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	srv := NewHTTPServer(cfg, NewHandler(nil, cfg.UploadSizeBytes(), "test"))
	if srv.Addr != constants.DefaultServerAddress {
		t.Errorf("expected default address, got %s", srv.Addr)
	}
	if srv.ReadTimeout != constants.DefaultReadTimeout || srv.WriteTimeout != constants.DefaultWriteTimeout {
		t.Errorf("unexpected timeouts: %s %s", srv.ReadTimeout, srv.WriteTimeout)
	}
}
