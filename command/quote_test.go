package command

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nzai/stockwatch/quoter"
	"github.com/nzai/stockwatch/quotes"
)

func TestPrintTable(t *testing.T) {
	result := &quoter.Result{
		Stocks: []*quotes.Quote{
			{Symbol: "WIPRO.NS", Name: "Wipro Ltd", CurrentPrice: 389.1, PreviousClose: 385, Change: 4.1, ChangePercent: 1.06},
		},
		DemoMode: true,
	}

	buffer := new(bytes.Buffer)
	printTable(buffer, result)

	output := buffer.String()
	for _, want := range []string{"WIPRO.NS", "Wipro Ltd", "389.10", "385.00", "+4.10", "+1.06%", "demo data"} {
		if !strings.Contains(output, want) {
			t.Errorf("printTable() output missing %q:\n%s", want, output)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	result := &quoter.Result{Stocks: []*quotes.Quote{{Symbol: "ITC.NS", Name: "ITC Ltd", PreviousClose: 465}}}

	buffer := new(bytes.Buffer)
	err := printJSON(buffer, result)
	if err != nil {
		t.Fatalf("printJSON() error = %v", err)
	}

	decoded := new(quoter.Result)
	err = json.Unmarshal(buffer.Bytes(), decoded)
	if err != nil {
		t.Fatalf("json.Unmarshal() error = %v, output %s", err, buffer.String())
	}

	if decoded.DemoMode || len(decoded.Stocks) != 1 || decoded.Stocks[0].PreviousClose != 465 {
		t.Errorf("printJSON() = %s", buffer.String())
	}

	if strings.Contains(buffer.String(), "demo_mode") {
		t.Errorf("printJSON() should omit demo_mode: %s", buffer.String())
	}
}

func TestSetup_UpstreamDisabled(t *testing.T) {
	t.Setenv("UPSTREAM_DISABLED", "true")

	c, q, cleanup, err := setup("")
	if err != nil {
		t.Fatalf("setup() error = %v", err)
	}
	defer cleanup()

	if !c.Upstream.Disabled {
		t.Error("config.Upstream.Disabled = false")
	}

	result := q.Quotes(context.Background(), []string{"INFY.NS"})
	if !result.DemoMode || result.Stocks[0].PreviousClose != 1420 {
		t.Errorf("Quoter.Quotes() = %+v", result)
	}
}
