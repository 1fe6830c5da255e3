package cosmos

import (
	"testing"
	"time"
)

func TestParseBlockBody(t *testing.T) {
	body := `{
  "block": {
    "header": {
      "chain_id": "evmos_9000-4",
      "height": "18500000",
      "time": "2023-11-07T02:41:36.768652319Z"
    }
  }
}`

	sample, err := parseBlockBody([]byte(body))
	if err != nil {
		t.Fatalf("parseBlockBody() unexpected error: %v", err)
	}
	if sample.Height != 18500000 {
		t.Fatalf("height = %d, want 18500000", sample.Height)
	}
	wantTime := time.Date(2023, 11, 7, 2, 41, 36, 0, time.UTC)
	if !sample.Time.Equal(wantTime) {
		t.Fatalf("time = %s, want %s", sample.Time, wantTime)
	}
}

// A response wrapped in an unexpected envelope still yields a sample through
// the pattern fallback.
func TestParseBlockBodyFallback(t *testing.T) {
	body := `{
  "result": {
    "sdk_block": {
      "header": {
        "chain_id": "evmos_9000-4",
        "height": "18500000",
        "time": "2023-11-07T02:41:36.768652319Z"
      }
    }
  }
}`

	sample, err := parseBlockBody([]byte(body))
	if err != nil {
		t.Fatalf("parseBlockBody() unexpected error: %v", err)
	}
	if sample.Height != 18500000 {
		t.Fatalf("height = %d, want 18500000", sample.Height)
	}
	wantTime := time.Date(2023, 11, 7, 2, 41, 36, 0, time.UTC)
	if !sample.Time.Equal(wantTime) {
		t.Fatalf("time = %s, want %s", sample.Time, wantTime)
	}
}

func TestParseBlockBodyInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "service unavailable"},
		{name: "error payload", body: `{"code": 5, "message": "block not found"}`},
		{name: "height not numeric", body: `{"block":{"header":{"height":"abc","time":"2023-11-07T02:41:36Z"}}}`},
		{name: "time garbled", body: `{"block":{"header":{"height":"18500000","time":"yesterday"}}}`},
		{name: "empty", body: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := parseBlockBody([]byte(tt.body)); err == nil {
				t.Fatalf("parseBlockBody(%q) expected error", tt.body)
			}
		})
	}
}

func TestParseBlockTime(t *testing.T) {
	want := time.Date(2023, 11, 7, 2, 41, 36, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "nanoseconds and zone", input: "2023-11-07T02:41:36.768652319Z"},
		{name: "whole seconds and zone", input: "2023-11-07T02:41:36Z"},
		{name: "numeric offset", input: "2023-11-07T02:41:36+00:00"},
		{name: "no zone marker", input: "2023-11-07T02:41:36"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseBlockTime(tt.input)
			if err != nil {
				t.Fatalf("parseBlockTime(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(want) {
				t.Fatalf("parseBlockTime(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestParseBlockTimeInvalid(t *testing.T) {
	if _, err := parseBlockTime("07.11.2023 02:41"); err == nil {
		t.Fatal("parseBlockTime() expected error for unsupported format")
	}
}

func TestParseBalanceBody(t *testing.T) {
	amount, err := parseBalanceBody([]byte(`{"balance":{"denom":"atevmos","amount":"100"}}`))
	if err != nil {
		t.Fatalf("parseBalanceBody() unexpected error: %v", err)
	}
	if amount != "100" {
		t.Fatalf("amount = %q, want %q", amount, "100")
	}

	if _, err := parseBalanceBody([]byte(`{"balances":[]}`)); err == nil {
		t.Fatal("parseBalanceBody() expected error for missing amount")
	}
	if _, err := parseBalanceBody([]byte("oops")); err == nil {
		t.Fatal("parseBalanceBody() expected error for non-JSON body")
	}
}
