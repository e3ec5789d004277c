package engine

import (
	"strconv"
	"testing"

	"github.com/h0rv/tipcalc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func form(bill, tip, people string) domain.FormState {
	return domain.FormState{Bill: bill, Tip: domain.PresetTip(tip), PartyCount: people}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name      string
		state     domain.FormState
		wantTip   float64
		wantTotal float64
	}{
		{"two people fifteen percent", form("100", "15", "2"), 15, 57.5},
		{"empty bill fails gate", form("", "20", "4"), 0, 0},
		{"zero tip single person", form("50", "0", "1"), 0, 50},
		{"large bill still computed", form("2000000", "10", "1"), 200000, 2200000},
		{"empty party defaults to one", form("80", "25", ""), 20, 100},
		{"empty tip defaults to zero", form("80", "", "4"), 0, 20},
		{"zero bill fails gate", form("0", "10", "2"), 0, 0},
		{"zero party fails gate", form("100", "10", "0"), 0, 0},
		{"negative tip fails gate", domain.FormState{Bill: "100", Tip: domain.CustomTip("-5"), PartyCount: "2"}, 0, 0},
		{"negative party fails gate", form("100", "10", "-3"), 0, 0},
		{"custom tip with percent sign", domain.FormState{Bill: "200", Tip: domain.CustomTip("12.5%"), PartyCount: "5"}, 25, 45},
		{"unparsable custom tip is zero", domain.FormState{Bill: "30", Tip: domain.CustomTip("abc"), PartyCount: "3"}, 0, 10},
		{"overflowing custom tip is zero", domain.FormState{Bill: "30", Tip: domain.CustomTip("1e400"), PartyCount: "3"}, 0, 10},
		{"infinite custom tip is zero", domain.FormState{Bill: "30", Tip: domain.CustomTip("Infinity"), PartyCount: "3"}, 0, 10},
		{"overflowing bill fails gate", domain.FormState{Bill: "1e400", Tip: domain.PresetTip("10"), PartyCount: "1"}, 0, 0},
		{"trailing dot bill", form("10.", "10", "1"), 1, 11},
		{"lone dot bill fails gate", form(".", "10", "1"), 0, 0},
		{"unset tip", domain.FormState{Bill: "40", PartyCount: "2"}, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.state)
			assert.Equal(t, tt.wantTip, got.TipAmount)
			assert.Equal(t, tt.wantTotal, got.TotalPerPerson)
		})
	}
}

func TestDerive_FormulaHolds(t *testing.T) {
	bills := []float64{0.01, 1, 19.99, 100, 1234.56}
	tips := []float64{0, 5, 12.5, 18, 100}
	parties := []int64{1, 2, 3, 7, 100}

	for _, b := range bills {
		for _, tp := range tips {
			for _, n := range parties {
				state := domain.FormState{
					Bill:       formatFloat(b),
					Tip:        domain.CustomTip(formatFloat(tp)),
					PartyCount: formatInt(n),
				}
				got := Derive(state)
				tip := b * tp / 100
				assert.Equal(t, tip, got.TipAmount, "bill=%v tip=%v n=%v", b, tp, n)
				assert.Equal(t, (b+tip)/float64(n), got.TotalPerPerson, "bill=%v tip=%v n=%v", b, tp, n)
			}
		}
	}
}

func TestDerive_Idempotent(t *testing.T) {
	state := form("123.45", "18", "3")
	assert.Equal(t, Derive(state), Derive(state))
}

func TestPerPersonTip(t *testing.T) {
	d := Derive(form("100", "15", "2"))
	assert.Equal(t, 7.5, PerPersonTip(d, "2"))

	// Party text cleared after the last derivation: coerce to one.
	assert.Equal(t, 15.0, PerPersonTip(d, ""))
	assert.Equal(t, 15.0, PerPersonTip(d, "0"))
	assert.Equal(t, 5.0, PerPersonTip(d, "3"))
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 0.0, ParseBill(""))
	assert.Equal(t, 12.0, ParseBill("12abc"))
	assert.Equal(t, 0.5, ParseBill(".5"))
	assert.Equal(t, 0.0, ParseTipPercent("NaN"))
	assert.Equal(t, 0.0, ParseTipPercent("Inf"))
	assert.Equal(t, 15.0, ParseTipPercent(" 15"))
	assert.Equal(t, 0.0, ParseTipPercent("1e400"))
	assert.Equal(t, 0.0, ParseTipPercent("-1e400"))
	assert.Equal(t, 0.0, ParseTipPercent("Infinity"))
	assert.Equal(t, 0.0, ParseTipPercent("1e-400"))

	_, ok := ParseFloat("1e400")
	assert.False(t, ok)

	assert.Equal(t, int64(1), ParsePartyCount(""))
	assert.Equal(t, int64(1), ParsePartyCount("x"))
	assert.Equal(t, int64(0), ParsePartyCount("0"))
	assert.Equal(t, int64(3), ParsePartyCount("3.9"))

	v, ok := ParseInt("99999999999999999999999")
	assert.True(t, ok)
	assert.Greater(t, v, int64(100))
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }
