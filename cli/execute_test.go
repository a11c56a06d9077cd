package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestExecuteWrapper(t *testing.T) {
	defer resetCLI()
	newTestSession(testCatalog())
	rootCmd.SetArgs([]string{"cart", "show"})
	if err := Execute(); err != nil {
		t.Fatalf("Execute wrapper failed: %v", err)
	}
}

func TestLoadPromoTable(t *testing.T) {
	viper.Set("promo-codes", map[string]interface{}{
		"save50": 0.50,
		"half":   "0.5",
		"whole":  1,
	})

	table := loadPromoTable()
	cases := []struct {
		code string
		want float64
	}{
		{"SAVE50", 0.50}, // keys normalize to upper case
		{"HALF", 0.5},
		{"WHOLE", 1},
	}
	for _, tc := range cases {
		f, ok := table.Lookup(tc.code)
		if !ok || f != tc.want {
			t.Fatalf("Lookup(%q) = %v/%v, want %v", tc.code, f, ok, tc.want)
		}
	}
}

func TestLoadPromoTableDefaults(t *testing.T) {
	viper.Set("promo-codes", map[string]interface{}{})

	table := loadPromoTable()
	if f, ok := table.Lookup("SAVE10"); !ok || f != 0.10 {
		t.Fatalf("expected built-in SAVE10 default, got %v/%v", f, ok)
	}
}
