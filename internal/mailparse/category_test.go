package mailparse

import "testing"

func TestMapToCategory(t *testing.T) {
	cases := []struct {
		name     string
		txType   string
		merchant string
		want     Category
	}{
		{"grabfood_is_food", "GrabFood", "Unknown", CategoryFood},
		{"grabcar_is_transport", "GrabCar", "Grab", CategoryTransport},
		{"grabbike_is_transport", "GrabBike", "Grab", CategoryTransport},
		{"mart_is_shopping", "Mart Purchase", "Circle K", CategoryShopping},
		{"unknown_is_other", "Unknown Type", "Unknown Merchant", CategoryOther},
		{"case_insensitive", "GRABFOOD", "KFC", CategoryFood},
		// Order-sensitive overlaps: the generic "grab" fallback beats
		// Shopping, so a GrabMart order is still Transport.
		{"grabmart_is_transport", "GrabMart", "WinMart Q1", CategoryTransport},
		{"bare_grab_is_transport", "Grab", "Somewhere", CategoryTransport},
		{"restaurant_merchant", "Card Payment", "Pho 24 Restaurant", CategoryFood},
		{"coffee_merchant", "Card Payment", "Highlands Coffee", CategoryFood},
		{"taxi_merchant", "Card Payment", "Mai Linh Taxi", CategoryTransport},
		{"store_merchant", "Card Payment", "Apple Store", CategoryShopping},
		{"movie_merchant", "Card Payment", "CGV Movie Theater", CategoryEntertainment},
		{"subscription_type", "Subscription Renewal", "Spotify", CategoryEntertainment},
		{"internet_bill", "Bill Payment", "FPT Internet", CategoryBills},
		{"pharmacy_merchant", "Card Payment", "Long Chau Pharmacy", CategoryHealth},
		{"empty_inputs", "", "", CategoryOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapToCategory(tc.txType, tc.merchant)
			if got != tc.want {
				t.Errorf("MapToCategory(%q, %q) = %q, want %q", tc.txType, tc.merchant, got, tc.want)
			}
		})
	}
}

func TestMapToCategoryIsDeterministicAndTotal(t *testing.T) {
	known := make(map[Category]bool)
	for _, c := range Categories() {
		known[c] = true
	}

	inputs := [][2]string{
		{"GrabFood", "KFC"},
		{"", ""},
		{"???", "!!!"},
		{"grab", "mart"},
		{"Card Payment", "Circle K Nguyen Hue"},
	}
	for _, in := range inputs {
		first := MapToCategory(in[0], in[1])
		if !known[first] {
			t.Errorf("MapToCategory(%q, %q) = %q, not in the defined set", in[0], in[1], first)
		}
		for i := 0; i < 5; i++ {
			if got := MapToCategory(in[0], in[1]); got != first {
				t.Errorf("MapToCategory(%q, %q) not deterministic: %q then %q", in[0], in[1], first, got)
			}
		}
	}
}
