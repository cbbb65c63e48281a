package naming

import (
	"errors"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		raw  string
		want Name
	}{
		{
			raw:  "order",
			want: Name{Raw: "order", Studly: "Order", Lower: "order", Plural: "Orders", PluralLower: "orders"},
		},
		{
			raw:  "category",
			want: Name{Raw: "category", Studly: "Category", Lower: "category", Plural: "Categories", PluralLower: "categories"},
		},
		{
			raw:  "bus",
			want: Name{Raw: "bus", Studly: "Bus", Lower: "bus", Plural: "Buses", PluralLower: "buses"},
		},
		{
			raw:  "car",
			want: Name{Raw: "car", Studly: "Car", Lower: "car", Plural: "Cars", PluralLower: "cars"},
		},
		{
			raw:  "orderItem",
			want: Name{Raw: "orderItem", Studly: "OrderItem", Lower: "orderitem", Plural: "OrderItems", PluralLower: "orderitems"},
		},
		{
			raw:  "order_item",
			want: Name{Raw: "order_item", Studly: "Order_item", Lower: "order_item", Plural: "OrderItems", PluralLower: "orderitems"},
		},
		{
			raw:  "quiz",
			want: Name{Raw: "quiz", Studly: "Quiz", Lower: "quiz", Plural: "Quizzes", PluralLower: "quizzes"},
		},
		{
			raw:  "analysis",
			want: Name{Raw: "analysis", Studly: "Analysis", Lower: "analysis", Plural: "Analyses", PluralLower: "analyses"},
		},
		{
			raw:  "Person",
			want: Name{Raw: "Person", Studly: "Person", Lower: "person", Plural: "People", PluralLower: "people"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Derive(tt.raw)
			if err != nil {
				t.Fatalf("Derive(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Derive(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	for _, raw := range []string{"order", "category", "invoiceLine", "box", "wolf", "sheep"} {
		first, err := Derive(raw)
		if err != nil {
			t.Fatalf("Derive(%q) failed: %v", raw, err)
		}
		second, err := Derive(raw)
		if err != nil {
			t.Fatalf("Derive(%q) failed: %v", raw, err)
		}
		if first != second {
			t.Errorf("Derive(%q) not deterministic: %+v vs %+v", raw, first, second)
		}
	}
}

func TestDerive_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "order item"},
		{"path separator", "../order"},
		{"backslash", `a\b`},
		{"leading digit", "1order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(tt.raw)
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("Derive(%q) error = %v, want ErrInvalidName", tt.raw, err)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"category", "categories"},
		{"day", "days"},
		{"bus", "buses"},
		{"box", "boxes"},
		{"quiz", "quizzes"},
		{"analysis", "analyses"},
		{"Analysis", "Analyses"},
		{"status", "statuses"},
		{"wolf", "wolves"},
		{"mouse", "mice"},
		{"woman", "women"},
		{"human", "humans"},
		{"hero", "heroes"},
		{"church", "churches"},
		{"brush", "brushes"},
		{"car", "cars"},
		{"person", "people"},
		{"Child", "Children"},
		{"knife", "knives"},
		{"sheep", "sheep"},
		{"userCategory", "userCategories"},
		{"blog_post", "blog_posts"},
		{"ID", "IDS"},
		{"reportAnalysis", "reportAnalyses"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Pluralize(tt.in); got != tt.want {
				t.Errorf("Pluralize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanDerive(t *testing.T) {
	if r := CanDerive("order"); !r.Allowed {
		t.Errorf("expected order to be allowed, got reason %q", r.Reason)
	}
	r := CanDerive("")
	if r.Allowed {
		t.Fatal("expected empty name to be rejected")
	}
	if r.Reason != "name cannot be empty" {
		t.Errorf("unexpected reason %q", r.Reason)
	}
}
