package usecase

import "testing"

func TestExtractMainProductName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "text before first comma",
			title: "Great Value Organic Coffee, Medium Roast, 12oz",
			want:  "Great Value Organic Coffee",
		},
		{
			name:  "short title is returned unchanged",
			title: "Stainless Steel Water Bottle",
			want:  "Stainless Steel Water Bottle",
		},
		{
			name:  "single word",
			title: "Widget",
			want:  "Widget",
		},
		{
			name:  "brand-led title keeps five words",
			title: "Apple MacBook Pro 13 inch Laptop with M2 Chip",
			want:  "Apple MacBook Pro 13 inch",
		},
		{
			name:  "one-word separator head falls through to leading words",
			title: "Ultra-Comfortable Ergonomic Office Chair Cushion Pillow",
			want:  "Ultra-Comfortable Ergonomic Office Chair",
		},
		{
			name:  "overlong separator head falls through to leading words",
			title: "One Two Three Four Five Six Seven, with extras",
			want:  "One Two Three Four",
		},
		{
			name:  "pipe separator",
			title: "Ergonomic Mesh Office Chair | Lumbar Support | Adjustable Height",
			want:  "Ergonomic Mesh Office Chair",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMainProductName(tt.title); got != tt.want {
				t.Errorf("ExtractMainProductName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestCleanListingQuery(t *testing.T) {
	tests := []struct {
		name  string
		title string
		brand string
		want  string
	}{
		{
			name:  "strips parentheses and caps at five words",
			title: "Sony WH-1000XM4 Wireless Noise Canceling Headphones (Black)",
			brand: "Sony",
			want:  "Sony WH-1000XM4 Wireless Noise Canceling",
		},
		{
			name:  "strips size tokens and brackets",
			title: "55inch TV Stand [Walnut]",
			brand: "",
			want:  "TV Stand",
		},
		{
			name:  "strips long model numbers and prepends missing brand",
			title: "Model 12345 Gadget",
			brand: "Acme",
			want:  "Acme Model Gadget",
		},
		{
			name:  "brand already present is not duplicated",
			title: "Dyson Cordless Vacuum",
			brand: "Dyson",
			want:  "Dyson Cordless Vacuum",
		},
		{
			name:  "empty title with brand",
			title: "",
			brand: "Acme",
			want:  "Acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanListingQuery(tt.title, tt.brand); got != tt.want {
				t.Errorf("CleanListingQuery(%q, %q) = %q, want %q", tt.title, tt.brand, got, tt.want)
			}
		})
	}
}
