package services

import (
	"testing"

	"github.com/Count174/k-board-sub000/models"
)

func TestParseFinanceMessage(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    FinanceInput
		wantErr bool
	}{
		{
			name: "income",
			text: "+1000 salary",
			want: FinanceInput{Type: models.FinanceIncome, Category: "salary", Amount: 1000},
		},
		{
			name: "expense",
			text: "-250 coffee",
			want: FinanceInput{Type: models.FinanceExpense, Category: "coffee", Amount: 250},
		},
		{
			name: "comment is the tail",
			text: "-49.90 groceries weekly run",
			want: FinanceInput{Type: models.FinanceExpense, Category: "groceries", Amount: 49.90, Comment: "weekly run"},
		},
		{
			name: "category is lowercased",
			text: "+500 Freelance",
			want: FinanceInput{Type: models.FinanceIncome, Category: "freelance", Amount: 500},
		},
		{name: "no sign", text: "1000 salary", wantErr: true},
		{name: "missing category", text: "-250", wantErr: true},
		{name: "zero amount", text: "-0 coffee", wantErr: true},
		{name: "not a number", text: "-abc coffee", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFinanceMessage(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseFinanceMessage(%q): expected error, got %+v", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFinanceMessage(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("parseFinanceMessage(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
