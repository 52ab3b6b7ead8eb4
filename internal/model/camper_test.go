package model

import (
	"errors"
	"testing"
)

// TestValidateCamperAge_Boundaries は年齢の境界値（8〜18歳、両端を含む）を検証する。
func TestValidateCamperAge_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		wantErr bool
	}{
		{"下限未満の7歳は拒否", 7, true},
		{"下限の8歳は受理", 8, false},
		{"中間の12歳は受理", 12, false},
		{"上限の18歳は受理", 18, false},
		{"上限超過の19歳は拒否", 19, true},
		{"ゼロは拒否", 0, true},
		{"負の年齢は拒否", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCamperAge(tt.age)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateCamperAge(%d) = %d, want error", tt.age, got)
				}
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("error type = %T, want *ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateCamperAge(%d) unexpected error: %v", tt.age, err)
			}
			if got != tt.age {
				t.Errorf("ValidateCamperAge(%d) = %d, want %d", tt.age, got, tt.age)
			}
		})
	}
}

// TestValidateCamperName_Empty は空文字列の名前が拒否されることを検証する。
func TestValidateCamperName_Empty(t *testing.T) {
	if _, err := ValidateCamperName(""); err == nil {
		t.Error("expected error for empty name")
	}

	got, err := ValidateCamperName("Aoi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Aoi" {
		t.Errorf("name = %q, want %q", got, "Aoi")
	}
}

// TestNewCamper_Valid は有効な入力でCamperが構築されることを検証する。
func TestNewCamper_Valid(t *testing.T) {
	c, err := NewCamper("Aoi", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.ID != 0 {
		t.Errorf("ID = %d, want 0 (storage-assigned)", c.ID)
	}
	if c.Name != "Aoi" {
		t.Errorf("Name = %q, want %q", c.Name, "Aoi")
	}
	if c.Age != 12 {
		t.Errorf("Age = %d, want 12", c.Age)
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
		t.Error("expected CreatedAt/UpdatedAt to be set")
	}
}

// TestNewCamper_Invalid は検証に失敗する入力でnilとエラーが返ることを検証する。
func TestNewCamper_Invalid(t *testing.T) {
	if c, err := NewCamper("", 12); err == nil || c != nil {
		t.Errorf("NewCamper(empty name) = (%v, %v), want (nil, error)", c, err)
	}
	if c, err := NewCamper("Aoi", 19); err == nil || c != nil {
		t.Errorf("NewCamper(age 19) = (%v, %v), want (nil, error)", c, err)
	}
}

// TestApplyUpdates_NameAndAge はname/ageの部分更新が反映されることを検証する。
func TestApplyUpdates_NameAndAge(t *testing.T) {
	c := &Camper{ID: 1, Name: "Aoi", Age: 12}

	// encoding/jsonはmap[string]anyの数値をfloat64としてデコードする
	if err := c.ApplyUpdates(map[string]any{"name": "Ren", "age": float64(15)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Name != "Ren" {
		t.Errorf("Name = %q, want %q", c.Name, "Ren")
	}
	if c.Age != 15 {
		t.Errorf("Age = %d, want 15", c.Age)
	}
	if c.ID != 1 {
		t.Errorf("ID = %d, want 1 (unchanged)", c.ID)
	}
}

// TestApplyUpdates_InvalidFieldLeavesReceiverUnchanged は検証失敗時に
// レシーバが一切変更されないこと（部分適用の不在）を検証する。
func TestApplyUpdates_InvalidFieldLeavesReceiverUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
	}{
		{"範囲外の年齢", map[string]any{"name": "Ren", "age": float64(42)}},
		{"空の名前", map[string]any{"name": "", "age": float64(15)}},
		{"小数の年齢", map[string]any{"age": 12.5}},
		{"文字列の年齢", map[string]any{"age": "twelve"}},
		{"数値の名前", map[string]any{"name": float64(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Camper{ID: 1, Name: "Aoi", Age: 12}

			err := c.ApplyUpdates(tt.fields)
			if err == nil {
				t.Fatal("expected error")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error type = %T, want *ValidationError", err)
			}

			if c.Name != "Aoi" || c.Age != 12 {
				t.Errorf("receiver mutated: Name=%q Age=%d, want Aoi/12", c.Name, c.Age)
			}
		})
	}
}

// TestApplyUpdates_RejectsUnknownFields は更新可能フィールド以外のキー
// （idを含む）がValidationErrorとして拒否されることを検証する。
func TestApplyUpdates_RejectsUnknownFields(t *testing.T) {
	for _, key := range []string{"id", "created_at", "signups", "favorite_color"} {
		t.Run(key, func(t *testing.T) {
			c := &Camper{ID: 1, Name: "Aoi", Age: 12}

			err := c.ApplyUpdates(map[string]any{key: "anything"})
			if err == nil {
				t.Fatalf("expected error for field %q", key)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
		})
	}
}

// TestApplyUpdates_IntegralFloatAccepted はJSON由来の小数部を持たない
// float64（例: 15.0）が整数として受理されることを検証する。
func TestApplyUpdates_IntegralFloatAccepted(t *testing.T) {
	c := &Camper{ID: 1, Name: "Aoi", Age: 12}

	if err := c.ApplyUpdates(map[string]any{"age": 15.0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Age != 15 {
		t.Errorf("Age = %d, want 15", c.Age)
	}
}
