// Package model はドメインモデルを定義する。
package model

import (
	"fmt"
	"math"
	"time"
)

// キャンパーの年齢制約（両端を含む）。
const (
	CamperMinAge = 8
	CamperMaxAge = 18
)

// Camper はキャンプ参加者を表す。
type Camper struct {
	ID        int64
	Name      string
	Age       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateCamperName はキャンパー名を検証し、受理した値を返す。
// 空文字列は不変条件違反としてValidationErrorを返す。
func ValidateCamperName(name string) (string, error) {
	if name == "" {
		return "", NewValidationError("camper name must not be empty")
	}
	return name, nil
}

// ValidateCamperAge はキャンパーの年齢を検証し、受理した値を返す。
// 許容範囲は8〜18歳（両端を含む）。
func ValidateCamperAge(age int) (int, error) {
	if age < CamperMinAge || age > CamperMaxAge {
		return 0, NewValidationError(fmt.Sprintf("camper age must be between %d and %d, got %d", CamperMinAge, CamperMaxAge, age))
	}
	return age, nil
}

// NewCamper は全フィールドバリデータを通過したCamperを構築する。
// IDは永続化時にストレージが割り当てる。
func NewCamper(name string, age int) (*Camper, error) {
	name, err := ValidateCamperName(name)
	if err != nil {
		return nil, err
	}
	age, err = ValidateCamperAge(age)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Camper{
		Name:      name,
		Age:       age,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyUpdates はPATCHの部分フィールドマップを検証してから反映する。
// 更新可能なフィールドはnameとageのみで、それ以外のキー（idを含む）は
// ValidationErrorとして拒否する。いずれかのフィールドが検証に失敗した場合、
// レシーバは一切変更されない（部分適用は観測されない）。
func (c *Camper) ApplyUpdates(fields map[string]any) error {
	next := *c

	for key, value := range fields {
		switch key {
		case "name":
			s, ok := value.(string)
			if !ok {
				return NewValidationError(fmt.Sprintf("camper name must be a string, got %T", value))
			}
			name, err := ValidateCamperName(s)
			if err != nil {
				return err
			}
			next.Name = name
		case "age":
			n, err := jsonInt(value)
			if err != nil {
				return NewValidationError("camper age must be an integer")
			}
			age, err := ValidateCamperAge(n)
			if err != nil {
				return err
			}
			next.Age = age
		default:
			return NewValidationError(fmt.Sprintf("field %q is not updatable", key))
		}
	}

	next.UpdatedAt = time.Now()
	*c = next
	return nil
}

// jsonInt はencoding/jsonがmap[string]anyにデコードした数値を整数に変換する。
// 小数部を持つ値と数値以外の型はエラーを返す。
func jsonInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}
