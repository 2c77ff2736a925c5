package view

import (
	"testing"

	"github.com/shouni/gemini-edit-kit/pkg/domain"
)

func TestProject(t *testing.T) {
	t.Run("Idle はプレースホルダーになるのだ", func(t *testing.T) {
		v := Project(domain.Idle())
		if v.Branch != BranchPlaceholder {
			t.Errorf("expected placeholder, got %v", v.Branch)
		}
	})

	t.Run("Loading はスピナーになるのだ", func(t *testing.T) {
		v := Project(domain.Loading())
		if v.Branch != BranchSpinner {
			t.Errorf("expected spinner, got %v", v.Branch)
		}
	})

	t.Run("Success は画像分岐になり URI を運ぶのだ", func(t *testing.T) {
		v := Project(domain.Success("data:image/png;base64,QUJD"))
		if v.Branch != BranchImage {
			t.Errorf("expected image branch, got %v", v.Branch)
		}
		if v.ImageURI != "data:image/png;base64,QUJD" {
			t.Errorf("image URI mismatch: %q", v.ImageURI)
		}
		if v.Message != "" {
			t.Errorf("image branch should not carry a message, got %q", v.Message)
		}
	})

	t.Run("Error はエラーテキスト分岐になるのだ", func(t *testing.T) {
		v := Project(domain.Failure("quota exceeded"))
		if v.Branch != BranchError {
			t.Errorf("expected error branch, got %v", v.Branch)
		}
		if v.Message != "quota exceeded" {
			t.Errorf("message mismatch: %q", v.Message)
		}
		if v.ImageURI != "" {
			t.Errorf("error branch should not carry an image, got %q", v.ImageURI)
		}
	})
}

func TestSubmitEnabled(t *testing.T) {
	cases := []struct {
		name     string
		state    domain.RequestState
		hasImage bool
		prompt   string
		want     bool
	}{
		{"入力が揃っていれば有効なのだ", domain.Idle(), true, "add sunset", true},
		{"送信中は無効なのだ", domain.Loading(), true, "add sunset", false},
		{"画像なしは無効なのだ", domain.Idle(), false, "add sunset", false},
		{"空プロンプトは無効なのだ", domain.Idle(), true, "", false},
		{"空白だけのプロンプトは無効なのだ", domain.Idle(), true, "   ", false},
		{"エラー後も再送信できるのだ", domain.Failure("boom"), true, "retry", true},
		{"成功後も再送信できるのだ", domain.Success("data:image/png;base64,QUJD"), true, "again", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SubmitEnabled(tc.state, tc.hasImage, tc.prompt); got != tc.want {
				t.Errorf("SubmitEnabled = %v, want %v", got, tc.want)
			}
		})
	}
}
