// Package view は RequestState から描画内容への純粋な射影を提供します。
// 状態は一切持たず、描画面は返された View だけを見て4分岐のいずれかを
// 表示します。
package view

import (
	"strings"

	"github.com/shouni/gemini-edit-kit/pkg/domain"
)

// Branch は描画の4分岐です。
type Branch int

const (
	// BranchPlaceholder は未送信時のプレースホルダー表示です。
	BranchPlaceholder Branch = iota
	// BranchSpinner は送信中のスピナー表示です。
	BranchSpinner
	// BranchImage は結果画像の表示です。
	BranchImage
	// BranchError はエラーテキストの表示です。
	BranchError
)

// View は1回分の描画内容です。有効な分岐に対応するフィールドだけが
// 値を持ちます。
type View struct {
	Branch   Branch
	ImageURI string // BranchImage のときのみ
	Message  string // BranchError のときのみ
}

// Project は RequestState を描画内容へ射影します。
func Project(st domain.RequestState) View {
	switch st.Status() {
	case domain.StatusLoading:
		return View{Branch: BranchSpinner}
	case domain.StatusSuccess:
		uri, _ := st.ResultImage()
		return View{Branch: BranchImage, ImageURI: uri}
	case domain.StatusError:
		msg, _ := st.ErrorMessage()
		return View{Branch: BranchError, Message: msg}
	default:
		return View{Branch: BranchPlaceholder}
	}
}

// SubmitEnabled は送信トリガーの活性判定です。送信中、または必須入力が
// 欠けている間は無効になります。状態機械側のシングルフライトゲートとは
// 独立した、UI側の抑止です。
func SubmitEnabled(st domain.RequestState, hasImage bool, prompt string) bool {
	if st.Status() == domain.StatusLoading {
		return false
	}
	return hasImage && strings.TrimSpace(prompt) != ""
}
