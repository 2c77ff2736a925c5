package session

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-edit-kit/pkg/domain"
)

// SourceFetcher はリモート URI から選択用の画像を取得するコラボレーターです。
type SourceFetcher interface {
	FetchSource(ctx context.Context, uri string) (*domain.SourceImage, error)
}

// SelectionManager は選択中の画像とプロンプトの所有者です。
// リモート状態は一切持たず、注入された EditorState を介して
// SubmissionController と状態を共有します。
type SelectionManager struct {
	state   *EditorState
	fetcher SourceFetcher // URI 選択を使わない場合は nil を許容
}

// NewSelectionManager は依存関係を注入して SelectionManager を初期化します。
func NewSelectionManager(state *EditorState, fetcher SourceFetcher) (*SelectionManager, error) {
	if state == nil {
		return nil, fmt.Errorf("state is required")
	}
	return &SelectionManager{state: state, fetcher: fetcher}, nil
}

// SelectImage は選択画像を丸ごと置き換えます（nil でクリア）。
// 副作用として RequestState を無条件に Idle へ戻し、以前の Success/Error
// ペイロードを破棄します。古い画像の結果が新しい画像の隣に残ることはありません。
// 旧プレビューハンドルもここで解放されます。
func (m *SelectionManager) SelectImage(img *domain.SourceImage) {
	if old := m.state.replaceImage(img); old != nil {
		old.Release()
	}
}

// SelectImageFromURI は https:// または gs:// の URI から画像を取得して
// 選択します。取得に失敗した場合、現在の選択と状態は変化しません。
func (m *SelectionManager) SelectImageFromURI(ctx context.Context, uri string) error {
	if m.fetcher == nil {
		return fmt.Errorf("no source fetcher configured")
	}
	img, err := m.fetcher.FetchSource(ctx, uri)
	if err != nil {
		return fmt.Errorf("リモート画像の取得に失敗しました: %w", err)
	}
	m.SelectImage(img)
	return nil
}

// SetPrompt はプロンプトをそのまま置き換えます。トリムや長さ制限は行いません。
func (m *SelectionManager) SetPrompt(text string) {
	m.state.setPrompt(text)
}

// CurrentPreview は選択画像から表示用ハンドルを導出します。
// 新しいハンドルを作る前に以前のハンドルを必ず解放するため、
// 置き換えをまたいでハンドルがリークすることはありません。
// 画像が未選択の場合は nil を返します。
func (m *SelectionManager) CurrentPreview() *PreviewReference {
	img, _ := m.state.Selection()

	var next *PreviewReference
	if img != nil {
		next = newPreviewReference(img)
	}
	if old := m.state.swapPreview(next); old != nil {
		old.Release()
	}
	return next
}

// Close はビュー破棄時の後始末として未解放のプレビューを解放します。
func (m *SelectionManager) Close() {
	if old := m.state.swapPreview(nil); old != nil {
		old.Release()
	}
}
