package session

import (
	"sync"

	"github.com/shouni/gemini-edit-kit/pkg/domain"
)

// EditorState は1セッション分の編集UI状態を保持する明示的なストアです。
// 選択中の画像・プロンプト・RequestState・選択世代カウンタを1箇所に集約し、
// SelectionManager と SubmissionController から注入して使います。
// RequestState を書き換えるのはこの2者だけで、描画側は Snapshot を読むだけです。
type EditorState struct {
	mu         sync.Mutex
	image      *domain.SourceImage
	prompt     string
	request    domain.RequestState
	generation uint64
	preview    *PreviewReference
}

// NewEditorState は Idle 状態の空のストアを生成します。
func NewEditorState() *EditorState {
	return &EditorState{request: domain.Idle()}
}

// Request は現在の RequestState を返します。
func (s *EditorState) Request() domain.RequestState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request
}

// Selection は現在の選択画像とプロンプトを返します。画像未選択時は nil です。
func (s *EditorState) Selection() (*domain.SourceImage, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.image, s.prompt
}

// Generation は選択世代カウンタを返します。画像の再選択ごとに増加します。
func (s *EditorState) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// SetRequest は RequestState を無条件に置き換えます。
// 検証エラーのように世代チェックの不要な遷移に使います。
func (s *EditorState) SetRequest(st domain.RequestState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.request = st
}

// BeginLoading は送信開始を試みます。すでに Loading の場合は false を返し、
// 状態には触れません（シングルフライトのゲート）。成功時は Loading へ遷移し、
// 完了時の照合に使う選択世代を返します。
func (s *EditorState) BeginLoading() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.request.Status() == domain.StatusLoading {
		return 0, false
	}
	// 以前の Success/Error ペイロードはここで破棄される
	s.request = domain.Loading()
	return s.generation, true
}

// CompleteRequest は送信の終端状態を適用します。送信開始後に画像が
// 再選択されていた場合（世代不一致）は適用せず false を返します。
// その場合のストアは再選択が戻した Idle のままです（最新選択が勝つ）。
func (s *EditorState) CompleteRequest(gen uint64, st domain.RequestState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return false
	}
	s.request = st
	return true
}

// replaceImage は選択画像を置き換え、RequestState を Idle に戻し、
// 世代を進めます。切り離した旧プレビューを返すので呼び出し側で解放します。
func (s *EditorState) replaceImage(img *domain.SourceImage) *PreviewReference {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.image = img
	s.request = domain.Idle()
	s.generation++
	old := s.preview
	s.preview = nil
	return old
}

// setPrompt はプロンプトをそのまま（トリムせず）置き換えます。
func (s *EditorState) setPrompt(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = text
}

// swapPreview は現在のプレビューを差し替え、旧ハンドルを返します。
func (s *EditorState) swapPreview(p *PreviewReference) *PreviewReference {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.preview
	s.preview = p
	return old
}
