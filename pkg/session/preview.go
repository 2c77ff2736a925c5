package session

import (
	"encoding/base64"
	"errors"
	"sync"

	"github.com/shouni/gemini-edit-kit/pkg/domain"
)

// ErrPreviewReleased は解放済みのプレビューハンドルへのアクセスを表します。
var ErrPreviewReleased = errors.New("preview reference has been released")

// PreviewReference は選択画像の表示用ハンドルです。自動回収に頼らず、
// 置き換え時とビュー破棄時に必ず Release を呼ぶスコープ付きリソースとして
// 扱います。解放後のアクセスはエラーになります。
type PreviewReference struct {
	mu       sync.Mutex
	data     []byte
	mimeType string
	released bool
}

func newPreviewReference(img *domain.SourceImage) *PreviewReference {
	return &PreviewReference{data: img.Data, mimeType: img.MimeType}
}

// Bytes は画像バイト列を返します。解放後は ErrPreviewReleased を返します。
func (p *PreviewReference) Bytes() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return nil, ErrPreviewReleased
	}
	return p.data, nil
}

// MimeType は画像の MIME タイプを返します。
func (p *PreviewReference) MimeType() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return "", ErrPreviewReleased
	}
	return p.mimeType, nil
}

// DataURI は表示用の data URI を返します。
func (p *PreviewReference) DataURI() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return "", ErrPreviewReleased
	}
	return "data:" + p.mimeType + ";base64," + base64.StdEncoding.EncodeToString(p.data), nil
}

// Release はハンドルを無効化し、保持していたバイト列への参照を手放します。
// 何度呼んでも安全です。
func (p *PreviewReference) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released = true
	p.data = nil
}

// Released は解放済みかどうかを返します。
func (p *PreviewReference) Released() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}
