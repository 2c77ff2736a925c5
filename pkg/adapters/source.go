package adapters

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shouni/gemini-edit-kit/pkg/domain"
	"github.com/shouni/gemini-edit-kit/pkg/imgutil"
)

const (
	// SourceSizeLimit はアップロード面がユーザーに案内しているサイズ上限です。
	// コアは強制しませんが、正規化時にこれを超える画像は再圧縮されます。
	SourceSizeLimit = 10 << 20
	// RecompressQuality は再圧縮時の JPEG 品質の初期値です。
	RecompressQuality = 75
)

// PrepareSourceImage は生バイト列を選択可能な SourceImage へ正規化します。
// MIME タイプは中身から判定し、画像以外は拒否します。上限を超える画像は
// JPEG へ再圧縮します（このとき MIME も image/jpeg になります）。
func PrepareSourceImage(data []byte, limit int, quality int) (*domain.SourceImage, error) {
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("画像ではないデータです (detected: %s)", mimeType)
	}

	if limit > 0 && len(data) > limit {
		shrunk, err := imgutil.ShrinkToLimit(data, limit, quality)
		if err != nil {
			return nil, fmt.Errorf("サイズ上限 %d バイトへの圧縮に失敗しました: %w", limit, err)
		}
		return &domain.SourceImage{Data: shrunk, MimeType: "image/jpeg"}, nil
	}

	return &domain.SourceImage{Data: data, MimeType: mimeType}, nil
}
