package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// minShrinkQuality より下の品質には落とさず、圧縮失敗として扱います。
const minShrinkQuality = 10

// ShrinkToLimit は画像が limit バイトに収まるまで品質を段階的に下げながら
// JPEG へ再圧縮します。すでに収まっている場合は入力をそのまま返します。
// 最低品質でも収まらない場合はエラーを返します。
func ShrinkToLimit(data []byte, limit int, quality int) ([]byte, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid size limit: %d", limit)
	}
	if len(data) <= limit {
		return data, nil
	}

	for q := quality; q >= minShrinkQuality; q -= 15 {
		compressed, err := CompressToJPEG(data, q)
		if err != nil {
			return nil, err
		}
		if len(compressed) <= limit {
			return compressed, nil
		}
	}
	return nil, fmt.Errorf("image does not fit into %d bytes even at quality %d", limit, minShrinkQuality)
}
